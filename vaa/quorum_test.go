package vaa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateQuorum(t *testing.T) {
	tests := []struct {
		numGuardians int
		quorum       int
	}{
		{numGuardians: 0, quorum: 1},
		{numGuardians: 1, quorum: 1},
		{numGuardians: 2, quorum: 2},
		{numGuardians: 3, quorum: 3},
		{numGuardians: 4, quorum: 3},
		{numGuardians: 5, quorum: 4},
		{numGuardians: 7, quorum: 5},
		{numGuardians: 13, quorum: 9},
		{numGuardians: 19, quorum: 13},
		{numGuardians: 100, quorum: 67},
		{numGuardians: 1000, quorum: 667},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.numGuardians), func(t *testing.T) {
			assert.Equal(t, tc.quorum, CalculateQuorum(tc.numGuardians))
		})
	}
}

func TestCalculateQuorumIsSupermajority(t *testing.T) {
	for n := 1; n <= 255; n++ {
		q := CalculateQuorum(n)
		assert.Greater(t, 3*q, 2*n, "n=%d", n)
		assert.LessOrEqual(t, 3*(q-1), 2*n, "n=%d", n)
	}
}

func TestCalculateQuorumNegative(t *testing.T) {
	for _, n := range []int{-1, -1000} {
		assert.Panics(t, func() { CalculateQuorum(n) })
	}
}
