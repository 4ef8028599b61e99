package vaa

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

var GovernanceEmitter = Address{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4}
var GovernanceChain = ChainIDSolana

// Module identifies the contract a governance decree targets. It is the
// ASCII module name left-padded with zeroes to 32 bytes.
type Module [32]byte

var (
	CoreModule        = MustModule("Core")
	TokenBridgeModule = MustModule("TokenBridge")
)

// MustModule builds a Module from name and panics if it exceeds 32 bytes.
func MustModule(name string) Module {
	var m Module
	if len(name) > len(m) {
		panic(fmt.Sprintf("module name %q exceeds 32 bytes", name))
	}
	copy(m[len(m)-len(name):], name)
	return m
}

func (m Module) String() string {
	return string(bytes.TrimLeft(m[:], "\x00"))
}

// CheckModule consumes a 32-byte module identifier and requires it to be want.
func CheckModule(r io.Reader, want Module) error {
	return wireio.CheckPayloadType(r, want[:])
}

// IsGovernance reports whether the body was emitted by the governance emitter.
func (b *Body) IsGovernance() bool {
	return b.EmitterChain == GovernanceChain && b.EmitterAddress == GovernanceEmitter
}

// CreateGovernanceVAA returns an unsigned VAA from the governance emitter.
func CreateGovernanceVAA(timestamp uint32, nonce uint32, sequence uint64, guardianSetIndex uint32, payload []byte) *VAA {
	return &VAA{
		Header: Header{
			Version:          SupportedVAAVersion,
			GuardianSetIndex: guardianSetIndex,
		},
		Body: Body{
			Timestamp:        timestamp,
			Nonce:            nonce,
			Sequence:         sequence,
			ConsistencyLevel: 32,
			EmitterChain:     GovernanceChain,
			EmitterAddress:   GovernanceEmitter,
			Payload:          payload,
		},
	}
}
