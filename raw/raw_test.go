package raw

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

func signedVAA(t *testing.T) (*vaa.VAA, []byte) {
	t.Helper()
	v := &vaa.VAA{
		Header: vaa.Header{
			Version:          vaa.SupportedVAAVersion,
			GuardianSetIndex: 4,
			Signatures: []vaa.Signature{
				{Index: 0, Signature: vaa.SignatureData(bytes.Repeat([]byte{0x11}, 65))},
				{Index: 3, Signature: vaa.SignatureData(bytes.Repeat([]byte{0x33}, 65))},
			},
		},
		Body: vaa.Body{
			Timestamp:        uint32(time.Unix(1700000000, 0).Unix()),
			Nonce:            42,
			EmitterChain:     vaa.ChainIDEthereum,
			EmitterAddress:   vaa.Address{0xde, 0xad},
			Sequence:         0x0102030405060708,
			ConsistencyLevel: vaa.ConsistencyLevelSafe,
			Payload:          []byte{0x01, 0xaa, 0xbb},
		},
	}
	b, err := v.Marshal()
	require.NoError(t, err)
	return v, b
}

func TestParseMatchesDecoder(t *testing.T) {
	want, b := signedVAA(t)

	v, err := Parse(b)
	require.NoError(t, err)
	assert.Equal(t, b, v.Bytes())

	h := v.Header()
	assert.Equal(t, want.Version, h.Version())
	assert.Equal(t, want.GuardianSetIndex, h.GuardianSetIndex())
	require.Equal(t, len(want.Signatures), h.NumSignatures())
	for i, sig := range want.Signatures {
		idx, data, ok := h.Signature(i)
		require.True(t, ok)
		assert.Equal(t, sig.Index, idx)
		assert.Equal(t, sig.Signature[:], data)
	}

	_, _, ok := h.Signature(h.NumSignatures())
	assert.False(t, ok)
	_, _, ok = h.Signature(-1)
	assert.False(t, ok)

	body := v.Body()
	assert.Equal(t, want.Timestamp, body.Timestamp())
	assert.Equal(t, want.Nonce, body.Nonce())
	assert.Equal(t, uint16(want.EmitterChain), body.EmitterChain())
	assert.Equal(t, [32]byte(want.EmitterAddress), body.EmitterAddress())
	assert.Equal(t, want.Sequence, body.Sequence())
	assert.Equal(t, want.ConsistencyLevel, body.ConsistencyLevel())
	assert.Equal(t, want.Payload, []byte(body.Payload()))

	assert.Equal(t, [32]byte(want.Body.Digest()), body.Digest())
	assert.Equal(t, [32]byte(want.Body.SigningDigest()), body.SigningDigest())
}

func TestPayloadType(t *testing.T) {
	_, b := signedVAA(t)
	v, err := Parse(b)
	require.NoError(t, err)

	typ, ok := v.Body().Payload().Type()
	assert.True(t, ok)
	assert.Equal(t, uint8(1), typ)

	_, ok = Payload(nil).Type()
	assert.False(t, ok)
}

func TestParseTooShort(t *testing.T) {
	_, b := signedVAA(t)

	tests := []struct {
		label string
		span  []byte
	}{
		{label: "Empty", span: nil},
		{label: "PartialHeader", span: b[:5]},
		{label: "MissingSignature", span: b[:6+66]},
		{label: "PartialBody", span: b[:6+2*66+50]},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			_, err := Parse(tc.span)
			assert.ErrorIs(t, err, ErrSpanTooShort)
		})
	}
}

func TestParseEmptyPayload(t *testing.T) {
	want, b := signedVAA(t)
	b = b[:len(b)-len(want.Payload)]

	v, err := Parse(b)
	require.NoError(t, err)
	assert.Empty(t, v.Body().Payload())
}

func TestParseHeaderStopsAtSignatures(t *testing.T) {
	_, b := signedVAA(t)
	h, err := ParseHeader(b)
	require.NoError(t, err)
	assert.Len(t, h, 6+2*66)
}
