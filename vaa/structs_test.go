package vaa

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const (
	testBodyHex = "00000000" + "00000001" + "0001" +
		"0000000000000000000000000000000000000000000000000000000000000004" +
		"0000000000000001" + "20" + "616161616161"
	testVAAHex = "01" + "00000001" + "00" + testBodyHex
)

func getVaa() VAA {
	return VAA{
		Header: Header{
			Version:          1,
			GuardianSetIndex: 1,
			Signatures:       []Signature{},
		},
		Body: Body{
			Timestamp:        0,
			Nonce:            1,
			Sequence:         1,
			ConsistencyLevel: 32,
			EmitterChain:     ChainIDSolana,
			EmitterAddress:   GovernanceEmitter,
			Payload:          []byte("aaaaaa"),
		},
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestMarshal(t *testing.T) {
	v := getVaa()
	b, err := v.Marshal()
	require.NoError(t, err)
	assert.Equal(t, testVAAHex, hex.EncodeToString(b))
	assert.Equal(t, len(b), v.WrittenSize())
}

func TestUnmarshal(t *testing.T) {
	want := getVaa()
	got, err := Unmarshal(mustHex(t, testVAAHex))
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestUnmarshalNoPayload(t *testing.T) {
	want := getVaa()
	want.Payload = []byte{}

	raw := mustHex(t, testVAAHex)
	got, err := Unmarshal(raw[:len(raw)-6])
	require.NoError(t, err)
	assert.Empty(t, got.Payload)
	assert.Equal(t, want.Body.Sequence, got.Body.Sequence)
	assert.Equal(t, want.Header, got.Header)
}

func TestUnmarshalBigPayload(t *testing.T) {
	v := getVaa()
	v.Payload = make([]byte, 2000)
	for i := range v.Payload {
		v.Payload[i] = byte(i % 255)
	}

	b, err := v.Marshal()
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, v, *got)
}

func TestUnmarshalErrors(t *testing.T) {
	raw := mustHex(t, testVAAHex)

	_, err := Unmarshal(raw[:MinVAALength-1])
	assert.ErrorIs(t, err, wireio.ErrShortRead)

	bad := bytes.Clone(raw)
	bad[0] = 2
	_, err = Unmarshal(bad)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	// The stream decoder does not enforce a version.
	var v VAA
	require.NoError(t, v.Read(bytes.NewReader(bad)))
	assert.Equal(t, uint8(2), v.Version)
}

func TestHeaderSignatures(t *testing.T) {
	var sig SignatureData
	for i := range sig {
		sig[i] = byte(i)
	}
	h := Header{
		Version:          1,
		GuardianSetIndex: 4,
		Signatures: []Signature{
			{Index: 0, Signature: sig},
			{Index: 7, Signature: sig},
		},
	}

	b, err := wireio.ToBytes(h)
	require.NoError(t, err)
	assert.Len(t, b, HeaderMinLength+2*SignatureSize)
	assert.Equal(t, h.WrittenSize(), len(b))
	assert.Equal(t, "010000000402", hex.EncodeToString(b[:6]))
	assert.Equal(t, byte(7), b[6+SignatureSize])

	var got Header
	require.NoError(t, wireio.ReadSlice(b, &got))
	assert.Equal(t, h, got)
}

func TestHeaderSignatureCountLimit(t *testing.T) {
	h := Header{Version: 1, Signatures: make([]Signature, MaxSignatures)}
	b, err := wireio.ToBytes(h)
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), b[5])

	h.Signatures = append(h.Signatures, Signature{})
	_, err = wireio.ToBytes(h)
	assert.ErrorIs(t, err, wireio.ErrLengthOverflow)
}

func TestHeaderTruncatedSignatures(t *testing.T) {
	// Declares three signatures, carries one.
	b := append(mustHex(t, "010000000003"), make([]byte, SignatureSize)...)
	var h Header
	err := h.Read(bytes.NewReader(b))
	assert.ErrorIs(t, err, wireio.ErrShortRead)
}

func TestBodyConsumesRemainder(t *testing.T) {
	body := mustHex(t, testBodyHex)
	var b Body
	r := bytes.NewReader(body)
	require.NoError(t, b.Read(r))
	assert.Zero(t, r.Len())
	assert.Equal(t, []byte("aaaaaa"), b.Payload)
	assert.Equal(t, BodyMinLength+6, b.WrittenSize())

	enc, err := b.Marshal()
	require.NoError(t, err)
	assert.Equal(t, body, enc)
}

func TestBodyTruncated(t *testing.T) {
	body := mustHex(t, testBodyHex)
	for _, n := range []int{0, 3, 9, 41, 50} {
		var b Body
		err := b.Read(bytes.NewReader(body[:n]))
		assert.ErrorIs(t, err, wireio.ErrShortRead, "prefix of %d bytes", n)
	}
}

func TestDigests(t *testing.T) {
	v := getVaa()
	assert.Equal(t, common.HexToHash("4fae136bb1fd782fe1b5180ba735cdc83bcece3f9b7fd0e5e35300a61c8acd8f"), v.SigningDigest())
	assert.Equal(t, "4fae136bb1fd782fe1b5180ba735cdc83bcece3f9b7fd0e5e35300a61c8acd8f", v.HexDigest())
	assert.Equal(t, v.SigningDigest(), SigningDigestOf(mustHex(t, testBodyHex)))

	digest := v.Digest()
	assert.NotEqual(t, digest, v.SigningDigest())

	// Signatures are not covered by the digest.
	v.AddSignature(mustKey(t), 0)
	assert.Equal(t, digest, v.Digest())

	v.Nonce++
	assert.NotEqual(t, digest, v.Digest())
}

func TestMessageID(t *testing.T) {
	v := getVaa()
	assert.Equal(t, "1/0000000000000000000000000000000000000000000000000000000000000004/1", v.MessageID())
}

func TestBodyTime(t *testing.T) {
	b := Body{Timestamp: 1700000000}
	assert.Equal(t, int64(1700000000), b.Time().Unix())
}

func TestBinaryMarshaler(t *testing.T) {
	v := getVaa()
	b, err := v.MarshalBinary()
	require.NoError(t, err)

	var got VAA
	require.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, v, got)
}

func TestAddressJSON(t *testing.T) {
	addr, err := StringToAddress("0x0290fb167208af455bb137780163b7b7a9a10c16")
	require.NoError(t, err)
	assert.Equal(t, "0000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16", addr.String())

	b, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.Equal(t, `"0000000000000000000000000290fb167208af455bb137780163b7b7a9a10c16"`, string(b))

	var got Address
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, addr, got)

	assert.Error(t, got.UnmarshalJSON([]byte(`"derp"`)))
}

func TestStringToAddress(t *testing.T) {
	tests := []struct {
		label   string
		value   string
		wantErr bool
	}{
		{label: "empty", value: "", wantErr: true},
		{label: "not hex", value: "zz", wantErr: true},
		{label: "20 bytes", value: "0x" + strings.Repeat("ab", 20)},
		{label: "32 bytes", value: strings.Repeat("ab", 32)},
		{label: "33 bytes", value: strings.Repeat("ab", 33), wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			_, err := StringToAddress(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBytesToAddress(t *testing.T) {
	addr, err := BytesToAddress([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, byte(1), addr[30])
	assert.Equal(t, byte(2), addr[31])

	_, err = BytesToAddress(make([]byte, 33))
	assert.Error(t, err)
}

func TestSignatureDataString(t *testing.T) {
	var sig SignatureData
	sig[31] = 4
	sig[63] = 4
	want := strings.Repeat("00", 31) + "04" + strings.Repeat("00", 31) + "04" + "00"
	assert.Equal(t, want, sig.String())
}
