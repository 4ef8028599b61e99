package scanner

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

func testVAA(chain vaa.ChainID, seq uint64) *vaa.VAA {
	return &vaa.VAA{
		Header: vaa.Header{Version: vaa.SupportedVAAVersion},
		Body: vaa.Body{
			Timestamp:      1700000000,
			EmitterChain:   chain,
			EmitterAddress: vaa.Address{0x04},
			Sequence:       seq,
			Payload:        []byte("hello"),
		},
	}
}

func encode(t *testing.T, v *vaa.VAA) []byte {
	t.Helper()
	b, err := v.Marshal()
	require.NoError(t, err)
	return b
}

func TestParseInput(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0xff}
	tests := []struct {
		in  string
		enc Encoding
	}{
		{in: "deadbeefff", enc: EncodingAuto},
		{in: "0xdeadbeefff", enc: EncodingAuto},
		{in: "  deadbeefff\n", enc: ""},
		{in: base64.StdEncoding.EncodeToString(want), enc: EncodingAuto},
		{in: "0xdeadbeefff", enc: EncodingHex},
		{in: base64.StdEncoding.EncodeToString(want), enc: EncodingBase64},
	}
	for _, tc := range tests {
		b, err := ParseInput(tc.in, tc.enc)
		require.NoError(t, err, tc.in)
		assert.Equal(t, want, b, tc.in)
	}

	_, err := ParseInput("not valid!", EncodingAuto)
	assert.Error(t, err)
	_, err = ParseInput("3q2+7/8=", EncodingHex)
	assert.Error(t, err)
	_, err = ParseInput("deadbeefff", "base32")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestParseInputAmbiguous(t *testing.T) {
	// "abcd" is valid as both hex and base64.
	b, err := ParseInput("abcd", EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, b)

	b, err = ParseInput("abcd", EncodingBase64)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x69, 0xb7, 0x1d}, b)
}

func TestParseEncoding(t *testing.T) {
	for in, want := range map[string]Encoding{"": EncodingAuto, "auto": EncodingAuto, "HEX": EncodingHex, "base64": EncodingBase64} {
		got, err := ParseEncoding(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseEncoding("base32")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestScan(t *testing.T) {
	eth := encode(t, testVAA(vaa.ChainIDEthereum, 1))
	sol := encode(t, testVAA(vaa.ChainIDSolana, 2))
	v2 := encode(t, testVAA(vaa.ChainIDSolana, 3))
	v2[0] = 2

	input := strings.Join([]string{
		hex.EncodeToString(eth),
		"",
		"0x" + hex.EncodeToString(sol),
		base64.StdEncoding.EncodeToString(eth),
		"zz-not-an-encoding",
		hex.EncodeToString(eth[:vaa.MinVAALength-1]),
		hex.EncodeToString(v2),
	}, "\n")

	ethBefore := testutil.ToFloat64(vaasDecodedTotal.WithLabelValues(vaa.ChainIDEthereum.String()))
	shortBefore := testutil.ToFloat64(vaaFailuresTotal.WithLabelValues(ReasonShortRead))

	s := New(zap.NewNop(), 4)
	summary, err := s.Scan(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 6, summary.Lines)
	assert.Equal(t, 3, summary.Decoded)
	assert.Equal(t, 3, summary.Failed())
	assert.Equal(t, map[vaa.ChainID]int{vaa.ChainIDEthereum: 2, vaa.ChainIDSolana: 1}, summary.ByChain)
	assert.Equal(t, map[string]int{ReasonInput: 1, ReasonShortRead: 1, ReasonVersion: 1}, summary.Failures)

	assert.Equal(t, ethBefore+2, testutil.ToFloat64(vaasDecodedTotal.WithLabelValues(vaa.ChainIDEthereum.String())))
	assert.Equal(t, shortBefore+1, testutil.ToFloat64(vaaFailuresTotal.WithLabelValues(ReasonShortRead)))
}

func TestScanVerifies(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	signed := testVAA(vaa.ChainIDEthereum, 1)
	signed.AddSignature(key, 0)
	unsigned := testVAA(vaa.ChainIDEthereum, 2)

	input := hex.EncodeToString(encode(t, signed)) + "\n" + hex.EncodeToString(encode(t, unsigned)) + "\n"

	s := New(zap.NewNop(), 2)
	s.GuardianSet = vaa.NewGuardianSet([]common.Address{crypto.PubkeyToAddress(key.PublicKey)}, 0)
	summary, err := s.Scan(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Decoded)
	assert.Equal(t, map[string]int{ReasonSignatures: 1}, summary.Failures)
}

func TestScanEncoding(t *testing.T) {
	b := encode(t, testVAA(vaa.ChainIDSolana, 1))
	input := base64.StdEncoding.EncodeToString(b) + "\n" + "0x" + hex.EncodeToString(b) + "\n"

	s := New(zap.NewNop(), 1)
	s.Encoding = EncodingBase64
	summary, err := s.Scan(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Lines)
	assert.Equal(t, 1, summary.Decoded)
	assert.Equal(t, 1, summary.ByChain[vaa.ChainIDSolana])
	assert.Equal(t, 1, summary.Failed())
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, hex.EncodeToString(encode(t, testVAA(vaa.ChainIDSolana, uint64(i)))))
	}
	_, err := New(zap.NewNop(), 1).Scan(ctx, strings.NewReader(strings.Join(lines, "\n")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("wrapped: %w", vaa.ErrNoQuorum), want: ReasonSignatures},
		{err: fmt.Errorf("wrapped: %w", vaa.ErrSignatureSignerRepeat), want: ReasonSignatures},
		{err: vaa.ErrUnsupportedVersion, want: ReasonVersion},
		{err: fmt.Errorf("oops"), want: ReasonMalformed},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.err), tc.err.Error())
	}
}

func TestStatusServer(t *testing.T) {
	s := &statusServer{logger: zap.NewNop()}
	srv := httptest.NewServer(s.router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, ":0", NewStatusServer(":0", zap.NewNop()).Addr)
}
