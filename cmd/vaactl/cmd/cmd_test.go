package cmd

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads/tokenbridge"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func transferVAA(t *testing.T) *vaa.VAA {
	t.Helper()
	payload, err := wireio.ToPayloadBytes(tokenbridge.Transfer{
		NormalizedAmount: uint256.NewInt(1000),
		TokenChain:       vaa.ChainIDEthereum,
		RecipientChain:   vaa.ChainIDSolana,
		Fee:              uint256.NewInt(0),
	})
	require.NoError(t, err)
	return &vaa.VAA{
		Header: vaa.Header{Version: vaa.SupportedVAAVersion},
		Body: vaa.Body{
			Timestamp:      1700000000,
			EmitterChain:   vaa.ChainIDEthereum,
			EmitterAddress: vaa.Address{0x3e},
			Sequence:       7,
			Payload:        payload,
		},
	}
}

func encodeHex(t *testing.T, v *vaa.VAA) string {
	t.Helper()
	b, err := v.Marshal()
	require.NoError(t, err)
	return hex.EncodeToString(b)
}

func TestEncodingFlag(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("encoding")
	t.Cleanup(func() {
		require.NoError(t, f.Value.Set("auto"))
		f.Changed = false
	})

	v := transferVAA(t)
	b, err := v.Marshal()
	require.NoError(t, err)

	want, err := run(t, "digest", hex.EncodeToString(b))
	require.NoError(t, err)

	out, err := run(t, "digest", "--encoding", "base64", base64.StdEncoding.EncodeToString(b))
	require.NoError(t, err)
	assert.Equal(t, want, out)

	_, err = run(t, "digest", "--encoding", "hex", "zz")
	assert.Error(t, err)

	_, err = run(t, "digest", "--encoding", "base32", hex.EncodeToString(b))
	assert.Error(t, err)
}

func TestQuorumCmd(t *testing.T) {
	out, err := run(t, "quorum", "19")
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)

	_, err = run(t, "quorum", "-1")
	assert.Error(t, err)
}

func TestDecodeCmd(t *testing.T) {
	v := transferVAA(t)
	out, err := run(t, "decode", "0x"+encodeHex(t, v))
	require.NoError(t, err)

	var view vaaView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "ethereum", view.EmitterChain)
	assert.Equal(t, uint64(7), view.Sequence)
	assert.Equal(t, v.MessageID(), view.MessageID)
	assert.Equal(t, v.SigningDigest().Hex(), view.SigningDigest)

	_, err = run(t, "decode", "0100")
	assert.ErrorIs(t, err, wireio.ErrShortRead)
}

func TestDigestCmd(t *testing.T) {
	v := transferVAA(t)
	out, err := run(t, "digest", encodeHex(t, v))
	require.NoError(t, err)
	assert.Contains(t, out, strings.TrimPrefix(v.Digest().Hex(), "0x"))
	assert.Contains(t, out, strings.TrimPrefix(v.SigningDigest().Hex(), "0x"))
}

func TestPayloadCmd(t *testing.T) {
	v := transferVAA(t)
	out, err := run(t, "payload", "--vaa", "--kind", "transfer", encodeHex(t, v))
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "*tokenbridge.Transfer"`)

	_, err = run(t, "payload", "--vaa=false", "--kind", "nope", "00")
	assert.ErrorContains(t, err, "unknown payload kind")

	_, err = run(t, "payload", "--vaa=false", "--kind", "transfer", "09")
	assert.ErrorIs(t, err, tokenbridge.ErrUnknownPayload)
}

func TestVerifyCmd(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()

	v := transferVAA(t)
	v.AddSignature(key, 0)
	out, err := run(t, "verify", "--guardians", addr, "--index", "0", encodeHex(t, v))
	require.NoError(t, err)
	assert.Contains(t, out, "verified")

	_, err = run(t, "verify", "--guardians", addr, "--index", "1", encodeHex(t, v))
	assert.ErrorIs(t, err, vaa.ErrGuardianSetMismatch)

	_, err = run(t, "verify", "--guardians", "nothex", "--index", "0", encodeHex(t, v))
	assert.ErrorContains(t, err, "invalid guardian address")
}

func TestScanCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vaas.txt")
	content := encodeHex(t, transferVAA(t)) + "\nnot-a-vaa\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, err := run(t, "scan", "--workers", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "lines: 2 decoded: 1 failed: 1")
	assert.Contains(t, out, "ethereum")
	assert.Contains(t, out, "invalid_input")
}

func TestDeploysCmd(t *testing.T) {
	out, err := run(t, "deploys", "--env", "prod", "solana")
	require.NoError(t, err)
	assert.Contains(t, out, "worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth")

	_, err = run(t, "deploys", "--env", "staging")
	assert.Error(t, err)
}

func TestDeploysEnvFromEnvironment(t *testing.T) {
	f := deploysCmd.Flags().Lookup("env")
	require.NoError(t, f.Value.Set("prod"))
	f.Changed = false

	t.Setenv("VAACTL_ENV", "dev")
	out, err := run(t, "deploys", "ethereum")
	require.NoError(t, err)
	assert.Contains(t, out, "EthereumDevnet")
}
