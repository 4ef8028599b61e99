package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [DATA]...",
	Short: "Decode hex or base64 encoded VAAs and print them as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			v, err := parseVAA(arg)
			if err != nil {
				return err
			}
			if err := printJSON(cmd.OutOrStdout(), newVAAView(v)); err != nil {
				return err
			}
		}
		return nil
	},
}

type signatureView struct {
	Index     uint8  `json:"index"`
	Signature string `json:"signature"`
}

type vaaView struct {
	Version          uint8           `json:"version"`
	GuardianSetIndex uint32          `json:"guardianSetIndex"`
	Signatures       []signatureView `json:"signatures"`
	Timestamp        uint32          `json:"timestamp"`
	Nonce            uint32          `json:"nonce"`
	EmitterChain     string          `json:"emitterChain"`
	EmitterAddress   vaa.Address     `json:"emitterAddress"`
	Sequence         uint64          `json:"sequence"`
	ConsistencyLevel uint8           `json:"consistencyLevel"`
	Payload          string          `json:"payload"`
	MessageID        string          `json:"messageId"`
	Digest           string          `json:"digest"`
	SigningDigest    string          `json:"signingDigest"`
}

func newVAAView(v *vaa.VAA) vaaView {
	sigs := make([]signatureView, 0, len(v.Signatures))
	for _, s := range v.Signatures {
		sigs = append(sigs, signatureView{Index: s.Index, Signature: s.Signature.String()})
	}
	return vaaView{
		Version:          v.Version,
		GuardianSetIndex: v.GuardianSetIndex,
		Signatures:       sigs,
		Timestamp:        v.Timestamp,
		Nonce:            v.Nonce,
		EmitterChain:     v.EmitterChain.String(),
		EmitterAddress:   v.EmitterAddress,
		Sequence:         v.Sequence,
		ConsistencyLevel: v.ConsistencyLevel,
		Payload:          hex.EncodeToString(v.Payload),
		MessageID:        v.MessageID(),
		Digest:           v.Digest().Hex(),
		SigningDigest:    v.SigningDigest().Hex(),
	}
}

func parseVAA(arg string) (*vaa.VAA, error) {
	b, err := readInput(arg)
	if err != nil {
		return nil, err
	}
	v, err := vaa.Unmarshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to decode VAA: %w", err)
	}
	return v, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
