package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads/corebridge"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads/liquidity"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/payloads/tokenbridge"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

var (
	payloadKind  *string
	payloadInVAA *bool
)

var payloadDecoders = map[string]func([]byte) (any, error){
	"message": func(b []byte) (any, error) {
		return wireio.ReadPayloadSlice[payloads.Message](b)
	},
	"decree": func(b []byte) (any, error) {
		return corebridge.DecodeDecree(b)
	},
	"core-governance": func(b []byte) (any, error) {
		g, err := wireio.ReadPayloadSlice[corebridge.Governance](b)
		if err != nil {
			return nil, err
		}
		return g.Decree, nil
	},
	"token-governance": func(b []byte) (any, error) {
		g, err := wireio.ReadPayloadSlice[tokenbridge.Governance](b)
		if err != nil {
			return nil, err
		}
		return g.Action, nil
	},
	"transfer": func(b []byte) (any, error) {
		return tokenbridge.Decode(b)
	},
	"liquidity": func(b []byte) (any, error) {
		return liquidity.Decode(b)
	},
	"deposit": func(b []byte) (any, error) {
		return liquidity.DecodeDeposit(b)
	},
}

func payloadKinds() []string {
	kinds := make([]string, 0, len(payloadDecoders))
	for k := range payloadDecoders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

var payloadCmd = &cobra.Command{
	Use:   "payload [DATA]",
	Short: "Decode an application payload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decode, ok := payloadDecoders[*payloadKind]
		if !ok {
			return fmt.Errorf("unknown payload kind %q, expected one of %s", *payloadKind, strings.Join(payloadKinds(), ", "))
		}

		b, err := readInput(args[0])
		if err != nil {
			return err
		}
		if *payloadInVAA {
			v, err := vaa.Unmarshal(b)
			if err != nil {
				return fmt.Errorf("failed to decode VAA: %w", err)
			}
			b = v.Payload
		}

		p, err := decode(b)
		if err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", *payloadKind, err)
		}
		return printJSON(cmd.OutOrStdout(), struct {
			Type    string `json:"type"`
			Payload any    `json:"payload"`
		}{fmt.Sprintf("%T", p), p})
	},
}

func init() {
	payloadKind = payloadCmd.Flags().String("kind", "message", "Payload kind ("+strings.Join(payloadKinds(), ", ")+")")
	payloadInVAA = payloadCmd.Flags().Bool("vaa", false, "Treat DATA as a whole VAA and decode its payload")
}
