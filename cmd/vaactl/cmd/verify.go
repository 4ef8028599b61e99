package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

var (
	verifyGuardians *[]string
	verifyIndex     *uint32
)

var verifyCmd = &cobra.Command{
	Use:   "verify [DATA]",
	Short: "Verify the guardian signatures on an encoded VAA",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := parseGuardians(*verifyGuardians)
		if err != nil {
			return err
		}
		v, err := parseVAA(args[0])
		if err != nil {
			return err
		}

		gs := vaa.NewGuardianSet(keys, *verifyIndex)
		if err := v.Verify(gs, nil); err != nil {
			return fmt.Errorf("VAA %s failed verification: %w", v.MessageID(), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "VAA %s verified: %d of %d guardians signed (quorum %d)\n",
			v.MessageID(), len(v.Signatures), len(keys), gs.Quorum())
		return nil
	},
}

func parseGuardians(in []string) ([]common.Address, error) {
	keys := make([]common.Address, 0, len(in))
	for _, s := range in {
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid guardian address %q", s)
		}
		keys = append(keys, common.HexToAddress(s))
	}
	return keys, nil
}

func init() {
	verifyGuardians = verifyCmd.Flags().StringSlice("guardians", nil, "Comma separated guardian addresses, in guardian set order")
	verifyIndex = verifyCmd.Flags().Uint32("index", 0, "Guardian set index")
}
