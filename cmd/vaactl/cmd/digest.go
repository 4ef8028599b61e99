package cmd

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/raw"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

var digestCmd = &cobra.Command{
	Use:   "digest [DATA]",
	Short: "Print the body digest and signing digest of an encoded VAA",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := readInput(args[0])
		if err != nil {
			return err
		}
		v, err := raw.Parse(b)
		if err != nil {
			return fmt.Errorf("failed to parse VAA: %w", err)
		}
		digest := v.Body().Digest()
		signing := v.Body().SigningDigest()
		fmt.Fprintf(cmd.OutOrStdout(), "digest:         %s\nsigning digest: %s\n",
			hex.EncodeToString(digest[:]), hex.EncodeToString(signing[:]))
		return nil
	},
}

var quorumCmd = &cobra.Command{
	Use:   "quorum [GUARDIANS]",
	Short: "Print the number of signatures needed for a guardian set of the given size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid guardian count: %w", err)
		}
		if n < 0 {
			return fmt.Errorf("guardian count cannot be negative: %d", n)
		}
		fmt.Fprintln(cmd.OutOrStdout(), vaa.CalculateQuorum(n))
		return nil
	},
}
