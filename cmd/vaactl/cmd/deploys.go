package cmd

import (
	"encoding/hex"
	"fmt"
	"text/tabwriter"

	"github.com/mr-tron/base58"
	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/deploys"
)

var deploysEnv *string

var deploysCmd = &cobra.Command{
	Use:   "deploys [NAME]",
	Short: "List known contract deployments, or show the one called NAME",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := deploys.EnvironmentFromString(*deploysEnv)
		if err != nil {
			return err
		}

		var list []*deploys.CoreDeployment
		if len(args) == 1 {
			d, err := deploys.LookupByName(args[0], env)
			if err != nil {
				return err
			}
			list = []*deploys.CoreDeployment{d}
		} else {
			list = deploys.All(env)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CHAIN\tID\tNAME\tVM\tCORE\tTOKEN BRIDGE\tNFT BRIDGE")
		for _, d := range list {
			fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
				d.Chain, uint16(d.Chain), d.Name, d.VM,
				formatAddress(d.VM, d.CoreAddress), formatAddress(d.VM, d.TokenBridgeAddress), formatAddress(d.VM, d.NFTBridgeAddress))
		}
		return w.Flush()
	},
}

// formatAddress prints Solana addresses in base58 and everything else in hex.
func formatAddress(vm deploys.VM, b []byte) string {
	switch {
	case b == nil:
		return "-"
	case vm == deploys.VMSolana:
		return base58.Encode(b)
	default:
		return hex.EncodeToString(b)
	}
}

func init() {
	deploysEnv = deploysCmd.Flags().String("env", "prod", "Network environment (prod, test, dev)")
}
