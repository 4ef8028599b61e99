package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/internal/scanner"
)

var (
	cfgFile       string
	logLevel      string
	inputEncoding string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vaactl",
	Short: "Inspect, digest and verify VAAs",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initFileConfig(cmd, configOptions{FilePath: cfgFile, EnvPrefix: "VAACTL"})
	},
	SilenceUsage: true,
}

// readInput decodes a command line argument using --encoding.
func readInput(arg string) ([]byte, error) {
	enc, err := scanner.ParseEncoding(inputEncoding)
	if err != nil {
		return nil, err
	}
	return scanner.ParseInput(arg, enc)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.vaactl.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&inputEncoding, "encoding", string(scanner.EncodingAuto), "Encoding of VAA input (auto, hex, base64)")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(payloadCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(quorumCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(deploysCmd)
}
