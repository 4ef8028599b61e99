package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/internal/scanner"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
)

var (
	scanWorkers     *int
	scanMetricsAddr *string
	scanGuardians   *[]string
	scanIndex       *uint32
)

var scanCmd = &cobra.Command{
	Use:   "scan [FILE]",
	Short: "Decode a file of newline separated VAAs and report what was found",
	Long: `Decode a file of newline separated hex or base64 VAAs in parallel.

When --metricsAddr is set, prometheus metrics are served on that address
during the scan and until the process is interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanWorkers = scanCmd.Flags().Int("workers", 4, "Number of decoding workers")
	scanMetricsAddr = scanCmd.Flags().String("metricsAddr", "", "Listen address for /metrics and /health (disabled if empty)")
	scanGuardians = scanCmd.Flags().StringSlice("guardians", nil, "Verify signatures against these guardian addresses")
	scanIndex = scanCmd.Flags().Uint32("index", 0, "Guardian set index used with --guardians")
}

func runScan(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var srv *http.Server
	if *scanMetricsAddr != "" {
		srv = scanner.NewStatusServer(*scanMetricsAddr, logger)
		go func() {
			logger.Info("status server listening", zap.String("addr", *scanMetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("status server failed", zap.Error(err))
			}
		}()
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := scanner.ParseEncoding(inputEncoding)
	if err != nil {
		return err
	}
	s := scanner.New(logger, *scanWorkers)
	s.Encoding = enc
	if len(*scanGuardians) > 0 {
		keys, err := parseGuardians(*scanGuardians)
		if err != nil {
			return err
		}
		s.GuardianSet = vaa.NewGuardianSet(keys, *scanIndex)
	}

	summary, err := s.Scan(ctx, f)
	if err != nil {
		return err
	}
	printSummary(cmd, summary)

	if srv != nil {
		logger.Info("scan finished, serving metrics until interrupted")
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

func printSummary(cmd *cobra.Command, summary *scanner.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "lines: %d decoded: %d failed: %d\n", summary.Lines, summary.Decoded, summary.Failed())

	chains := make([]vaa.ChainID, 0, len(summary.ByChain))
	for c := range summary.ByChain {
		chains = append(chains, c)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	for _, c := range chains {
		fmt.Fprintf(out, "  %-20s %d\n", c, summary.ByChain[c])
	}

	reasons := make([]string, 0, len(summary.Failures))
	for r := range summary.Failures {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		fmt.Fprintf(out, "  %-20s %d\n", r, summary.Failures[r])
	}
}
