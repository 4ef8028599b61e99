// Package scanner decodes batches of encoded VAAs in parallel and records what
// it saw in prometheus metrics.
package scanner

import (
	"bufio"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

var (
	vaasDecodedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaactl_scan_vaas_decoded_total",
			Help: "Total number of VAAs decoded by the scanner",
		},
		[]string{"emitter_chain"})

	vaaFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaactl_scan_failures_total",
			Help: "Total number of scanned lines that failed to decode or verify",
		},
		[]string{"reason"})

	payloadSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vaactl_scan_payload_bytes",
			Help:    "Size of decoded VAA payloads",
			Buckets: prometheus.ExponentialBuckets(16, 4, 8),
		})
)

// Failure reasons used as metric labels and Summary keys.
const (
	ReasonInput      = "invalid_input"
	ReasonShortRead  = "short_read"
	ReasonVersion    = "unsupported_version"
	ReasonSignatures = "signatures"
	ReasonMalformed  = "malformed"
)

const maxLineLen = 1 << 20

// Encoding selects how textual input is turned into bytes.
type Encoding string

const (
	EncodingAuto   Encoding = "auto"
	EncodingHex    Encoding = "hex"
	EncodingBase64 Encoding = "base64"
)

var ErrInvalidEncoding = errors.New("invalid encoding")

// ParseEncoding parses "auto", "hex" or "base64". Empty means auto.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(s)); e {
	case "":
		return EncodingAuto, nil
	case EncodingAuto, EncodingHex, EncodingBase64:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEncoding, s)
	}
}

// ParseInput decodes s as enc. Hex may carry a 0x prefix.
//
// EncodingAuto reads 0x-prefixed input as hex, unprefixed input made only of
// hex digits as hex, and anything else as standard base64. Short base64
// strings such as "abcd" are also valid hex, so callers that know their input
// is base64 should say so.
func ParseInput(s string, enc Encoding) ([]byte, error) {
	s = strings.TrimSpace(s)
	switch enc {
	case EncodingHex:
		b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return b, nil
	case EncodingBase64:
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 input: %w", err)
		}
		return b, nil
	case EncodingAuto, "":
		if strings.HasPrefix(s, "0x") {
			return ParseInput(s, EncodingHex)
		}
		if b, err := hex.DecodeString(s); err == nil {
			return b, nil
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("input is neither hex nor base64: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEncoding, enc)
	}
}

// Classify maps a decode or verification error to a failure reason.
func Classify(err error) string {
	switch {
	case errors.Is(err, wireio.ErrShortRead):
		return ReasonShortRead
	case errors.Is(err, vaa.ErrUnsupportedVersion):
		return ReasonVersion
	case errors.Is(err, vaa.ErrNotSigned),
		errors.Is(err, vaa.ErrNoQuorum),
		errors.Is(err, vaa.ErrGuardianSetMismatch),
		errors.Is(err, vaa.ErrSignatureIndexRange),
		errors.Is(err, vaa.ErrSignatureIndexOrder),
		errors.Is(err, vaa.ErrSignatureSignerInvalid):
		return ReasonSignatures
	default:
		return ReasonMalformed
	}
}

// Summary aggregates the results of one Scan.
type Summary struct {
	Lines    int
	Decoded  int
	ByChain  map[vaa.ChainID]int
	Failures map[string]int
}

func newSummary() *Summary {
	return &Summary{
		ByChain:  make(map[vaa.ChainID]int),
		Failures: make(map[string]int),
	}
}

func (s *Summary) Failed() int {
	n := 0
	for _, c := range s.Failures {
		n += c
	}
	return n
}

type Scanner struct {
	logger  *zap.Logger
	workers int
	// GuardianSet, when set, makes every decoded VAA go through signature
	// verification.
	GuardianSet *vaa.GuardianSet
	Recoverer   vaa.SignatureRecoverer
	// Encoding of each line. The zero value means EncodingAuto.
	Encoding Encoding
}

func New(logger *zap.Logger, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		logger:  logger.With(zap.String("component", "scanner")),
		workers: workers,
	}
}

// Scan decodes every non-empty line of r. Decode failures are counted, not
// returned; the returned error is a read or context error.
func (s *Scanner) Scan(ctx context.Context, r io.Reader) (*Summary, error) {
	summary := newSummary()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	lineNo := 0
	for lines.Scan() {
		lineNo++
		line := strings.TrimSpace(lines.Text())
		if line == "" {
			continue
		}
		if gctx.Err() != nil {
			break
		}
		n := lineNo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, reason, err := s.process(line)

			mu.Lock()
			defer mu.Unlock()
			summary.Lines++
			if err != nil {
				summary.Failures[reason]++
				vaaFailuresTotal.WithLabelValues(reason).Inc()
				s.logger.Debug("failed to process line", zap.Int("line", n), zap.String("reason", reason), zap.Error(err))
				return nil
			}
			summary.Decoded++
			summary.ByChain[v.EmitterChain]++
			vaasDecodedTotal.WithLabelValues(v.EmitterChain.String()).Inc()
			payloadSize.Observe(float64(len(v.Payload)))
			return nil
		})
	}

	waitErr := g.Wait()
	if err := lines.Err(); err != nil {
		return summary, fmt.Errorf("failed to read input: %w", err)
	}
	if waitErr != nil {
		return summary, waitErr
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	s.logger.Info("scan complete",
		zap.Int("lines", summary.Lines),
		zap.Int("decoded", summary.Decoded),
		zap.Int("failed", summary.Failed()))
	return summary, nil
}

func (s *Scanner) process(line string) (*vaa.VAA, string, error) {
	b, err := ParseInput(line, s.Encoding)
	if err != nil {
		return nil, ReasonInput, err
	}
	v, err := vaa.Unmarshal(b)
	if err != nil {
		return nil, Classify(err), err
	}
	if s.GuardianSet != nil {
		if err := v.Verify(s.GuardianSet, s.Recoverer); err != nil {
			return v, Classify(err), err
		}
	}
	return v, "", nil
}
