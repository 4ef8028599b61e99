package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type configOptions struct {
	// FilePath is the config file to load. When empty, $HOME/.vaactl.yaml is
	// used if it exists.
	FilePath string

	// EnvPrefix is prepended to environment variable names, so "--workers"
	// may be set with VAACTL_WORKERS.
	EnvPrefix string
}

// initFileConfig fills in flags that were not set on the command line, with
// the following precedence:
// 1. Command line flags
// 2. Environment variables
// 3. Config file
// 4. Cobra default values
func initFileConfig(cmd *cobra.Command, options configOptions) error {
	v := viper.New()

	path := options.FilePath
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			def := filepath.Join(home, ".vaactl.yaml")
			if _, err := os.Stat(def); err == nil {
				path = def
			}
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(options.EnvPrefix)
	v.AutomaticEnv()

	return bindFlags(cmd, v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				errs = append(errs, fmt.Errorf("failed to bind flag %s: %w", f.Name, err))
			}
		}
	})
	return errors.Join(errs...)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		zap.NewAtomicLevelAt(lvl))), nil
}
