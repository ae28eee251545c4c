package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	allowdirs "github.com/armatrix/opencode-allowdirs"
	"github.com/armatrix/opencode-allowdirs/internal/config"
)

var (
	flagStart    string
	flagBoundary string
	flagCompat   bool
	flagNoColor  bool
)

// rootCmd is the base Cobra command for the allowdirs CLI.
var rootCmd = &cobra.Command{
	Use:           "allowdirs",
	Short:         "Inspect the opencode external-directory allowlist",
	Long:          "allowdirs shows which opencode-allowlist.json files are in effect and whether given paths would be auto-approved.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// execute runs the CLI. Exit codes: 0 ok, 1 a checked path is not allowed,
// 2 any other error.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, allowdirs.ErrNotAllowed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "directory to start the config search from (default: working directory)")
	rootCmd.PersistentFlags().StringVar(&flagBoundary, "boundary", "", "directory the ancestor search stops at (default: start directory)")
	rootCmd.PersistentFlags().BoolVar(&flagCompat, "compat-prefix", false, "use the historical bare prefix match (no separator boundary)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.AddCommand(listCmd, checkCmd)
}

// newResolver builds a resolver from flags and ALLOWDIRS_* env settings.
// Flags win over env.
func newResolver() (*allowdirs.Resolver, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	start := flagStart
	if start == "" {
		start = env.StartDir
	}
	if start == "" {
		start, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}
	boundary := flagBoundary
	if boundary == "" {
		boundary = env.BoundaryDir
	}
	if boundary == "" {
		boundary = start
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: env.SlogLevel(),
	}))

	opts := []allowdirs.Option{allowdirs.WithLogger(logger)}
	if flagCompat || env.CompatPrefixMatch {
		opts = append(opts, allowdirs.WithCompatPrefixMatch())
	}
	return allowdirs.NewResolver(start, boundary, opts...), nil
}
