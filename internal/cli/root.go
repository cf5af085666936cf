// Package cli implements the dotstar command line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jkoelndorfer/dotstar/internal/logging"
)

// BuildInfo carries the build-time identity injected through ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// errNoMatch marks a clean "pattern did not match" outcome, which maps to its
// own exit code rather than an error message.
var errNoMatch = errors.New("no match")

var (
	// Persistent flags available to all subcommands
	logLevel string

	// log is rebuilt from the persistent flags before every command run.
	log = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dotstar",
	Short: "dotstar matches whole strings against dot-star patterns",
	Long: `dotstar matches whole strings against patterns built from literal characters,
'.' (any single character) and '*' (zero or more of the preceding character).
A match must cover the entire input; there is no substring search.

Exit status is 0 when the pattern matches, 1 when it does not, and 2 for
malformed patterns or usage errors.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the command line with the given arguments and returns the
// process exit code.
func Execute(info BuildInfo, args []string) int {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", info.Version, info.Commit, info.BuildDate)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		fmt.Fprintf(rootCmd.ErrOrStderr(), "dotstar: %v\n", err)
		return 2
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Minimum log level (debug, info, warn, error)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		log = logging.New(logging.Config{
			Level:  logging.ParseLevel(logLevel),
			Output: cmd.ErrOrStderr(),
		})
	}
}

// traceLogger returns the logger handed to the engine tracer, or nil when
// debug logging is off so the engine skips trace bookkeeping entirely.
func traceLogger(cmd *cobra.Command) *slog.Logger {
	if !log.Enabled(cmd.Context(), slog.LevelDebug) {
		return nil
	}
	return log
}
