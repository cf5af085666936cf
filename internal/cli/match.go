package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkoelndorfer/dotstar/internal/rematch"
)

// Engine names accepted by --engine.
const (
	engineMemo      = "memo"
	engineBacktrack = "backtrack"
)

var (
	matchEngine string
	matchRune   bool
	matchQuiet  bool

	matchCmd = &cobra.Command{
		Use:   "match PATTERN STRING",
		Short: "Match a string against a pattern",
		Long: `match tests whether STRING is matched in full by PATTERN and prints the
verdict. The memoized engine answers in time proportional to the product of the
input lengths; the backtracking engine explores greedily and can be traced with
--log-level debug.`,
		Args: cobra.ExactArgs(2),
		RunE: runMatch,
	}
)

func init() {
	matchCmd.Flags().StringVar(&matchEngine, "engine", engineMemo, "Matching engine (memo, backtrack)")
	matchCmd.Flags().BoolVar(&matchRune, "rune", false, "Match rune-wise so '.' consumes one Unicode character")
	matchCmd.Flags().BoolVar(&matchQuiet, "quiet", false, "Suppress output, report through the exit code only")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern, input := args[0], args[1]

	var matched bool
	var err error
	switch matchEngine {
	case engineMemo:
		if matchRune {
			matched, err = rematch.Match([]rune(pattern), []rune(input))
		} else {
			matched, err = rematch.Match(pattern, input)
		}
	case engineBacktrack:
		if matchRune {
			return fmt.Errorf("the backtrack engine is byte-oriented; --rune needs --engine %s", engineMemo)
		}
		matched, err = rematch.BacktrackTrace(pattern, input, traceLogger(cmd))
	default:
		return fmt.Errorf("unknown engine %q (valid: %s, %s)", matchEngine, engineMemo, engineBacktrack)
	}
	if err != nil {
		return fmt.Errorf("pattern %q: %w", pattern, err)
	}

	log.Debug("verdict decided", "pattern", pattern, "engine", matchEngine, "matched", matched)

	if !matchQuiet {
		if matched {
			fmt.Fprintln(cmd.OutOrStdout(), "match")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no match")
		}
	}
	if !matched {
		return errNoMatch
	}
	return nil
}
