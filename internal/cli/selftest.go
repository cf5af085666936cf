package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkoelndorfer/dotstar/internal/rematch"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in verification pairs through both engines",
	Long: `selftest runs a fixed table of pattern/string pairs with known verdicts
through both engines. Each pair passes only when both engines return the
expected verdict; any disagreement between engines is a failure even if one
of them happens to be right.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

// selftestCases holds the verification pairs: the canonical examples for this
// pattern language plus the malformed shapes that must be rejected.
var selftestCases = []struct {
	pattern string
	input   string
	want    bool
	wantErr bool
}{
	{"", "", true, false},
	{"", "a", false, false},
	{"a", "", false, false},
	{"a*", "", true, false},
	{"a", "aa", false, false},
	{"a*", "aa", true, false},
	{".*", "ab", true, false},
	{"c*a*b", "aab", true, false},
	{"mis*is*p*.", "mississippi", false, false},
	{"mis*is*ip*.", "mississippi", true, false},
	{"ab*a*c*a", "aaa", true, false},
	{".*..a*", "a", false, false},
	{"a.b", "a*b", true, false},
	{"report.*", "report.pdf", true, false},
	{"*", "a", false, true},
	{"*ab", "ab", false, true},
	{"a**", "aa", false, true},
}

func runSelftest(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	failed := 0
	for _, c := range selftestCases {
		memoResult, memoErr := rematch.Match(c.pattern, c.input)
		backResult, backErr := rematch.Backtrack(c.pattern, c.input)

		ok := (memoErr != nil) == c.wantErr && (backErr != nil) == c.wantErr
		if !c.wantErr {
			ok = ok && memoResult == c.want && backResult == c.want
		}

		if ok {
			fmt.Fprintf(out, "PASS match(%q, %q)\n", c.pattern, c.input)
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL match(%q, %q): want %v (err %v), memo %v (err %v), backtrack %v (err %v)\n",
			c.pattern, c.input, c.want, c.wantErr, memoResult, memoErr, backResult, backErr)
		log.Error("selftest pair failed", "pattern", c.pattern, "input", c.input)
	}

	fmt.Fprintf(out, "selftest: %d passed, %d failed\n", len(selftestCases)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(selftestCases))
	}
	return nil
}
