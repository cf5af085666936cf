package rematch

import (
	"strings"
	"sync"
	"testing"
)

// TestMatch validates full-string matching for string input across literals,
// the `.` wildcard and the `*` repeat operator.
func TestMatch(t *testing.T) {
	cases := []struct {
		s       string
		pattern string
		result  bool
	}{
		// --- Empty String cases ---
		{"", "", true},
		{"", ".*", true},
		{"", "a*", true},
		{"", "a*b*", true},
		{"", "c*c*c*", true},
		{"", ".", false}, // . requires exactly one character
		{"", "a", false},
		{"", ".*a", false}, // the trailing a still needs a character
		{"", "a*.*", true},
		{"", "..*", false}, // ..* requires at least one character

		// --- Single Character cases ---
		{"a", "", false},
		{"a", "a", true},
		{"a", "b", false},
		{"a", ".", true},
		{"a", "..", false},
		{"a", "a*", true},
		{"a", "aa*", true}, // the repeat contributes zero characters
		{"a", ".*", true},
		{"a", "a.", false},
		{"a", ".a", false},
		{"ab", ".", false}, // . matches exactly one character, not two

		// --- Literal patterns ---
		{"hello world", "hello world", true},
		{"hello", "world", false},
		{"Hello", "hello", false}, // matching is case sensitive
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"ab", "abc", false},

		// --- Dot wildcard ---
		{"cat", "c.t", true},
		{"caat", "c..t", true},
		{"ct", "c.t", false},
		{"cats", ".ats", true},
		{"hello", "he.lo", true},
		{"a b", "a.b", true},  // . matches any character, whitespace included
		{"a\tb", "a.b", true}, // tabs too
		{"test123", "test...", true},
		{"test12", "test...", false},

		// --- Repeat operator ---
		{"aa", "a", false},
		{"aa", "a*", true},
		{"aaa", "a*", true},
		{"aaa", "aa*", true},
		{"b", "a*b", true}, // a* contributes zero characters
		{"ab", "a*b", true},
		{"aab", "a*b", true},
		{"aab", "a*", false},
		{"a", "ab*", true},
		{"abbb", "ab*", true},
		{"ac", "ab*c", true},
		{"abc", "ab*c", true},
		{"abbc", "ab*c", true},
		{"aaa", "a*a", true},
		{"abcd", "d*", false},
		{"ab", ".*c", false},
		{"aaa", "ab*a*c*a", true},
		{"a", ".*..a*", false}, // the two dots need two characters

		// --- Universal patterns ---
		{"ab", ".*", true},
		{"anything at all!", ".*", true},
		{"xyz", ".*.*", true},
		{"", ".*.*", true},
		{"abc", "..*", true},

		// --- Classic combinations ---
		{"aab", "c*a*b", true}, // c* matches zero c's, a* matches both a's
		{"mississippi", "mis*is*p*.", false},
		{"mississippi", "mis*is*ip*.", true},
		{"mississippi", "m.*i.*i", true},
		{"mississippi", "m.*ss.*pi", true},

		// --- Literal affixes around a .* run ---
		{"report.pdf", "report.*", true},
		{"report", "report.*", true}, // .* contributes zero characters
		{"repo", "report.*", false},
		{"final-report", ".*report", true},
		{"final-reports", ".*report", false},
		{"ab-123-yz", "ab.*yz", true},
		{"abyz", "ab.*yz", true}, // prefix and suffix nothing between
		{"abz", "ab.*yz", false},
		{"mississippi", "m.*x", false},
		{"log.2026.txt", ".*.txt", true},
		{"logtxt", ".*.txt", true}, // the lone . matches 'g'
		{"txt", ".*.txt", false},
		{"ababa", "a.*a", true},
		{"abab", "a.*b", true},
		{"aaab", ".*ab", true},
		{"abc", "abc.*", true},

		// --- No escape syntax: metacharacters in input ---
		{"a*b", "a.b", true}, // . is the only way to match a literal '*'
		{"a*b", "a*b", false},
		{"a.b", "a.b", true},
		{"axb", "a.b", true},

		// --- Multi-byte input, byte-wise semantics ---
		{"héllo", "h.llo", false}, // é is two bytes, . consumes one
		{"héllo", "h..llo", true},
		{"héllo", "h.*llo", true},
		{"😊", "....", true}, // the emoji is four bytes
		{"😊", ".", false},

		// --- Long inputs ---
		{strings.Repeat("a", 64), "a*", true},
		{strings.Repeat("a", 64) + "b", "a*", false},
		{strings.Repeat("a", 30), strings.Repeat("a*", 15), true},
		{strings.Repeat("a", 30), strings.Repeat("a*", 15) + "b", false},
		{strings.Repeat("ab", 20), "a.*b", true},
	}

	for i, c := range cases {
		result, err := Match(c.pattern, c.s)
		if err != nil {
			t.Errorf("Test %d: Unexpected error: %v; With Pattern: `%s` and String: `%s`", i+1, err, c.pattern, c.s)
			continue
		}
		if c.result != result {
			t.Errorf("Test %d: Expected `%v`, found `%v`; With Pattern: `%s` and String: `%s`", i+1, c.result, result, c.pattern, c.s)
		}
	}
}

// TestMatchErrors validates that malformed patterns are rejected with
// ErrBadPattern for every input type, never reported as a plain non-match.
func TestMatchErrors(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		desc    string
	}{
		{"*", "", "leading repeat has nothing to attach to"},
		{"*", "a", "leading repeat has nothing to attach to"},
		{"*a", "a", "leading repeat before a literal"},
		{"**", "", "repeat of a repeat"},
		{"a**", "aa", "second repeat follows a repeat"},
		{"a**b", "ab", "doubled repeat mid-pattern"},
		{".**", ".", "doubled repeat after the any wildcard"},
		{"ab**", "ab", "doubled repeat at the end"},
		{"a**b*c", "abc", "first malformed repeat wins"},
	}

	for i, c := range cases {
		result, err := Match(c.pattern, c.s)
		if err == nil {
			t.Errorf("Test %d: Expected error for pattern '%s', but got none. %s", i+1, c.pattern, c.desc)
		}
		if err != nil && err != ErrBadPattern {
			t.Errorf("Test %d: Expected ErrBadPattern, got %v for pattern '%s'", i+1, err, c.pattern)
		}
		if result {
			t.Errorf("Test %d: Match reported true alongside an error for pattern '%s'", i+1, c.pattern)
		}

		if _, err := Match([]byte(c.pattern), []byte(c.s)); err != ErrBadPattern {
			t.Errorf("Test %d: Expected ErrBadPattern for byte pattern '%s', got %v", i+1, c.pattern, err)
		}
		if _, err := Match([]rune(c.pattern), []rune(c.s)); err != ErrBadPattern {
			t.Errorf("Test %d: Expected ErrBadPattern for rune pattern '%s', got %v", i+1, c.pattern, err)
		}
	}
}

// TestValidate validates pattern validation in isolation.
func TestValidate(t *testing.T) {
	cases := []struct {
		pattern string
		valid   bool
	}{
		{"", true},
		{"a", true},
		{".", true},
		{"a*", true},
		{".*", true},
		{"a*b*c*", true},
		{"mis*is*p*.", true},
		{"*", false},
		{"**", false},
		{"*a", false},
		{"a**", false},
		{"a**b", false},
		{".**", false},
	}

	for i, c := range cases {
		err := Validate(c.pattern)
		if c.valid && err != nil {
			t.Errorf("Test %d: Validate(`%s`) = %v, expected nil", i+1, c.pattern, err)
		}
		if !c.valid && err != ErrBadPattern {
			t.Errorf("Test %d: Validate(`%s`) = %v, expected ErrBadPattern", i+1, c.pattern, err)
		}
	}
}

// TestMatchFromByte validates byte slice matching, including inputs that are
// not valid UTF-8.
func TestMatchFromByte(t *testing.T) {
	cases := []struct {
		s       []byte
		pattern []byte
		result  bool
	}{
		{nil, nil, true},
		{[]byte(""), []byte(".*"), true},
		{nil, []byte("a*"), true},
		{[]byte("a"), []byte("."), true},
		{[]byte("aab"), []byte("c*a*b"), true},
		{[]byte("mississippi"), []byte("mis*is*p*."), false},
		{[]byte("match the exact bytes"), []byte("match the exact bytes"), true},
		{[]byte("do not match other bytes"), []byte("some other bytes"), false},

		// Arbitrary binary content is matched byte for byte.
		{[]byte{0x00, 0x01, 0x02}, []byte{0x00, 0x01, 0x02}, true},
		{[]byte{0x00, 0xff}, []byte(".."), true},
		{[]byte{0x00, 0xff}, []byte(".*"), true},
		{[]byte{0x00, 0x00, 0x00}, []byte{0x00, '*'}, true},
		{[]byte{0x00, 0x01}, []byte{0x00, '*'}, false},
	}

	for i, c := range cases {
		result, err := Match(c.pattern, c.s)
		if err != nil {
			t.Errorf("Test %d: Unexpected error: %v; With Pattern: `%s` and String: `%s`", i+1, err, c.pattern, c.s)
			continue
		}
		if c.result != result {
			t.Errorf("Test %d: Expected `%v`, found `%v`; With Pattern: `%s` and String: `%s`", i+1, c.result, result, c.pattern, c.s)
		}
	}
}

// TestMatchByRune validates rune slice matching, where `.` consumes one rune
// rather than one byte.
func TestMatchByRune(t *testing.T) {
	cases := []struct {
		s       string
		pattern string
		result  bool
	}{
		{"", "", true},
		{"", ".*", true},
		{"", ".", false},
		{"a", "a", true},
		{"a", ".", true},

		{"café", "café", true},
		{"café", "caf.", true}, // . matches 'é' as a single rune
		{"café", "caf", false},
		{"héllo", "h.llo", true},
		{"héllo", "h.*llo", true},
		{"🌟", ".", true},
		{"🌟🌟", ".*", true},
		{"🌟a🌟", ".a.", true},
		{"match an emoji 😃", "match an emoji .", true},

		{"你好世界", "你好..", true},
		{"你好世界", "你.*界", true},
		{"你好世界", "你好世界.", false}, // no rune left for the final .

		{"aaa", "ab*a*c*a", true},
		{"aab", "c*a*b", true},
		{"mississippi", "mis*is*ip*.", true},
	}

	for i, c := range cases {
		result, err := Match([]rune(c.pattern), []rune(c.s))
		if err != nil {
			t.Errorf("Test %d: Unexpected error: %v; With Pattern: `%s` and String: `%s`", i+1, err, c.pattern, c.s)
			continue
		}
		if c.result != result {
			t.Errorf("Test %d: Expected `%v`, found `%v`; With Pattern: `%s` and String: `%s`", i+1, c.result, result, c.pattern, c.s)
		}
	}
}

// TestMatchEdgeCases validates patterns that stress the memoized engine.
func TestMatchEdgeCases(t *testing.T) {
	cases := []struct {
		s       string
		pattern string
		result  bool
		desc    string
	}{
		{"aaaaab", "a*a*a*b", true, "repeat atoms share one run"},
		{"aaaaaab", "a*a*a*a*b", true, "many repeat atoms over one run"},
		{"abcdefg", "a*b*c*d*e*f*g", true, "alternating literals and repeats"},
		{"aaaaaaaaab", "a*aaaaaaaab", true, "repeat yields characters to the literal run"},
		{"", ".*.*.*", true, "stacked universal runs match empty"},
		{"ab", "a.*.*b", true, "stacked runs between literals"},
		{strings.Repeat("a", 40) + "b", strings.Repeat("a*", 20) + "c", false, "adversarial repeat pile-up"},
		{strings.Repeat("ab", 16), strings.Repeat("ab", 16), true, "long exact match"},
		{strings.Repeat("x", 50), ".*x.*x.*", true, "universal runs around required literals"},
	}

	for i, c := range cases {
		result, err := Match(c.pattern, c.s)
		if err != nil {
			t.Errorf("Test %d (%s): Unexpected error: %v; With Pattern: `%s` and String: `%s`", i+1, c.desc, err, c.pattern, c.s)
			continue
		}
		if c.result != result {
			t.Errorf("Test %d (%s): Expected `%v`, found `%v`; With Pattern: `%s` and String: `%s`", i+1, c.desc, c.result, result, c.pattern, c.s)
		}
	}
}

// TestMemoTableRows verifies that memo rows never share backing storage. A
// table built from one allocation aliased across rows would leak results
// between input positions.
func TestMemoTableRows(t *testing.T) {
	memo := newMemoTable(3, 2)
	if len(memo) != 4 {
		t.Fatalf("Expected 4 rows, found %d", len(memo))
	}
	for i, row := range memo {
		if len(row) != 3 {
			t.Fatalf("Row %d: expected 3 cells, found %d", i, len(row))
		}
	}

	memo[0][0] = memoMatch
	for i := 1; i < len(memo); i++ {
		if memo[i][0] != memoUnknown {
			t.Fatalf("Row %d shares backing storage with row 0", i)
		}
	}
}

// TestMatchConcurrent verifies that concurrent matches on shared inputs do not
// interfere; the engine keeps all state in per-call tables.
func TestMatchConcurrent(t *testing.T) {
	pattern, s := "mis*is*ip*.", "mississippi"

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				result, err := Match(pattern, s)
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
					return
				}
				if !result {
					t.Errorf("Expected `true`, found `false`; With Pattern: `%s` and String: `%s`", pattern, s)
					return
				}
			}
		}()
	}
	wg.Wait()
}
