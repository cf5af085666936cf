// Package dotstar matches whole strings against regex-lite patterns built from
// literal characters and two metacharacters. A match covers the entire input;
// there is no substring search.
//
// # Pattern Syntax:
//
//   - `.`: Matches any single character (the character must be present).
//   - `*`: Matches zero or more occurrences of the immediately preceding
//     literal or `.`. It cannot appear first and cannot follow another `*`.
//
// Every other character matches itself exactly once. There is no escape
// syntax: a literal `*` or `.` in the input can only be matched by `.`.
// Malformed patterns are reported through ErrBadPattern, never as a plain
// non-match.
//
// Matching runs on a memoized recurrence over (input, pattern) suffix pairs,
// so verdicts cost O(len(s) x len(pattern)) even for patterns that force
// backtracking matchers into superlinear work.
//
// For Unicode-aware matching, see MatchByRune.
package dotstar

import (
	"github.com/jkoelndorfer/dotstar/internal/rematch"
)

// ErrBadPattern reports a malformed pattern: a `*` with nothing to repeat, as
// in `*ab` or `a**b`.
var ErrBadPattern = rematch.ErrBadPattern

// Match reports whether s is matched in full by pattern. It operates on bytes,
// which is the fastest option and sufficient for ASCII input. A `.` consumes
// exactly one byte, so it does NOT treat a multi-byte Unicode character as one
// unit; for that, use MatchByRune.
func Match(pattern, s string) (bool, error) {
	return rematch.Match(pattern, s)
}

// MatchByRune reports whether s is matched in full by pattern, with full
// support for Unicode characters. It operates on runes instead of bytes, so a
// `.` consumes one character even when that character spans several bytes
// (e.g. `.` matches `é`).
//
// The correctness comes at the cost of converting both strings to rune slices
// before matching.
func MatchByRune(pattern, s string) (bool, error) {
	return rematch.Match([]rune(pattern), []rune(s))
}

// MatchFromByte reports whether the byte slice s is matched in full by
// pattern. It is functionally equivalent to Match but operates directly on
// byte slices, which avoids string conversion allocations in
// performance-sensitive code. The input need not be valid UTF-8.
func MatchFromByte(pattern, s []byte) (bool, error) {
	return rematch.Match(pattern, s)
}
