// This file provides the memoized matching engine, the primary strategy behind
// the public API. It evaluates the match recurrence over (input, pattern) suffix
// pairs, recording each result so no pair is computed twice. For the alternative
// backtracking engine, see backtrack.go.

package rematch

// memoCell is one tri-state cell of the memo table.
type memoCell int8

const (
	memoUnknown memoCell = iota
	memoNoMatch
	memoMatch
)

// newMemoTable allocates a (slen+1) x (plen+1) table of unknown cells, one per
// (input position, pattern position) suffix pair. Every row is allocated
// independently: rows sharing backing storage would alias results from one input
// position into all others.
func newMemoTable(slen, plen int) [][]memoCell {
	table := make([][]memoCell, slen+1)
	for i := range table {
		table[i] = make([]memoCell, plen+1)
	}
	return table
}

// matchMemo runs the memoized engine for byte-oriented types. The memo table
// lives for exactly one call; nothing is shared across calls.
func matchMemo[T ~string | ~[]byte](pattern, s T) bool {
	memo := newMemoTable(len(s), len(pattern))
	return matchSuffix(memo, pattern, s, 0, 0)
}

// matchSuffix reports whether s[si:] is fully matched by pattern[pi:].
//
// The recurrence mirrors the pattern's atom structure. When the atom at pi is
// repeated (pattern[pi+1] == '*'), the repeat either contributes zero characters
// (skip to pi+2) or consumes one matching character and stays on the same atom.
// Otherwise the atom must consume exactly one matching character. Each computed
// (pi, si) result is memoized before returning, so every suffix pair is
// evaluated at most once: O(len(s) x len(pattern)) time and space.
func matchSuffix[T ~string | ~[]byte](memo [][]memoCell, pattern, s T, pi, si int) bool {
	if pi >= len(pattern) {
		return si >= len(s)
	}
	if c := memo[si][pi]; c != memoUnknown {
		return c == memoMatch
	}

	// Whether the atom at pi accepts the input character at si.
	matched := si < len(s) && (pattern[pi] == s[si] || pattern[pi] == metaAny)

	var result bool
	if pi+1 < len(pattern) && pattern[pi+1] == metaRepeat {
		result = matchSuffix(memo, pattern, s, pi+2, si)
		if !result && matched {
			result = matchSuffix(memo, pattern, s, pi, si+1)
		}
	} else {
		result = matched && matchSuffix(memo, pattern, s, pi+1, si+1)
	}

	if result {
		memo[si][pi] = memoMatch
	} else {
		memo[si][pi] = memoNoMatch
	}
	return result
}

// matchMemoRunes is the rune-slice counterpart of matchMemo. It is structurally
// identical but indexes runes, so `.` consumes one rune rather than one byte.
func matchMemoRunes(pattern, s []rune) bool {
	memo := newMemoTable(len(s), len(pattern))
	return matchSuffixRunes(memo, pattern, s, 0, 0)
}

// matchSuffixRunes implements the matchSuffix recurrence for rune slices.
func matchSuffixRunes(memo [][]memoCell, pattern, s []rune, pi, si int) bool {
	if pi >= len(pattern) {
		return si >= len(s)
	}
	if c := memo[si][pi]; c != memoUnknown {
		return c == memoMatch
	}

	matched := si < len(s) && (pattern[pi] == s[si] || pattern[pi] == metaAny)

	var result bool
	if pi+1 < len(pattern) && pattern[pi+1] == metaRepeat {
		result = matchSuffixRunes(memo, pattern, s, pi+2, si)
		if !result && matched {
			result = matchSuffixRunes(memo, pattern, s, pi, si+1)
		}
	} else {
		result = matched && matchSuffixRunes(memo, pattern, s, pi+1, si+1)
	}

	if result {
		memo[si][pi] = memoMatch
	} else {
		memo[si][pi] = memoNoMatch
	}
	return result
}
