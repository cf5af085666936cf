// This file provides the backtracking state machine engine, an alternative to
// the memoized engine in match.go. It reduces the pattern to a list of atoms,
// walks them against the input with greedy repeats, and unwinds through an
// explicit checkpoint stack on failure. Adjacent repeats make it quadratic or
// worse (every checkpoint may be revisited), so the memoized engine remains the
// primary strategy; this one is kept as a cross-check and for comparison.

package rematch

import "log/slog"

// Atom is the smallest matchable unit of a pattern: a literal character or the
// any-character wildcard, repeated zero or more times when followed by `*`.
//
// `aa` is not an atom (it reduces further) and `*` alone is not an atom (there
// is nothing to repeat).
type Atom struct {
	Ch     byte // the literal to match; meaningless when Any is set
	Any    bool // matches any character instead of Ch
	Repeat bool // matches zero or more occurrences instead of exactly one
}

// matches reports whether the atom accepts the input character c.
func (a Atom) matches(c byte) bool {
	return a.Any || a.Ch == c
}

// subsumes reports whether an atom immediately following this one would be
// redundant. A repeated atom swallows a subsequent repeated atom that matches no
// character this one couldn't: `a*a*` reduces to `a*`, and `.*` swallows any
// repeated atom. Without this, patterns like `a*a*a*a*` pile up checkpoints that
// can never change the outcome. Best effort only; the worst case stays
// superlinear.
func (a Atom) subsumes(next Atom) bool {
	if !a.Repeat || !next.Repeat {
		return false
	}
	return a.Any || (!next.Any && a.Ch == next.Ch)
}

// String renders the atom in pattern syntax, e.g. "a", "a*", ".", ".*".
func (a Atom) String() string {
	s := string(a.Ch)
	if a.Any {
		s = "."
	}
	if a.Repeat {
		s += "*"
	}
	return s
}

// Atomize reduces pattern to its atom list, dropping atoms the preceding kept
// atom subsumes. It returns ErrBadPattern when a repeat operator has no atom to
// attach to.
func Atomize[T ~string | ~[]byte](pattern T) ([]Atom, error) {
	return atomize(pattern, true)
}

// atomize parses pattern into atoms. Subsumed atoms are dropped only when
// collapse is set; the raw list exists so tests can show collapsing never
// changes a match result.
func atomize[T ~string | ~[]byte](pattern T, collapse bool) ([]Atom, error) {
	atoms := make([]Atom, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c == metaRepeat {
			// A repeat operator here follows either nothing or another
			// repeat; both leave it with no atom to repeat.
			return nil, ErrBadPattern
		}
		a := Atom{Ch: c, Any: c == metaAny}
		if i+1 < len(pattern) && pattern[i+1] == metaRepeat {
			a.Repeat = true
			i++
		}
		if collapse && len(atoms) > 0 && atoms[len(atoms)-1].subsumes(a) {
			continue
		}
		atoms = append(atoms, a)
	}
	return atoms, nil
}

// checkpoint records where to resume after a failed walk: input position si with
// the atom at ai, the one following a greedy repeat. Resuming there amounts to
// the repeat having consumed one character fewer than when the checkpoint was
// taken.
type checkpoint struct {
	si int
	ai int
}

// Backtrack reports whether s is fully matched by pattern using the state
// machine engine. Semantics are identical to Match; only the strategy differs.
func Backtrack[T ~string | ~[]byte](pattern, s T) (bool, error) {
	return BacktrackTrace(pattern, s, nil)
}

// BacktrackTrace is Backtrack with per-transition tracing. Every checkpoint
// unwind and the final verdict are logged at debug level. A nil logger disables
// tracing.
func BacktrackTrace[T ~string | ~[]byte](pattern, s T, log *slog.Logger) (bool, error) {
	atoms, err := Atomize(pattern)
	if err != nil {
		return false, err
	}
	if log != nil {
		log.Debug("pattern atomized", "atoms", atoms, "input_len", len(s))
	}
	matched := runAtoms(atoms, s, log)
	if log != nil {
		log.Debug("walk finished", "matched", matched)
	}
	return matched, nil
}

// runAtoms walks the atom list against s. A plain atom consumes exactly one
// matching character. A repeated atom consumes greedily, checkpointing before
// each character so a later failure can hand characters back one at a time. A
// repeat in final position gets no checkpoints: nothing follows it that could
// consume the input it would give back.
func runAtoms[T ~string | ~[]byte](atoms []Atom, s T, log *slog.Logger) bool {
	var stack []checkpoint
	ai, si := 0, 0
	for {
		if ai >= len(atoms) {
			if si >= len(s) {
				return true
			}
			// Input remains but the atoms are spent; fall through to unwind.
		} else {
			a := atoms[ai]
			if a.Repeat {
				for si < len(s) && a.matches(s[si]) {
					if ai < len(atoms)-1 {
						stack = append(stack, checkpoint{si: si, ai: ai + 1})
					}
					si++
				}
				ai++
				continue
			}
			if si < len(s) && a.matches(s[si]) {
				si++
				ai++
				continue
			}
			// Mismatch on a plain atom; fall through to unwind.
		}

		if len(stack) == 0 {
			return false
		}
		cp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if log != nil {
			log.Debug("unwinding to checkpoint", "input_pos", cp.si, "atom_index", cp.ai, "stack_depth", len(stack))
		}
		si, ai = cp.si, cp.ai
	}
}
