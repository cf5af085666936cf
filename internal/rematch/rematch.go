// Package rematch contains the core pattern matching engines used by the parent
// dotstar package. It is intended for internal use; the exported surface exists so
// the command line harness and benchmarks in this module can drive both engines.
//
// Two engines implement the same semantics:
//
//   - Match: memoized recursion over (input, pattern) suffix pairs. Runs in
//     O(len(s) x len(pattern)) time and space and backs the public API.
//   - Backtrack: an explicit-stack state machine over the pattern's atom list with
//     greedy repeats. Quadratic or worse on adversarial patterns; kept as an
//     alternative formulation and as a cross-check for Match.
package rematch

import (
	"bytes"
	"errors"
	"slices"
	"strings"
)

// ErrBadPattern indicates a pattern was malformed.
var ErrBadPattern = errors.New("syntax error in pattern")

// Metachars holds the pattern metacharacters understood by the engines.
const Metachars = ".*"

const (
	metaAny    = '.' // matches any single character
	metaRepeat = '*' // repeats the preceding atom zero or more times
)

// Match reports whether s is fully matched by pattern. A pattern consists of
// literal characters, `.` matching any single character, and `*` repeating the
// immediately preceding literal or `.` zero or more times. It returns
// ErrBadPattern when a `*` has no atom to attach to.
//
// The dispatcher validates the pattern, attempts several fast paths for common
// pattern shapes, and falls back to the memoized engine for everything else.
func Match[T ~string | ~[]byte | ~[]rune](pattern, s T) (bool, error) {
	if err := Validate(pattern); err != nil {
		return false, err
	}

	if len(pattern) == 0 {
		return len(s) == 0, nil
	}

	// Fast path for the universal pattern: `.*` absorbs any input.
	switch p := any(pattern).(type) {
	case string:
		if p == ".*" {
			return true, nil
		}
	case []byte:
		if len(p) == 2 && p[0] == metaAny && p[1] == metaRepeat {
			return true, nil
		}
	case []rune:
		if len(p) == 2 && p[0] == metaAny && p[1] == metaRepeat {
			return true, nil
		}
	}

	// A pattern without metacharacters can only match itself.
	if !hasMeta(pattern) {
		return equal(pattern, s), nil
	}

	// Fast paths for literal text around a single `.*` run.
	if matched, handled := fastTailMatch(pattern, s); handled {
		return matched, nil
	}

	return matchGeneric(pattern, s), nil
}

// Validate checks that every repeat operator in pattern has a preceding literal
// or `.` atom to attach to. Patterns like `*a` and `a**` are malformed: the `*`
// follows nothing repeatable.
func Validate[T ~string | ~[]byte | ~[]rune](pattern T) error {
	switch p := any(pattern).(type) {
	case string:
		return validate(p)
	case []byte:
		return validate(p)
	case []rune:
		return validateRunes(p)
	}
	return nil
}

// validate implements Validate for byte-oriented patterns.
func validate[T ~string | ~[]byte](pattern T) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != metaRepeat {
			continue
		}
		if i == 0 || pattern[i-1] == metaRepeat {
			return ErrBadPattern
		}
	}
	return nil
}

// validateRunes implements Validate for rune slices.
func validateRunes(pattern []rune) error {
	for i, r := range pattern {
		if r != metaRepeat {
			continue
		}
		if i == 0 || pattern[i-1] == metaRepeat {
			return ErrBadPattern
		}
	}
	return nil
}

// hasMeta reports whether pattern contains any metacharacter.
func hasMeta[T ~string | ~[]byte | ~[]rune](pattern T) bool {
	switch p := any(pattern).(type) {
	case string:
		return strings.ContainsAny(p, Metachars)
	case []byte:
		return bytes.ContainsAny(p, Metachars)
	case []rune:
		return slices.ContainsFunc(p, func(r rune) bool {
			return r == metaAny || r == metaRepeat
		})
	}
	return false
}

// equal provides a generic way to compare two values of the same supported type.
func equal[T ~string | ~[]byte | ~[]rune](a, b T) bool {
	switch va := any(a).(type) {
	case string:
		return va == any(b).(string)
	case []byte:
		return bytes.Equal(va, any(b).([]byte))
	case []rune:
		return slices.Equal(va, any(b).([]rune))
	}
	return false
}

// fastTailMatch handles patterns that are literal text around a single `.*` run,
// avoiding the full engine. It returns (matched, handled); handled is false when
// the pattern is not one of the recognized shapes.
//
// Only the `.*` forms are safe here. Glob-style prefix shortcuts do not carry
// over: in this pattern language `ab*` is `a` followed by repeated `b`, not the
// prefix `ab`.
func fastTailMatch[T ~string | ~[]byte | ~[]rune](pattern, s T) (bool, bool) {
	switch p := any(pattern).(type) {
	case string:
		return fastTailMatchString(p, any(s).(string))
	case []byte:
		return fastTailMatchBytes(p, any(s).([]byte))
	}
	return false, false
}

// fastTailMatchString implements the fast path logic for strings.
func fastTailMatchString(pattern, s string) (bool, bool) {
	// Handles "prefix.*": a metachar-free prefix followed by an any-character run.
	if prefix, found := strings.CutSuffix(pattern, ".*"); found {
		if !strings.ContainsAny(prefix, Metachars) {
			return strings.HasPrefix(s, prefix), true
		}
	}

	// Handles ".*suffix": an any-character run followed by a metachar-free suffix.
	if suffix, found := strings.CutPrefix(pattern, ".*"); found {
		if !strings.ContainsAny(suffix, Metachars) {
			return strings.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix.*suffix" when both sides are metachar-free and non-empty.
	if prefix, suffix, found := strings.Cut(pattern, ".*"); found && prefix != "" && suffix != "" {
		if !strings.ContainsAny(prefix, Metachars) && !strings.ContainsAny(suffix, Metachars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				strings.HasPrefix(s, prefix) &&
				strings.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// fastTailMatchBytes implements the fast path logic for byte slices.
func fastTailMatchBytes(pattern, s []byte) (bool, bool) {
	anyRun := []byte(".*")

	// Handles "prefix.*": a metachar-free prefix followed by an any-character run.
	if prefix, found := bytes.CutSuffix(pattern, anyRun); found {
		if !bytes.ContainsAny(prefix, Metachars) {
			return bytes.HasPrefix(s, prefix), true
		}
	}

	// Handles ".*suffix": an any-character run followed by a metachar-free suffix.
	if suffix, found := bytes.CutPrefix(pattern, anyRun); found {
		if !bytes.ContainsAny(suffix, Metachars) {
			return bytes.HasSuffix(s, suffix), true
		}
	}

	// Handles "prefix.*suffix" when both sides are metachar-free and non-empty.
	if prefix, suffix, found := bytes.Cut(pattern, anyRun); found && len(prefix) > 0 && len(suffix) > 0 {
		if !bytes.ContainsAny(prefix, Metachars) && !bytes.ContainsAny(suffix, Metachars) {
			matched := len(s) >= len(prefix)+len(suffix) &&
				bytes.HasPrefix(s, prefix) &&
				bytes.HasSuffix(s, suffix)
			return matched, true
		}
	}

	return false, false
}

// matchGeneric dispatches to the memoized engine for the concrete element type.
// The pattern has already been validated.
func matchGeneric[T ~string | ~[]byte | ~[]rune](pattern, s T) bool {
	switch p := any(pattern).(type) {
	case string:
		return matchMemo(p, any(s).(string))
	case []byte:
		return matchMemo(p, any(s).([]byte))
	case []rune:
		return matchMemoRunes(p, any(s).([]rune))
	}
	// Unreachable: the constraint's type set is closed.
	return false
}
