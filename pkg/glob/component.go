package glob

import (
	"errors"
	"fmt"
)

// ErrBadPattern reports a malformed pattern segment: two adjacent '*'
// wildcards inside one component.
var ErrBadPattern = errors.New("bad glob pattern")

// candidate is one still-viable alignment of pattern position to input
// position during a backtracking match. Candidates are explored
// last-pushed-first.
type candidate struct {
	pat int
	in  int
}

// MatchComponent reports whether one literal path component matches one glob
// segment. The answer is a plain yes/no: within a single component there is
// no notion of matching something deeper.
func MatchComponent(pattern, name string) (bool, error) {
	if pattern == name {
		return true, nil
	}

	stack := []candidate{{0, 0}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.pat == len(pattern) && c.in == len(name) {
			return true, nil
		}
		if rest := pattern[c.pat:]; rest == "*" {
			// a trailing star swallows whatever input remains
			return true, nil
		}
		if c.pat == len(pattern) || c.in == len(name) {
			continue
		}

		if pattern[c.pat] == '*' {
			next := pattern[c.pat+1]
			if next == '*' {
				return false, fmt.Errorf("segment %q: %w", pattern, ErrBadPattern)
			}

			// try the star against every occurrence of the character that
			// must follow it
			for i := c.in; i < len(name); i++ {
				if name[i] == next {
					stack = append(stack, candidate{c.pat + 1, i})
				}
			}
			continue
		}

		if pattern[c.pat] != name[c.in] {
			continue
		}
		stack = append(stack, candidate{c.pat + 1, c.in + 1})
	}

	return false, nil
}
