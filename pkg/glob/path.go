package glob

import "strings"

// Match compares an absolute path against the pattern and returns a Verdict.
// It runs the same backtracking work-list as MatchComponent but advances
// whole components per step, and exhausting the path before the pattern is
// not a dead end: it records that a deeper descendant could still complete
// the match.
func (p Pattern) Match(path string) (Verdict, error) {
	comps := splitPath(path)

	stack := []candidate{{0, 0}}
	partial := false

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.pat == len(p.parts) && c.in == len(comps) {
			return Match, nil
		}
		if c.in == len(comps) {
			// the path ran out first; a descendant might still complete it
			partial = true
			continue
		}
		if c.pat == len(p.parts) {
			continue
		}

		switch part := p.parts[c.pat]; part {
		case "*":
			// a bare star matches any single component
			stack = append(stack, candidate{c.pat + 1, c.in + 1})

		case "**":
			partial = true
			if c.pat == len(p.parts)-1 {
				// a trailing '**' swallows everything from here down
				return Match, nil
			}
			// fan out over how many components the wildcard consumes
			for i := c.in; i <= len(comps); i++ {
				stack = append(stack, candidate{c.pat + 1, i})
			}

		default:
			ok, err := MatchComponent(part, comps[c.in])
			if err != nil {
				return Mismatch, err
			}
			if ok {
				stack = append(stack, candidate{c.pat + 1, c.in + 1})
			}
		}
	}

	if partial {
		return PartialMatch, nil
	}
	return Mismatch, nil
}

// splitPath splits an absolute path into components: separator runs collapse
// and a trailing separator drops, so the root itself splits to the single
// empty component.
func splitPath(path string) []string {
	raw := strings.Split(path, separator)
	comps := make([]string, 1, len(raw))
	for _, s := range raw {
		if s != "" {
			comps = append(comps, s)
		}
	}
	return comps
}
