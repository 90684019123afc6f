package glob

// Verdict is the three-way result of matching a path against a Pattern. The
// distinction between PartialMatch and Mismatch is what lets a traversal
// prune: Mismatch condemns the whole subtree, PartialMatch keeps it alive.
type Verdict int

const (
	// Mismatch: no extension of the path could ever match.
	Mismatch Verdict = iota
	// PartialMatch: the path itself doesn't match, but a descendant still
	// could.
	PartialMatch
	// Match: pattern and path consumed each other exactly.
	Match
)

func (v Verdict) String() string {
	switch v {
	case Match:
		return "match"
	case PartialMatch:
		return "partial"
	case Mismatch:
		return "mismatch"
	}
	return "unknown"
}
