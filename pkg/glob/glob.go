// Package glob parses rooted glob patterns and matches them against absolute
// paths one whole component at a time.
//
// The syntax surface is deliberately small: '*' matches within a single path
// component, '**' matches zero or more whole components, and a trailing
// separator restricts matches to directories. There are no character classes,
// braces, or escapes.
package glob

import (
	"path/filepath"
	"strings"
)

const separator = string(filepath.Separator)

// Pattern is the parsed, immutable form of a glob string.
type Pattern struct {
	parts     []string
	recursive bool
	wantsDir  bool
}

// Parse turns a glob string into a Pattern. It is a pure string transform:
// separator runs collapse into single boundaries, a leading '*' gets an empty
// root segment injected ahead of it, and a trailing separator folds into the
// directory-only flag. Adjacent '*' wildcards inside one segment are not
// rejected here; they surface as ErrBadPattern the first time Match evaluates
// that segment.
func Parse(pattern string) Pattern {
	if strings.HasPrefix(pattern, "*") {
		pattern = separator + pattern
	}

	raw := strings.Split(pattern, separator)
	parts := make([]string, 1, len(raw)+1)
	for _, s := range raw {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if strings.HasSuffix(pattern, separator) {
		parts = append(parts, "")
	}

	wantsDir := false
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
		wantsDir = true
	}

	recursive := false
	for _, part := range parts {
		if part == "**" {
			recursive = true
			break
		}
	}

	return Pattern{parts: parts, recursive: recursive, wantsDir: wantsDir}
}

// Recursive reports whether any segment is the recursive wildcard '**'.
func (p Pattern) Recursive() bool { return p.recursive }

// WantsDir reports whether the glob ended in a separator, restricting matches
// to directories.
func (p Pattern) WantsDir() bool { return p.wantsDir }

// String reassembles the pattern. Collapsed separator runs are not restored.
func (p Pattern) String() string {
	if len(p.parts) == 1 {
		return separator
	}

	s := strings.Join(p.parts, separator)
	if p.wantsDir {
		s += separator
	}
	return s
}

// BaseDir returns the directory the pattern is anchored at: the longest
// leading run of wildcard-free segments, never including the final segment.
// A traversal serving this pattern starts there.
func (p Pattern) BaseDir() string {
	end := 0
	for i := 1; i < len(p.parts)-1; i++ {
		if strings.Contains(p.parts[i], "*") {
			break
		}
		end = i
	}

	if end == 0 {
		return separator
	}
	return strings.Join(p.parts[:end+1], separator)
}
