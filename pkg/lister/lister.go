// Package lister lazily enumerates filesystem entries matching a rooted glob
// pattern. Traversal is pull-based: no directory is read until Next needs it.
package lister

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/glob"
	"github.com/marktriggs/globby/pkg/logging"
)

const separator = string(filepath.Separator)

// ErrAbsolutePathRequired is returned by ListFiles when the pattern does not
// begin with a path separator.
var ErrAbsolutePathRequired = errors.New("pattern must begin with a path separator")

// Stats are cheap counters accumulated over a Lister's lifetime.
type Stats struct {
	// DirsOpened counts directories successfully listed.
	DirsOpened uint64
	// EntriesSeen counts directory entries examined, excluding . and ..
	EntriesSeen uint64
	// Matches counts paths handed to the result buffer.
	Matches uint64
	// SoftFailures counts unreadable directories, failed stats and broken
	// symlinks that were skipped over.
	SoftFailures uint64
}

// Lister walks the tree under a pattern's base directory and produces every
// matching path. It is a cursor in the bufio.Scanner mold: Next does a
// bounded slice of traversal work, Path returns what it found, Err reports
// the first failure, and Close drops all held state in one go.
//
// A Lister is single-consumer; it is not safe for concurrent use.
type Lister struct {
	fs      afero.Fs
	log     logging.Interface
	pattern glob.Pattern

	// dirs is the work queue of directories still to visit and results the
	// buffer of paths ready to hand out. Both are stacks (most recently
	// pushed first), which makes the traversal depth-first.
	dirs    []string
	results []string

	current string
	err     error
	closed  bool

	stats Stats
}

// ListFiles builds a Lister for pattern over fsys. The pattern must be
// rooted. The caller owns the result and must Close it; abandoning
// iteration early without Close leaks nothing beyond the queued strings,
// but Close is still the contract.
func ListFiles(fsys afero.Fs, pattern string, opts ...Option) (*Lister, error) {
	if !strings.HasPrefix(pattern, separator) {
		return nil, fmt.Errorf("%q: %w", pattern, ErrAbsolutePathRequired)
	}

	l := &Lister{
		fs:      fsys,
		log:     logging.Discard(),
		pattern: glob.Parse(pattern),
	}
	for _, opt := range opts {
		opt(l)
	}

	// the traversal starts at the deepest directory the pattern names
	// outright; everything above it can't contain a match
	l.dirs = append(l.dirs, l.pattern.BaseDir())

	return l, nil
}

// Collect drains a fresh Lister for pattern and returns every match. Order
// is unspecified.
func Collect(fsys afero.Fs, pattern string, opts ...Option) ([]string, error) {
	l, err := ListFiles(fsys, pattern, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = l.Close() }()

	var paths []string
	for l.Next() {
		paths = append(paths, l.Path())
	}
	if err := l.Err(); err != nil {
		return nil, err
	}

	return paths, nil
}

// Next advances to the next matching path, reporting false once the
// enumeration is exhausted, failed, or closed. After a false return, Err
// distinguishes clean exhaustion from failure.
func (l *Lister) Next() bool {
	if l.closed || l.err != nil {
		return false
	}

	for {
		if n := len(l.results); n > 0 {
			l.current = l.results[n-1]
			l.results = l.results[:n-1]
			return true
		}

		if len(l.dirs) == 0 {
			return false
		}

		dir := l.dirs[len(l.dirs)-1]
		l.dirs = l.dirs[:len(l.dirs)-1]

		if err := l.expand(dir); err != nil {
			l.err = err
			return false
		}
	}
}

// Path returns the match produced by the most recent successful Next.
func (l *Lister) Path() string { return l.current }

// Err returns the first error the enumeration hit. Malformed pattern
// segments surface here, not from ListFiles, because they are only detected
// when a path first exercises them. Err is nil after a clean exhaustion.
func (l *Lister) Err() error { return l.err }

// Stats returns the counters accumulated so far.
func (l *Lister) Stats() Stats { return l.stats }

// Close releases all queued and buffered state in one action. It is safe to
// call more than once; Next returns false afterwards.
func (l *Lister) Close() error {
	l.closed = true
	l.dirs = nil
	l.results = nil
	l.current = ""
	return nil
}

// expand runs the matcher over one queued directory and decides whether to
// emit it, read it, or drop it.
func (l *Lister) expand(dir string) error {
	verdict, err := l.pattern.Match(dir)
	if err != nil {
		return err
	}

	switch verdict {
	case glob.Mismatch:
		// nothing at or below this directory can match
		return nil
	case glob.Match:
		l.results = append(l.results, dir)
		l.stats.Matches++
		if !l.pattern.Recursive() {
			// already fully satisfied; no descendant can add to a
			// non-recursive pattern
			return nil
		}
	}

	return l.scan(dir)
}

// scan reads one directory and feeds its entries back into the queue and the
// result buffer. The directory handle lives only for the duration of this
// call.
func (l *Lister) scan(dir string) error {
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		// one unreadable directory never kills the enumeration
		l.stats.SoftFailures++
		l.log.WithError(err).WithField("dir", dir).Debug("skipping unreadable directory")
		return nil
	}
	l.stats.DirsOpened++

	for _, entry := range entries {
		name := entry.Name()
		if name == "." || name == ".." {
			continue
		}
		l.stats.EntriesSeen++

		path := joinPath(dir, name)

		if l.isDir(path, entry) {
			// every directory goes onto the queue whatever its own verdict:
			// under a recursive pattern a descendant can still match even
			// when the directory itself never will
			l.dirs = append(l.dirs, path)
			continue
		}

		if l.pattern.WantsDir() {
			continue
		}

		verdict, err := l.pattern.Match(path)
		if err != nil {
			return err
		}
		if verdict == glob.Match {
			l.results = append(l.results, path)
			l.stats.Matches++
		}
	}

	return nil
}

// isDir classifies a directory entry, following at most one level of symlink
// indirection: a link whose immediate target is a directory counts as one.
// Every failure along the way degrades to "not a directory".
func (l *Lister) isDir(path string, entry os.FileInfo) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := l.fs.Readlink(path)
	if err != nil {
		l.stats.SoftFailures++
		l.log.WithError(err).WithField("path", path).Debug("unreadable symlink")
		return false
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	fi, err := l.fs.Lstat(target)
	if err != nil {
		l.stats.SoftFailures++
		l.log.WithError(err).WithField("path", path).WithField("target", target).Debug("dangling symlink")
		return false
	}

	return fi.IsDir()
}

// joinPath concatenates without cleaning; emitted paths stay verbatim.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, separator) {
		return dir + name
	}
	return dir + separator + name
}
