package lister

import "github.com/marktriggs/globby/pkg/logging"

// Option adjusts a Lister at construction time.
type Option func(*Lister)

// WithLogger routes traversal diagnostics (unreadable directories, broken
// symlinks) to log. The default discards them.
func WithLogger(log logging.Interface) Option {
	return func(l *Lister) {
		l.log = log
	}
}
