package lister

import (
	"go.uber.org/fx"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/logging"
)

// Factory binds a filesystem and a logger so callers can mint Listers
// without carrying those dependencies around.
type Factory struct {
	fs  afero.Fs
	log logging.Interface
}

func NewFactory(fsys afero.Fs, log logging.Interface) Factory {
	return Factory{fs: fsys, log: log}
}

// ListFiles builds a Lister for pattern over the factory's filesystem.
func (f Factory) ListFiles(pattern string) (*Lister, error) {
	return ListFiles(f.fs, pattern, WithLogger(f.log))
}

// Collect drains a fresh Lister for pattern. Order is unspecified.
func (f Factory) Collect(pattern string) ([]string, error) {
	return Collect(f.fs, pattern, WithLogger(f.log))
}

// Module provides a Factory wired to the application filesystem and logger.
var Module fx.Option = fx.Provide(NewFactory)
