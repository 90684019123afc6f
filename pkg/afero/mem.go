package afero

import (
	"os"

	"github.com/spf13/afero"
)

type MemMapFs struct {
	*afero.MemMapFs
}

// Lstat returns a FileInfo describing the named file. MemMapFs has no notion
// of symbolic links, so this is plain Stat.
func (m *MemMapFs) Lstat(name string) (os.FileInfo, error) {
	return m.Stat(name)
}

// Readlink always fails: MemMapFs can't hold symbolic links.
func (m *MemMapFs) Readlink(name string) (string, error) {
	return "", &os.PathError{Op: "readlink", Path: name, Err: afero.ErrNoReadlink}
}

var _ Fs = (*MemMapFs)(nil)
var _ afero.Fs = (*MemMapFs)(nil)

func NewMemMapFs() Fs {
	return &MemMapFs{
		MemMapFs: afero.NewMemMapFs().(*afero.MemMapFs),
	}
}
