package afero

import (
	"os"

	"github.com/spf13/afero"
)

type OsFs struct {
	*afero.OsFs
}

// Lstat returns a FileInfo describing the named file. If the file is a
// symbolic link, the returned FileInfo describes the symbolic link itself.
// If there is an error, it will be of type *PathError.
func (m *OsFs) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Readlink returns the destination of the named symbolic link.
// If there is an error, it will be of type *PathError.
func (m *OsFs) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

var _ Fs = (*OsFs)(nil)
var _ afero.Fs = (*OsFs)(nil)

func NewOsFs() Fs {
	return &OsFs{
		OsFs: afero.NewOsFs().(*afero.OsFs),
	}
}
