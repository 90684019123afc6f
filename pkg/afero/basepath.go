package afero

import (
	"os"

	"github.com/spf13/afero"
)

type BasePathFs struct {
	*afero.BasePathFs
	source Fs
}

// Lstat translates the name into the source filesystem and lstats it there.
func (m *BasePathFs) Lstat(name string) (os.FileInfo, error) {
	path, err := m.BasePathFs.RealPath(name)
	if err != nil {
		return nil, err
	}

	return m.source.Lstat(path)
}

// Readlink translates the name into the source filesystem and reads the link
// there. The returned target is whatever the underlying link holds; a target
// escaping the base path is the caller's problem.
func (m *BasePathFs) Readlink(name string) (string, error) {
	path, err := m.BasePathFs.RealPath(name)
	if err != nil {
		return "", err
	}

	return m.source.Readlink(path)
}

var _ Fs = (*BasePathFs)(nil)
var _ afero.Fs = (*BasePathFs)(nil)

func NewBasePathFs(source Fs, path string) Fs {
	return &BasePathFs{
		BasePathFs: afero.NewBasePathFs(source, path).(*afero.BasePathFs),
		source:     source,
	}
}
