// This package wraps spf13's afero and adds the symlink-aware methods the
// traversal code needs (and that keep working against an in-mem fs in tests).

package afero

import (
	"os"

	"github.com/spf13/afero"
)

type File interface {
	afero.File
}

type Fs interface {
	afero.Fs

	// Lstat returns a FileInfo describing the named file. If the file is a
	// symbolic link, the returned FileInfo describes the symbolic link
	// itself. If there is an error, it will be of type *PathError.
	Lstat(name string) (os.FileInfo, error)

	// Readlink returns the destination of the named symbolic link.
	// If there is an error, it will be of type *PathError.
	Readlink(name string) (string, error)
}

func TempDir(fs Fs, dir, prefix string) (name string, err error) {
	return afero.TempDir(fs, dir, prefix)
}

func WriteFile(fs Fs, filename string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(fs, filename, data, perm)
}

func ReadFile(fs Fs, filename string) ([]byte, error) {
	return afero.ReadFile(fs, filename)
}

func ReadDir(fs Fs, dirname string) ([]os.FileInfo, error) {
	return afero.ReadDir(fs, dirname)
}

// Exists returns true and nil error if the given path for a file or directory
// exists.
func Exists(fs afero.Fs, path string) (bool, error) {
	return afero.Exists(fs, path)
}

// IsDir checks whether the given path is a directory.
func IsDir(fs afero.Fs, path string) (bool, error) {
	return afero.IsDir(fs, path)
}
