package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/glob"
	"github.com/marktriggs/globby/pkg/lister"
	"github.com/marktriggs/globby/pkg/logging"
)

func TestRootCommand(t *testing.T) {
	names := make([]string, 0, 2)
	for _, sub := range rootCmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "watch")

	configFlag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)

	debugFlag := rootCmd.PersistentFlags().Lookup("debug")
	require.NotNil(t, debugFlag)
	assert.Equal(t, "d", debugFlag.Shorthand)
}

func newListTestFactory(t *testing.T) lister.Factory {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/data/sub", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/sub/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/apple", []byte("x"), 0o644))

	return lister.NewFactory(fs, logging.Discard())
}

func TestListPatterns(t *testing.T) {
	factory := newListTestFactory(t)

	var buf bytes.Buffer
	err := listPatterns(&buf, factory, []string{"/data/**/*.txt"}, false, false)
	require.NoError(t, err)

	lines := strings.Fields(buf.String())
	assert.ElementsMatch(t, []string{"/data/a.txt", "/data/sub/b.txt"}, lines)
}

func TestListPatterns_NullSeparator(t *testing.T) {
	factory := newListTestFactory(t)

	var buf bytes.Buffer
	err := listPatterns(&buf, factory, []string{"/data/*.txt"}, true, false)
	require.NoError(t, err)

	assert.Equal(t, "/data/a.txt\x00", buf.String())
}

func TestListPatterns_CollectsErrors(t *testing.T) {
	factory := newListTestFactory(t)

	var buf bytes.Buffer
	err := listPatterns(&buf, factory, []string{"relative/*", "/data/*.txt", "/a**b"}, false, false)
	require.Error(t, err)

	// the bad patterns surface without hiding the good one's output
	assert.ErrorIs(t, err, lister.ErrAbsolutePathRequired)
	assert.ErrorIs(t, err, glob.ErrBadPattern)
	assert.Contains(t, buf.String(), "/data/a.txt")
}
