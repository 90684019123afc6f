package lister

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marktriggs/globby/pkg/afero"
	"github.com/marktriggs/globby/pkg/glob"
	"github.com/marktriggs/globby/pkg/logging"
)

// buildTestTree seeds an in-memory filesystem with the fixture used
// throughout these tests:
//
//	/a.txt
//	/.hiddenfile
//	/sub1/b.txt
//	/sub2/nested/c.log
//	/empty/
func buildTestTree(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sub1", 0o755))
	require.NoError(t, fs.MkdirAll("/sub2/nested", 0o755))
	require.NoError(t, fs.MkdirAll("/empty", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("a"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/.hiddenfile", []byte("h"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/sub1/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/sub2/nested/c.log", []byte("c"), 0o644))

	return fs
}

func TestCollect(t *testing.T) {
	fs := buildTestTree(t)

	cases := map[string]struct {
		pattern string
		want    []string
	}{
		"recursive txt": {"/**/*.txt", []string{"/a.txt", "/sub1/b.txt"}},
		"recursive everything": {"/**/*", []string{
			"/a.txt", "/.hiddenfile", "/sub1", "/sub1/b.txt",
			"/sub2", "/sub2/nested", "/sub2/nested/c.log", "/empty",
		}},
		"never matching middle literal": {"/*/willnevermatch/**", nil},
		"directories only":              {"/**/", []string{"/sub1", "/sub2", "/sub2/nested", "/empty"}},
		"root itself":                   {"/", []string{"/"}},
		"literal directory":             {"/sub1", []string{"/sub1"}},
		"literal directory with slash":  {"/sub1/", []string{"/sub1"}},
		"non-recursive star":            {"/sub1/*", []string{"/sub1/b.txt"}},
		"literal file":                  {"/sub2/nested/c.log", []string{"/sub2/nested/c.log"}},
		"star with no takers":           {"/sub2/*.txt", nil},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Collect(fs, tc.pattern)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, got)
		})
	}
}

func TestLister_Cursor(t *testing.T) {
	fs := buildTestTree(t)

	l, err := ListFiles(fs, "/**/*.txt")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	var got []string
	for l.Next() {
		got = append(got, l.Path())
	}
	require.NoError(t, l.Err())
	assert.ElementsMatch(t, []string{"/a.txt", "/sub1/b.txt"}, got)

	// an exhausted cursor stays exhausted
	assert.False(t, l.Next())
	assert.NoError(t, l.Err())
}

func TestLister_Close(t *testing.T) {
	fs := buildTestTree(t)

	t.Run("safe to call twice", func(t *testing.T) {
		l, err := ListFiles(fs, "/**/*")
		require.NoError(t, err)

		require.NoError(t, l.Close())
		require.NoError(t, l.Close())
	})

	t.Run("next after close reports done", func(t *testing.T) {
		l, err := ListFiles(fs, "/**/*")
		require.NoError(t, err)

		require.True(t, l.Next())
		require.NoError(t, l.Close())

		assert.False(t, l.Next())
		assert.NoError(t, l.Err())
	})

	t.Run("abandoning mid-iteration", func(t *testing.T) {
		l, err := ListFiles(fs, "/**/*")
		require.NoError(t, err)

		require.True(t, l.Next())
		require.True(t, l.Next())
		require.NoError(t, l.Close())
	})
}

func TestListFiles_AbsolutePathRequired(t *testing.T) {
	fs := afero.NewMemMapFs()

	for _, pattern := range []string{"relative/path/*", "*.txt", ""} {
		t.Run(pattern, func(t *testing.T) {
			_, err := ListFiles(fs, pattern)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrAbsolutePathRequired)
		})
	}

	_, err := Collect(fs, "another/relative")
	assert.ErrorIs(t, err, ErrAbsolutePathRequired)
}

func TestLister_BadPatternSurfacesLazily(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/apple", []byte("x"), 0o644))

	// construction can't see the bad segment; only matching against a path
	// that reaches the stars does
	l, err := ListFiles(fs, "/a**b")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	assert.False(t, l.Next())
	assert.ErrorIs(t, l.Err(), glob.ErrBadPattern)
}

func TestLister_Stats(t *testing.T) {
	fs := buildTestTree(t)

	l, err := ListFiles(fs, "/**/*")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	for l.Next() {
	}
	require.NoError(t, l.Err())

	st := l.Stats()
	assert.Equal(t, uint64(8), st.Matches)
	assert.Equal(t, uint64(5), st.DirsOpened)
	assert.Equal(t, uint64(8), st.EntriesSeen)
	assert.Zero(t, st.SoftFailures)
}

func TestFactory(t *testing.T) {
	fs := buildTestTree(t)
	f := NewFactory(fs, logging.Discard())

	got, err := f.Collect("/**/*.txt")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/a.txt", "/sub1/b.txt"}, got)

	l, err := f.ListFiles("/sub1/*")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	require.True(t, l.Next())
	assert.Equal(t, "/sub1/b.txt", l.Path())
	assert.False(t, l.Next())
}
