package configutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const siteConfig = `imports:
  - defaults.yaml

watch:
  interval: 5s
`

const defaultsConfig = `imports:
  - base.yaml
  -

watch:
  interval: 30s
logging:
  level: INFO
`

const baseConfig = `
logging:
  level: DEBUG
  debug: true
`

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666), "should not error writing %s", name)
	return path
}

func TestResolveAndMergeFile(t *testing.T) {
	t.Run("imports merge with the importer winning", func(t *testing.T) {
		tempDir := t.TempDir()

		sitePath := writeConfigFile(t, tempDir, "site.yaml", siteConfig)
		writeConfigFile(t, tempDir, "defaults.yaml", defaultsConfig)
		writeConfigFile(t, tempDir, "base.yaml", baseConfig)

		v := viper.New()
		require.NoError(t, ResolveAndMergeFile(v, sitePath))

		// site.yaml overrides defaults.yaml which overrides base.yaml
		assert.Equal(t, "5s", v.GetString("watch.interval"))
		assert.Equal(t, "INFO", v.GetString("logging.level"))
		assert.True(t, v.GetBool("logging.debug"))
	})

	t.Run("circular imports terminate", func(t *testing.T) {
		tempDir := t.TempDir()

		writeConfigFile(t, tempDir, "a.yaml", "imports:\n  - b.yaml\nx: 1\n")
		bPath := writeConfigFile(t, tempDir, "b.yaml", "imports:\n  - a.yaml\ny: 2\n")

		v := viper.New()
		require.NoError(t, ResolveAndMergeFile(v, bPath))
		assert.Equal(t, 1, v.GetInt("x"))
		assert.Equal(t, 2, v.GetInt("y"))
	})

	t.Run("missing file errors", func(t *testing.T) {
		v := viper.New()
		assert.Error(t, ResolveAndMergeFile(v, filepath.Join(t.TempDir(), "nope.yaml")))
	})

	t.Run("extensionless file errors", func(t *testing.T) {
		tempDir := t.TempDir()
		path := writeConfigFile(t, tempDir, "config", "x: 1\n")

		v := viper.New()
		assert.Error(t, ResolveAndMergeFile(v, path))
	})
}

func TestBindEnvsRecursive(t *testing.T) {
	type inner struct {
		Interval string `mapstructure:"interval"`
	}
	type outer struct {
		Watch    inner  `mapstructure:"watch"`
		Pattern  string `mapstructure:"pattern"`
		Untagged string
	}

	v := viper.New()
	v.SetEnvPrefix("GLOBBY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	c := outer{}
	require.NoError(t, BindEnvsRecursive(v, &c, ""))

	t.Setenv("GLOBBY_PATTERN", "/tmp/**")
	t.Setenv("GLOBBY_WATCH_INTERVAL", "10s")

	assert.Equal(t, "/tmp/**", v.GetString("pattern"))
	assert.Equal(t, "10s", v.GetString("watch.interval"))
	assert.Empty(t, v.GetString("untagged"))
}
