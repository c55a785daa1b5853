package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file and no variables
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the config
		conf, err := Load(path)

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "warn", AISeed: 0}, conf)
	})

	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file with both fields
		path := writeConfig(t, "log-level: debug\nai-seed: 42\n")

		// When: loading the config
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "debug", AISeed: 42}, conf)
	})

	t.Run("Environment without a file", func(t *testing.T) {
		// Given: variables set and no file
		t.Setenv("TICTACTOE_LOG_LEVEL", "info")
		t.Setenv("TICTACTOE_AI_SEED", "7")

		// When: loading the config
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the variables are used
		require.NoError(t, err)
		assert.Equal(t, &Config{LogLevel: "info", AISeed: 7}, conf)
	})

	t.Run("Rejects an unknown log level", func(t *testing.T) {
		// Given: a file with a bad log level
		path := writeConfig(t, "log-level: loud\n")

		// When: loading the config
		_, err := Load(path)

		// Then: validation fails
		var validationErrors validator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		// Given: a file that is not yml
		path := writeConfig(t, "log-level: [\n")

		// Then: MustLoad panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
