package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears the sheetread variables for the duration of the test.
func unsetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvEngine, EnvWorkers, EnvLogLevel, EnvPassword} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, &Config{Engine: "excelize", Workers: 0, LogLevel: "warning"}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	unsetEnv(t)
	t.Setenv(EnvEngine, "tealeg")
	t.Setenv(EnvWorkers, "4")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "tealeg", cfg.Engine)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t)
	t.Setenv(EnvEngine, "excelize")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("SHEETREAD_ENGINE=tealeg\nSHEETREAD_PASSWORD=s3cret\n"), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "excelize", cfg.Engine, "environment wins over the file")
	assert.Equal(t, "s3cret", cfg.Password)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvWorkers, "many"},
		{EnvWorkers, "-2"},
		{EnvLogLevel, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			unsetEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
