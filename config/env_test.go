package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func restoreValues(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		mu.Lock()
		values = defaultValues()
		mu.Unlock()
	})
}

func TestLoadFromFiles_Precedence(t *testing.T) {
	restoreValues(t)
	dir := t.TempDir()

	cfg := writeFile(t, dir, "app.json", `{"app_port": 9000, "db_driver": "postgres", "app_url": "https://api.example.com/", "db_auto_migrate": false}`)
	env := writeFile(t, dir, ".env", "# comment\nAPP_PORT=9100\nLOG_LEVEL=\"DEBUG\"\nnot a pair\n")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "42")

	require.NoError(t, loadFromFiles(cfg, env))

	assert.Equal(t, "9100", get("APP_PORT", ""))
	assert.Equal(t, "postgres", get("DB_DRIVER", ""))
	assert.Equal(t, "https://api.example.com", strings.TrimRight(get("APP_URL", ""), "/"))
	assert.Equal(t, "DEBUG", get("LOG_LEVEL", ""))
	assert.Equal(t, "42", get("RATE_LIMIT_PER_MINUTE", ""))
	assert.Equal(t, "false", get("DB_AUTO_MIGRATE", ""))
}

func TestLoadFromFiles_MissingFilesUseDefaults(t *testing.T) {
	restoreValues(t)
	dir := t.TempDir()

	require.NoError(t, loadFromFiles(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.env")))
	assert.Equal(t, defaultAppPort, get("APP_PORT", ""))
	assert.Equal(t, defaultDatabaseDriver, get("DB_DRIVER", ""))
}

func TestLoadFromFiles_BadJSON(t *testing.T) {
	restoreValues(t)
	dir := t.TempDir()

	cfg := writeFile(t, dir, "app.json", `{"app_port":`)
	assert.Error(t, loadFromFiles(cfg, filepath.Join(dir, ".env")))
}

func TestMergeEnviron(t *testing.T) {
	out := map[string]string{"APP_PORT": "8080"}
	mergeEnviron([]string{"app_port=7000", "EMPTY=", "=bad", "NOEQUALS"}, out)

	assert.Equal(t, "7000", out["APP_PORT"])
	_, ok := out["EMPTY"]
	assert.False(t, ok)
}
