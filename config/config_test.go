package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/sysfs/platform"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "auto", cfg.Platform)
	assert.Equal(t, platform.KindUnknown, cfg.Kind())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  format: json
platform: windows
pathext: ".PS1;.EXE"
system_root: 'C:\Windows'
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "DEBUG", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, platform.KindWindows, cfg.Kind())
	assert.Equal(t, ".PS1;.EXE", cfg.PathExt)
	assert.Equal(t, `C:\Windows`, cfg.SystemRoot)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "platform: unix\n")
	t.Setenv("SYSFS_PLATFORM", "windows")
	t.Setenv("SYSFS_LOGGING_LEVEL", "warn")
	t.Setenv("SYSFS_PATHEXT", ".COM")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "windows", cfg.Platform)
	assert.Equal(t, "WARN", cfg.Logging.Level)
	assert.Equal(t, ".COM", cfg.PathExt)
}

func TestLoad_InvalidPlatform(t *testing.T) {
	path := writeConfig(t, "platform: plan9\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
	assert.Contains(t, err.Error(), "Platform")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestConfig_Environment(t *testing.T) {
	base := platform.Map(map[string]string{"PATHEXT": ".EXE", "SystemRoot": `C:\Windows`, "PATH": "/bin"})

	cfg := Default()
	cfg.PathExt = ".PS1"
	env := cfg.Environment(base)

	v, _ := env.LookupEnv(platform.EnvPathExt)
	assert.Equal(t, ".PS1", v)
	v, _ = env.LookupEnv(platform.EnvSystemRoot)
	assert.Equal(t, `C:\Windows`, v)
	v, _ = env.LookupEnv(platform.EnvPath)
	assert.Equal(t, "/bin", v)
}

func TestConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, "sysfs"), ConfigDir())
}
