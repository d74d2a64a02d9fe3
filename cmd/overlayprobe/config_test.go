package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	flags := pflag.NewFlagSet("overlayprobe", pflag.ContinueOnError)
	addFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LOG_LEVEL", "")

	cfg, err := loadConfig(viper.New(), testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
	assert.Equal(t, color.NRGBA{A: 0x60}, cfg.Tint())
	assert.Equal(t, log.InfoLevel, cfg.Level())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "overlayprobe"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overlayprobe", "overlayprobe.toml"), []byte(`
namespace = "probe"
color = "red"
alpha = 255
log_level = "debug"
`), 0644))

	cfg, err := loadConfig(viper.New(), testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "probe", cfg.Namespace)
	assert.Equal(t, color.NRGBA{R: 0xFF, A: 0xFF}, cfg.Tint())
	assert.Equal(t, log.DebugLevel, cfg.Level())
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("namespace = \"file\"\ncolor = \"red\"\n"), 0644))
	t.Setenv("OVERLAYPROBE_COLOR", "blue")
	t.Setenv("OVERLAYPROBE_ALPHA", "16")

	cfg, err := loadConfig(viper.New(), testFlags(t, "--config", path, "--alpha", "32"))
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Namespace)
	assert.Equal(t, "blue", cfg.Color)
	assert.Equal(t, 32, cfg.Alpha)
}

func TestLoadConfigLogLevelEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := loadConfig(viper.New(), testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, cfg.Level())

	t.Setenv("OVERLAYPROBE_LOG_LEVEL", "error")
	cfg, err = loadConfig(viper.New(), testFlags(t))
	require.NoError(t, err)
	assert.Equal(t, log.ErrorLevel, cfg.Level())
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{name: "Color", args: []string{"--color", "notacolor"}},
		{name: "Alpha", args: []string{"--alpha", "300"}},
		{name: "LogLevel", args: []string{"--log-level", "loud"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := loadConfig(viper.New(), testFlags(t, test.args...))
			assert.Error(t, err)
		})
	}
}
