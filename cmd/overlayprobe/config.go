package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/image/colornames"
)

// Config is the probe's configuration. It is read from, in order of
// increasing precedence, the defaults, overlayprobe.toml in the user
// config directory, OVERLAYPROBE_* environment variables, and flags.
type Config struct {
	Namespace string `mapstructure:"namespace"`
	Color     string `mapstructure:"color"`
	Alpha     int    `mapstructure:"alpha"`
	LogLevel  string `mapstructure:"log_level"`
}

var DefaultConfig = Config{
	Namespace: "overlay",
	Color:     "black",
	Alpha:     0x60,
	LogLevel:  "info",
}

// addFlags registers a flag for every setting.
func addFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file to use instead of the default one")
	flags.String("namespace", DefaultConfig.Namespace, "layer surface namespace")
	flags.String("color", DefaultConfig.Color, "tint color, as an SVG color name")
	flags.Int("alpha", DefaultConfig.Alpha, "tint opacity, from 0 to 255")
	flags.String("log-level", DefaultConfig.LogLevel, "log level (debug, info, warn, error)")
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	v.SetConfigName("overlayprobe")
	v.SetConfigType("toml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "overlayprobe"))
	}

	v.SetEnvPrefix("OVERLAYPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("log_level", "OVERLAYPROBE_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return Config{}, fmt.Errorf("bind log level env: %w", err)
	}

	v.SetDefault("namespace", DefaultConfig.Namespace)
	v.SetDefault("color", DefaultConfig.Color)
	v.SetDefault("alpha", DefaultConfig.Alpha)
	v.SetDefault("log_level", DefaultConfig.LogLevel)

	if flags != nil {
		for key, flag := range map[string]string{
			"namespace": "namespace",
			"color":     "color",
			"alpha":     "alpha",
			"log_level": "log-level",
		} {
			if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
				return Config{}, fmt.Errorf("bind flag %v: %w", flag, err)
			}
		}

		if path, _ := flags.GetString("config"); path != "" {
			v.SetConfigFile(path)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if _, ok := colornames.Map[strings.ToLower(cfg.Color)]; !ok {
		return fmt.Errorf("unknown color %q", cfg.Color)
	}
	if (cfg.Alpha < 0) || (cfg.Alpha > 0xFF) {
		return fmt.Errorf("alpha %v out of range", cfg.Alpha)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Tint returns the color that the overlay is filled with.
func (cfg Config) Tint() color.NRGBA {
	c := colornames.Map[strings.ToLower(cfg.Color)]
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(cfg.Alpha)}
}

// Level returns the configured log level, falling back to info.
func (cfg Config) Level() log.Level {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
