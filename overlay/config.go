package overlay

import (
	"deedles.dev/wloverlay/internal/debug"
	"github.com/charmbracelet/log"
)

// Config controls how an overlay is created.
type Config struct {
	// Namespace is the layer surface namespace. Compositors use it to
	// apply per-application rules.
	Namespace string

	// DefaultWidth and DefaultHeight are used as the surface size if
	// the compositor has not configured one by the time Open returns,
	// or has left either dimension up to the client.
	DefaultWidth, DefaultHeight uint32

	// Logger receives debug output about degraded functionality. If
	// it is nil, the protocol logger is used.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Namespace:     "overlay",
		DefaultWidth:  1920,
		DefaultHeight: 1080,
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if (cfg.DefaultWidth == 0) || (cfg.DefaultHeight == 0) {
		cfg.DefaultWidth, cfg.DefaultHeight = def.DefaultWidth, def.DefaultHeight
	}
	if cfg.Logger == nil {
		cfg.Logger = debug.Logger().WithPrefix("overlay")
	}
	return cfg
}
