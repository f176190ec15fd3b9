package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/loracharts/pkg/cache"
	"github.com/matzehuels/loracharts/pkg/labels"
	"github.com/matzehuels/loracharts/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "loracharts"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Measurement
// =============================================================================

// newMeasurer returns the text measurer for a command. The face measurer is
// wrapped in an LRU width cache sized from the config.
func (c *CLI) newMeasurer(heuristic bool) labels.TextMeasurer {
	if heuristic || c.config.Heuristic {
		return labels.HeuristicMeasurer{}
	}
	var wc cache.Cache = cache.NewNullCache()
	if c.config.CacheSize > 0 {
		wc = cache.NewLRU(c.config.CacheSize)
	}
	return labels.NewCachedMeasurer(labels.FaceMeasurer{}, wc)
}

// font merges font flags over the configured font. Zero values keep the
// configured value.
func (c *CLI) font(size float64, family string) labels.Font {
	f := c.config.Font
	if size > 0 {
		f.Size = size
	}
	if family != "" {
		f.Family = family
	}
	return f
}

// loadTheme loads the theme at path, falling back to the configured theme
// file and then to the built-in theme.
func (c *CLI) loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		path = c.config.Theme
	}
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/loracharts/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}
