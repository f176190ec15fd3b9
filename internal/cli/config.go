package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/loracharts/pkg/cache"
	"github.com/matzehuels/loracharts/pkg/errors"
	"github.com/matzehuels/loracharts/pkg/labels"
)

// Config is the optional TOML config file. Command flags override it.
//
//	heuristic = false
//	cache_size = 4096
//	theme = "~/charts/dark.toml"
//
//	[font]
//	size = 12
//	family = "Inter, sans-serif"
//
//	[serve]
//	addr = ":8080"
//	cors = true
//	metrics = true
//	shutdown_timeout = "10s"
type Config struct {
	Font      labels.Font `toml:"font"`
	Theme     string      `toml:"theme"`
	Heuristic bool        `toml:"heuristic"`
	CacheSize int         `toml:"cache_size" validate:"gte=0,lte=1000000"`
	Serve     ServeConfig `toml:"serve"`
}

// ServeConfig configures the serve command.
type ServeConfig struct {
	Addr            string        `toml:"addr" validate:"required,hostname_port"`
	CORS            bool          `toml:"cors"`
	Metrics         bool          `toml:"metrics"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" validate:"gte=0"`
}

func defaultConfig() *Config {
	return &Config{
		CacheSize: cache.DefaultSize,
		Serve: ServeConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// configPath returns the config file to read. An explicit path must exist;
// the default path is optional.
func configPath(explicit string) (path string, required bool, err error) {
	if explicit != "" {
		return explicit, true, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", false, err
	}
	return filepath.Join(dir, configFile), false, nil
}

// loadConfig reads the config file over the defaults and validates the result.
func loadConfig(explicit string) (*Config, error) {
	cfg := defaultConfig()

	path, required, err := configPath(explicit)
	if err != nil {
		return cfg, nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if required {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	return errors.ValidateFontSize(c.Font.Size)
}
