package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the ~/.zulusetup/config.toml defaults file. It only
// seeds flag defaults; flags always win.
type Config struct {
	JDKVersion int    `toml:"jdk_version,omitempty" json:"jdk_version"`
	APIBase    string `toml:"api_base,omitempty" json:"api_base"`
}

// DefaultJDKVersion is used when neither flag nor config file specify one.
const DefaultJDKVersion = 21

// configDirOverride is set by the --config-dir flag.
var configDirOverride string

// SetConfigDir allows the CLI to pass in the --config-dir value.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// Home returns the config directory path.
// Precedence: --config-dir flag > ZULUSETUP_HOME env > ~/.zulusetup
func Home() string {
	if configDirOverride != "" {
		return configDirOverride
	}
	if v := os.Getenv("ZULUSETUP_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".zulusetup")
	}
	return filepath.Join(home, ".zulusetup")
}

// Path returns the full path to config.toml.
func Path() string {
	return filepath.Join(Home(), "config.toml")
}

// Load reads config.toml and returns a Config struct.
// If the file does not exist, it returns a zero-value Config (defaults).
func Load() (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config.toml: %w", err)
	}
	return cfg, nil
}

// Save writes the Config struct back to config.toml.
func Save(cfg *Config) error {
	if err := os.MkdirAll(Home(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config.toml: %w", err)
	}
	return nil
}
