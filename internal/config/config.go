package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultEndpoint is the certification area list served by the upstream API.
const DefaultEndpoint = "https://pruebatest.lenorgroup.com/api/PruebaTecnica/AreaCertificacionGetList"

// Config holds application configuration.
type Config struct {
	API  APIConfig  `mapstructure:"api"`
	HTTP HTTPConfig `mapstructure:"http"`
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
}

// APIConfig holds the upstream location.
type APIConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// HTTPConfig holds client settings. A zero Timeout disables the deadline.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig controls where the TUI writes its log. Empty File discards it.
type LogConfig struct {
	File string `mapstructure:"file"`
}

// Path returns the config file location, honouring CERTBROWSER_CONFIG.
func Path() string {
	if p := os.Getenv("CERTBROWSER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "certbrowser", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix CERTBROWSER_.
// An explicit path takes precedence over CERTBROWSER_CONFIG and the default location.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("api.endpoint", DefaultEndpoint)
	v.SetDefault("http.timeout", "30s")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv("CERTBROWSER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "certbrowser"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CERTBROWSER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; defaults and env still apply
	if err := v.ReadInConfig(); err != nil && !isMissing(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.API.Endpoint = strings.TrimSpace(c.API.Endpoint)
	if c.API.Endpoint == "" {
		return Config{}, fmt.Errorf("config: api.endpoint is empty")
	}
	if c.HTTP.Timeout < 0 {
		return Config{}, fmt.Errorf("config: http.timeout must not be negative, got %s", c.HTTP.Timeout)
	}
	return c, nil
}

// Save writes the provided config to path (or Path() when empty),
// creating the config directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.endpoint", cfg.API.Endpoint)
	v.Set("http.timeout", cfg.HTTP.Timeout.String())
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
