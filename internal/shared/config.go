package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	App      AppConfig      `toml:"app"`
	Remote   RemoteConfig   `toml:"remote"`
	Features FeaturesConfig `toml:"features"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
}

// AppConfig contains application identity settings.
type AppConfig struct {
	Name       string `toml:"name"`
	Version    string `toml:"version"`
	Production bool   `toml:"production"`
}

// RemoteConfig contains settings for the remote catalog API (RAWG).
type RemoteConfig struct {
	BaseURL  string  `toml:"base_url"`
	APIKey   string  `toml:"api_key"`
	PageSize int     `toml:"page_size"`
	Ordering string  `toml:"ordering"`
	RPS      float64 `toml:"rps"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	RemoteFetch bool `toml:"remote_fetch"`
	Analytics   bool `toml:"analytics"`
	Logging     bool `toml:"logging"`
}

// StorageConfig names the durable-storage keys.
// Each key is exclusively owned by one store; no two stores share a key.
type StorageConfig struct {
	SessionKey string `toml:"session_key"`
	UsersKey   string `toml:"users_key"`
	CatalogKey string `toml:"catalog_key"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, err)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
