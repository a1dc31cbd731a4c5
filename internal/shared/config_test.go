package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./gdx.db" {
			t.Errorf("expected database path ./gdx.db, got %s", config.Database.Path)
		}

		if config.Remote.BaseURL != "https://api.rawg.io/api" {
			t.Errorf("expected RAWG base URL, got %s", config.Remote.BaseURL)
		}

		if config.Remote.PageSize != 12 {
			t.Errorf("expected page size 12, got %d", config.Remote.PageSize)
		}

		if config.Features.RemoteFetch {
			t.Error("remote fetch should be disabled by default")
		}

		if config.Storage.CatalogKey != "local_games_demo" {
			t.Errorf("expected catalog key local_games_demo, got %s", config.Storage.CatalogKey)
		}

		if config.Storage.SessionKey == config.Storage.UsersKey {
			t.Error("storage keys must not collide")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[app]
name = "gdx"
version = "9.9.9"
production = true

[remote]
base_url = "http://localhost:9090"
api_key = "test_api_key"
page_size = 24
ordering = "-released"
rps = 2.5

[features]
remote_fetch = true
analytics = false
logging = true

[storage]
session_key = "auth"
users_key = "members"
catalog_key = "games"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if !config.Features.RemoteFetch {
			t.Error("expected remote fetch to be enabled")
		}

		if config.Remote.APIKey != "test_api_key" {
			t.Errorf("expected api key test_api_key, got %s", config.Remote.APIKey)
		}

		if config.Storage.UsersKey != "members" {
			t.Errorf("expected users key members, got %s", config.Storage.UsersKey)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
