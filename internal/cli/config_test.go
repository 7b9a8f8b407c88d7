package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Layout != defaults.Layout {
		t.Errorf("missing file should return defaults, got %+v", cfg.Layout)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
width = 1024
iterations = 500

[cache]
redis_addr = "localhost:6379"

[store]
mongo_uri = "mongodb://localhost:27017"
database = "graphs"

[server]
addr = ":9090"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Layout.Width != 1024 {
		t.Errorf("Width = %v, want 1024", cfg.Layout.Width)
	}
	if cfg.Layout.Iterations != 500 {
		t.Errorf("Iterations = %v, want 500", cfg.Layout.Iterations)
	}
	// Unset values keep their defaults
	if cfg.Layout.Height != DefaultConfig().Layout.Height {
		t.Errorf("Height = %v, want default", cfg.Layout.Height)
	}
	if cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.Cache.RedisAddr)
	}
	if cfg.Store.Database != "graphs" {
		t.Errorf("Database = %q", cfg.Store.Database)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("invalid TOML should return an error")
	}
}
