package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORYBOT_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "PORT",
		"STORYBOT_LISTEN_ADDRESS", "STORYBOT_MODEL", "STORYBOT_LOG_LEVEL", "STORYBOT_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	clearEnv(t)
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error without api_key")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
	if cfg.ListenAddress != "0.0.0.0:8080" {
		t.Fatalf("listen address = %q", cfg.ListenAddress)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("model = %q", cfg.Model)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "api_key: file-key\nmodel: gemini-1.5-flash\nlisten_address: 127.0.0.1:9000\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "file-key" || cfg.Model != "gemini-1.5-flash" || cfg.ListenAddress != "127.0.0.1:9000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv("STORYBOT_API_KEY", "env-key")
	t.Setenv("STORYBOT_MODEL", "gemini-pro")
	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "env-key" || cfg.Model != "gemini-pro" {
		t.Fatalf("env did not override file: %+v", cfg)
	}
}

func TestLoadConfigPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("PORT", "10000")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddress != "0.0.0.0:10000" {
		t.Fatalf("listen address = %q", cfg.ListenAddress)
	}
}

func TestLoadConfigInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("STORYBOT_LOG_LEVEL", "loud")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for invalid log level")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "key")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
