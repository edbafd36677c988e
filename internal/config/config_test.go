package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ExportPath != "db/export" {
		t.Errorf("Expected export_path to be 'db/export', got '%s'", cfg.ExportPath)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}

	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
}

func TestValidate(t *testing.T) {
	for _, provider := range []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"} {
		cfg := DefaultConfig()
		cfg.Database.Provider = provider
		if err := cfg.Validate(); err != nil {
			t.Errorf("Expected provider %s to validate, got %v", provider, err)
		}
	}

	cfg := DefaultConfig()
	cfg.Database.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Error("Expected unsupported provider to fail validation")
	}

	cfg = DefaultConfig()
	cfg.ExportPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Expected empty export_path to fail validation")
	}
}

func TestGetDatabaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.URLEnv = "HRSEED_TEST_DB_URL"

	os.Unsetenv("HRSEED_TEST_DB_URL")
	if _, err := cfg.GetDatabaseURL(); err == nil {
		t.Error("Expected error when env var is unset")
	}

	t.Setenv("HRSEED_TEST_DB_URL", "sqlite://test.db")
	url, err := cfg.GetDatabaseURL()
	if err != nil {
		t.Fatalf("Failed to get database URL: %v", err)
	}
	if url != "sqlite://test.db" {
		t.Errorf("Expected 'sqlite://test.db', got '%s'", url)
	}
}

func TestInitializeProject(t *testing.T) {
	tempDir := t.TempDir()

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	defer os.Chdir(originalDir)

	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	if IsInitialized() {
		t.Error("Expected project to not be initialized, but it was")
	}

	if err := InitializeProject(); err != nil {
		t.Fatalf("Failed to initialize project: %v", err)
	}

	configPath := filepath.Join(tempDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file was not created at %s", configPath)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "db/export")); os.IsNotExist(err) {
		t.Error("Export directory was not created")
	}

	if !IsInitialized() {
		t.Error("Expected project to be initialized, but it wasn't")
	}

	// second initialization must refuse to overwrite
	if err := InitializeProject(); err == nil {
		t.Error("Expected second initialization to fail, but it succeeded")
	}
}
