package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Table.Name != "Items" {
		t.Errorf("Table.Name = %q, want %q", cfg.Table.Name, "Items")
	}
	if cfg.CORS.AllowOrigin != "*" {
		t.Errorf("CORS.AllowOrigin = %q, want *", cfg.CORS.AllowOrigin)
	}
	if cfg.CORS.AllowMethods != "GET,POST,PUT,DELETE,OPTIONS" {
		t.Errorf("CORS.AllowMethods = %q", cfg.CORS.AllowMethods)
	}
	if cfg.CORS.AllowHeaders != "Content-Type,Authorization" {
		t.Errorf("CORS.AllowHeaders = %q", cfg.CORS.AllowHeaders)
	}
	if cfg.CORS.MaxAgeSecs != 86400 {
		t.Errorf("CORS.MaxAgeSecs = %d, want 86400", cfg.CORS.MaxAgeSecs)
	}
	if cfg.Port != "8081" {
		t.Errorf("Port = %q, want 8081", cfg.Port)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TABLE_NAME", "ItemsStaging")
	t.Setenv("CORS_ALLOW_ORIGIN", "https://example.com")
	t.Setenv("CORS_MAX_AGE_SECONDS", "600")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Table.Name != "ItemsStaging" {
		t.Errorf("Table.Name = %q, want override", cfg.Table.Name)
	}
	if cfg.CORS.AllowOrigin != "https://example.com" {
		t.Errorf("CORS.AllowOrigin = %q, want override", cfg.CORS.AllowOrigin)
	}
	if cfg.CORS.MaxAgeSecs != 600 {
		t.Errorf("CORS.MaxAgeSecs = %d, want 600", cfg.CORS.MaxAgeSecs)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_STRING", "value")
	t.Setenv("SOME_INT", "42")

	if got := GetEnv("SOME_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, want fallback", got)
	}
	if got := GetEnvAsInt("SOME_INT", 7); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	if got := GetEnvAsInt("MISSING_KEY", 7); got != 7 {
		t.Errorf("GetEnvAsInt = %d, want 7", got)
	}
}
