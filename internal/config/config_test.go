package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("ENV")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.RecentLimit != 5 {
		t.Errorf("expected default recent limit 5, got %d", cfg.RecentLimit)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("expected default request timeout 30, got %d", cfg.RequestTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("RECENT_PATIENTS_LIMIT", "10")
	defer os.Unsetenv("PORT")
	defer os.Unsetenv("RECENT_PATIENTS_LIMIT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.RecentLimit != 10 {
		t.Errorf("expected recent limit 10, got %d", cfg.RecentLimit)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
}

func TestConfig_Validate(t *testing.T) {
	c := &Config{Port: "8000", RecentLimit: 5, RequestTimeout: 30}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Port = ""
	if err := c.Validate(); err == nil {
		t.Error("expected error for empty port")
	}

	c.Port = "8000"
	c.RecentLimit = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for non-positive recent limit")
	}

	c.RecentLimit = 5
	c.RequestTimeout = 0
	if err := c.Validate(); err == nil {
		t.Error("expected error for non-positive request timeout")
	}
}
