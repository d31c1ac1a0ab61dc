package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.PostgresHost == "" {
		t.Error("PostgresHost should have a default")
	}
	if cfg.PostgresDB == "" {
		t.Error("PostgresDB should have a default")
	}
	if cfg.APIPort <= 0 {
		t.Errorf("APIPort should default to a valid port, got %d", cfg.APIPort)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "bytepay")
	t.Setenv("POSTGRES_DB", "payments")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("API_PORT", "9000")
	t.Setenv("DEVELOPMENT", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.PostgresUser != "bytepay" {
		t.Errorf("PostgresUser = %q, want %q", cfg.PostgresUser, "bytepay")
	}
	if cfg.PostgresDB != "payments" {
		t.Errorf("PostgresDB = %q, want %q", cfg.PostgresDB, "payments")
	}
	if cfg.PostgresPort != 5433 {
		t.Errorf("PostgresPort = %d, want 5433", cfg.PostgresPort)
	}
	if cfg.APIPort != 9000 {
		t.Errorf("APIPort = %d, want 9000", cfg.APIPort)
	}
	if !cfg.Development {
		t.Error("Development should be true")
	}
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.PostgresPort != 5432 {
		t.Errorf("PostgresPort = %d, want default 5432", cfg.PostgresPort)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := &Config{
		PostgresHost: "localhost",
		PostgresDB:   "bytepay",
		APIPort:      -1,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative port")
	}
}
