package config

import "testing"

func TestGetStoreConfigDefaultsToPostgres(t *testing.T) {
	t.Setenv("ROI_STORE_TYPE", "")
	t.Setenv("DB_CONN_STRING", "")

	cfg := GetStoreConfig()
	if cfg.Type != "postgres" {
		t.Errorf("type = %q, want postgres", cfg.Type)
	}
	if cfg.ConnectionString == "" {
		t.Error("expected a default connection string")
	}
	if IsMockMode() {
		t.Error("default configuration must not be mock mode")
	}
}

func TestGetStoreConfigHonorsEnvironment(t *testing.T) {
	t.Setenv("ROI_STORE_TYPE", "postgresql")
	t.Setenv("DB_CONN_STRING", "postgres://roi:secret@db:5432/register?sslmode=disable")

	cfg := GetStoreConfig()
	if cfg.Type != "postgres" {
		t.Errorf("type = %q, want postgres", cfg.Type)
	}
	if cfg.ConnectionString != "postgres://roi:secret@db:5432/register?sslmode=disable" {
		t.Errorf("unexpected connection string %q", cfg.ConnectionString)
	}
}

func TestGetStoreConfigMockMode(t *testing.T) {
	t.Setenv("ROI_STORE_TYPE", "Mock")

	cfg := GetStoreConfig()
	if cfg.Type != "mock" {
		t.Errorf("type = %q, want mock", cfg.Type)
	}
	if cfg.ConnectionString != "" {
		t.Errorf("mock mode must not carry a connection string, got %q", cfg.ConnectionString)
	}
	if !IsMockMode() {
		t.Error("IsMockMode should report true")
	}
}
