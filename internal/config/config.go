// Package config resolves the register database settings from the
// environment.
package config

import (
	"os"
	"strings"
)

// Config holds the settings for the register store.
type Config struct {
	Type             string
	ConnectionString string
}

// GetStoreConfig returns the store configuration based on environment
// variables.
func GetStoreConfig() Config {
	storeType := strings.ToLower(os.Getenv("ROI_STORE_TYPE"))
	switch storeType {
	case "mock":
		return Config{Type: "mock"}
	case "postgresql", "postgres", "db":
		return Config{Type: "postgres", ConnectionString: getConnectionString()}
	default:
		// Default to postgres, the only persistent backend.
		return Config{Type: "postgres", ConnectionString: getConnectionString()}
	}
}

// IsMockMode reports whether the store type is set to mock. Mock mode
// runs without a database and serves tests and demos that only need
// the schema-level commands.
func IsMockMode() bool {
	return strings.EqualFold(os.Getenv("ROI_STORE_TYPE"), "mock")
}

// getConnectionString returns the database connection string
func getConnectionString() string {
	connStr := os.Getenv("DB_CONN_STRING")
	if connStr == "" {
		// Default connection string for local development
		return "postgres://localhost:5432/postgres?sslmode=disable"
	}
	return connStr
}
