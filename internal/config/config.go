// Package config handles configuration for the authenticator: defaults,
// an optional JSON file overlay, and command-line flags.
package config

// Backend names for the credential store.
const (
	BackendJSON     = "json"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds runtime settings.
//
// Fields:
//   - Backend: credential store backend (json, sqlite, postgres, memory).
//   - StorePath: path of the JSON store document (json backend).
//   - DatabaseDSN: SQLite path or PostgreSQL DSN (sqlite/postgres backends).
//   - KeyPath: path of the base64-encoded AES-256 key file.
//   - Issuer: issuer name embedded in provisioning URIs.
type Config struct {
	Backend     string
	StorePath   string
	DatabaseDSN string
	KeyPath     string
	Issuer      string
}

// LoadDefaults populates Config with local-use defaults.
func (c *Config) LoadDefaults() {
	c.Backend = BackendJSON
	c.StorePath = "users.json"
	c.DatabaseDSN = "biohash.db"
	c.KeyPath = "secret.key"
	c.Issuer = "BioHash Authenticator"
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
