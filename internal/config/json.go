package config

import (
	"encoding/json"
	"os"

	"github.com/biohash-labs/biohash/internal/flagx"
)

// JsonConfig is the DTO used for reading JSON configuration files.
// After unmarshalling, non-empty fields are copied into the runtime
// Config, so partial files only override what they mention.
type JsonConfig struct {
	Backend     string `json:"backend"`
	StorePath   string `json:"store_path"`
	DatabaseDSN string `json:"database_dsn"`
	KeyPath     string `json:"key_path"`
	Issuer      string `json:"issuer"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags into the provided Config. If neither flag is set,
// nothing is loaded. An unreadable or invalid file panics, since running
// with half-applied configuration is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.Backend != "" {
		config.Backend = c.Backend
	}
	if c.StorePath != "" {
		config.StorePath = c.StorePath
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.KeyPath != "" {
		config.KeyPath = c.KeyPath
	}
	if c.Issuer != "" {
		config.Issuer = c.Issuer
	}
}
