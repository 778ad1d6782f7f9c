package config

import (
	"flag"
	"os"

	"github.com/biohash-labs/biohash/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   store backend: json, sqlite, postgres, memory
//	-f string   JSON store file path
//	-d string   database DSN (sqlite path or postgres DSN)
//	-k string   key file path
//	-i string   issuer name for provisioning URIs
//
// Args are filtered through flagx.FilterArgs first so the -c/-config
// flags handled by the JSON overlay do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-d", "-k", "-i"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Backend, "b", config.Backend, "store backend (json, sqlite, postgres, memory)")
	fs.StringVar(&config.StorePath, "f", config.StorePath, "JSON store file path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.KeyPath, "k", config.KeyPath, "key file path")
	fs.StringVar(&config.Issuer, "i", config.Issuer, "issuer name for provisioning URIs")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
