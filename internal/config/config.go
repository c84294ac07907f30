// Package config carries the settings shared by the autotag server and
// command-line tools. Values come from defaults overridden by AUTOTAG_*
// environment variables; command flags layer on top in the commands
// themselves.
package config

import (
	"os"

	tables "github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/config"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Tables TableConfig
}

type ServerConfig struct {
	Addr      string
	AuthToken string // empty disables bearer auth
}

type StoreConfig struct {
	Path string // sqlite file; empty means in-memory
}

// TableConfig points at the YAML files behind the lookup tables. Empty
// paths mean the built-in defaults.
type TableConfig struct {
	TaxonomyPath     string
	ContentTypesPath string
	LexiconPath      string
	StoplistPath     string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load builds the configuration from defaults and environment
// overrides.
func Load() Config {
	cfg := defaults()
	applyEnv(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Server.Addr, "AUTOTAG_ADDR")
	set(&cfg.Server.AuthToken, "AUTOTAG_TOKEN")
	set(&cfg.Store.Path, "AUTOTAG_DB")
	set(&cfg.Tables.TaxonomyPath, "AUTOTAG_TAXONOMY")
	set(&cfg.Tables.ContentTypesPath, "AUTOTAG_CONTENT_TYPES")
	set(&cfg.Tables.LexiconPath, "AUTOTAG_LEXICON")
	set(&cfg.Tables.StoplistPath, "AUTOTAG_STOPLIST")
}

// TableLoader bridges the configured paths to the table loader.
func (c Config) TableLoader() tables.Loader {
	return tables.Loader{
		TaxonomyPath:     c.Tables.TaxonomyPath,
		ContentTypesPath: c.Tables.ContentTypesPath,
		LexiconPath:      c.Tables.LexiconPath,
		StoplistPath:     c.Tables.StoplistPath,
	}
}
