package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// NeoConfig holds the Bolt connection settings for the source graph store.
type NeoConfig struct {
	URI      string `toml:"uri"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Database string `toml:"database"`
}

// QueryConfig carries the two Cypher templates the converter runs. Both must
// derive entity names with the same coalesce chain or relation endpoints stop
// matching entity names. Empty fields fall back to the built-in templates.
type QueryConfig struct {
	Nodes         string `toml:"nodes"`
	Relationships string `toml:"relationships"`
}

type HTTPConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Neo4j   NeoConfig   `toml:"neo4j"`
	Queries QueryConfig `toml:"queries"`
	HTTP    HTTPConfig  `toml:"http"`
}

// FromEnv builds the configuration from process environment variables,
// falling back to the documented defaults for a local Neo4j instance.
func FromEnv() *Config {
	return &Config{
		Neo4j: NeoConfig{
			URI:      envOr("NEO4J_URI", "bolt://localhost:7687"),
			Username: envOr("NEO4J_USERNAME", "neo4j"),
			Password: envOr("NEO4J_PASSWORD", "password"),
			Database: envOr("NEO4J_DATABASE", "neo4j"),
		},
		HTTP: HTTPConfig{
			Port: envOr("PORT", "8080"),
		},
	}
}

// Load layers a TOML file over the environment-derived configuration. Values
// present in the file win; anything the file omits keeps its FromEnv value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := FromEnv()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
