// Package config loads the tool configuration from a TOML file and the
// environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable settings. The API key is deliberately not part
// of the file format; it comes from a flag or the environment.
type Config struct {
	Model     string `toml:"model"`      // Embedding model name
	TopN      int    `toml:"top_n"`      // Ranked result bound
	CacheSize int    `toml:"cache_size"` // Embedding cache entries, 0 disables
	Debug     bool   `toml:"debug"`      // Verbose logging
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Model:     "text-embedding-3-small",
		TopN:      20,
		CacheSize: 256,
	}
}

// Load reads path over the defaults. An empty path returns the defaults
// unchanged; a named file that cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadEnv loads a .env file from the working directory when one exists.
// A missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveAPIKey picks the API key from the flag value, falling back to the
// OPENAI_API_KEY environment variable.
func ResolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("OPENAI_API_KEY")
}
