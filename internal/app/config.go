package app

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all the configuration settings for our Application. Values
// are read from NGDASH_-prefixed environment variables, with command-line
// flags taking precedence when the binary defines them.
type Config struct {
	Port      int      `envconfig:"PORT" default:"4000"`
	Env       string   `envconfig:"ENV" default:"development"`
	ApiKeys   []string `envconfig:"API_KEYS" default:"test"`
	DataPath  string   `envconfig:"DATA_PATH" default:"testdata/nigeria_indicators.csv"`
	Watch     bool     `envconfig:"WATCH" default:"false"`
	RateLimit int      `envconfig:"RATE_LIMIT" default:"100"`
	Verbose   bool     `envconfig:"VERBOSE" default:"false"`
}

// LoadConfig reads the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("ngdash", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment configuration: %w", err)
	}
	return cfg, nil
}
