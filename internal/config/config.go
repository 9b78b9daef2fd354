package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/storbeck/dictforge/internal/classify"
)

// Config holds everything one run needs. Nothing in here mutates after
// startup; the run pipeline only ever reads it.
type Config struct {
	Domain        string
	Output        string
	DBPath        string
	Timeout       time.Duration
	Sequential    bool
	SkipGau       bool
	SkipURLFinder bool
	GauBin        string
	URLFinderBin  string

	// StaticExtensions feeds the classifier; editing it never touches
	// extraction logic.
	StaticExtensions []string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:           "wordlist.txt",
		Timeout:          5 * time.Minute,
		GauBin:           "gau",
		URLFinderBin:     "urlfinder",
		StaticExtensions: classify.DefaultExtensions,
	}
}

// Load layers an optional YAML config file over the defaults. An empty
// path returns the defaults untouched. Flag values are applied on top
// by the caller, so precedence is flags > file > defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if v.IsSet("output") {
		cfg.Output = v.GetString("output")
	}
	if v.IsSet("db") {
		cfg.DBPath = v.GetString("db")
	}
	if v.IsSet("timeout") {
		cfg.Timeout = v.GetDuration("timeout")
	}
	if v.IsSet("sequential") {
		cfg.Sequential = v.GetBool("sequential")
	}
	if v.IsSet("tools.gau") {
		cfg.GauBin = v.GetString("tools.gau")
	}
	if v.IsSet("tools.urlfinder") {
		cfg.URLFinderBin = v.GetString("tools.urlfinder")
	}
	if v.IsSet("static_extensions") {
		cfg.StaticExtensions = v.GetStringSlice("static_extensions")
	}

	if cfg.Timeout <= 0 {
		return cfg, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}
