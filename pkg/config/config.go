package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/newsdedup/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Dedup    DedupConfig    `yaml:"dedup" json:"dedup" jsonschema:"description=Duplicate detection configuration"`
	Fetch    FetchConfig    `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`
	Feeds    []Feed         `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds to collect articles from"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsdedup.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=0,description=Connection maximum lifetime in seconds"`
}

// DedupConfig holds duplicate detection settings
type DedupConfig struct {
	Threshold  float64 `yaml:"threshold" json:"threshold" jsonschema:"default=0.8,minimum=0,maximum=1,description=Similarity threshold for duplicates"`
	Mode       string  `yaml:"mode" json:"mode" jsonschema:"default=text,enum=text,enum=keywords,description=Similarity basis"`
	Workers    int     `yaml:"workers" json:"workers" jsonschema:"minimum=0,description=Goroutines used for pair matching (0 means number of CPUs)"`
	StripPunct bool    `yaml:"strip_punctuation" json:"strip_punctuation" jsonschema:"default=false,description=Trim punctuation around words"`
	Auto       bool    `yaml:"auto" json:"auto" jsonschema:"default=false,description=Remove duplicates after each scheduled fetch"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout per feed request"`
	MaxConcurrent int           `yaml:"max_concurrent" json:"max_concurrent" jsonschema:"default=5,minimum=1,description=Maximum concurrent feed fetches"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=newsdedup/1.0,description=User agent for HTTP requests"`
	MaxKeywords   int           `yaml:"max_keywords" json:"max_keywords" jsonschema:"default=10,minimum=0,description=Keywords extracted per article (0 disables)"`
	Interval      time.Duration `yaml:"interval" json:"interval" jsonschema:"minimum=0,description=Feed fetch interval in serve mode (0 disables)"`
}

// Feed is a configured feed source
type Feed struct {
	Name     string `yaml:"name" json:"name" jsonschema:"description=Feed name used as article source"`
	URL      string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Category string `yaml:"category" json:"category" jsonschema:"description=Category assigned to feed articles"`
}

// Default returns configuration with all defaults set
func Default() *Config {
	return &Config{
		Server: ServerConfig{Listen: ":8080", Timeout: 30 * time.Second},
		Database: DatabaseConfig{
			DSN:             "file:newsdedup.db?cache=shared&mode=rwc&_txlock=immediate",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 3600,
		},
		Dedup: DedupConfig{Threshold: 0.8, Mode: string(domain.ModeText), Workers: runtime.NumCPU()},
		Fetch: FetchConfig{Timeout: 30 * time.Second, MaxConcurrent: 5, UserAgent: "newsdedup/1.0", MaxKeywords: 10},
	}
}

// Load reads configuration from a YAML file.
// Values missing in the file keep their defaults, so an explicit zero (e.g. threshold 0) is kept.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Dedup.Workers == 0 {
		cfg.Dedup.Workers = runtime.NumCPU()
	}
	for i := range cfg.Feeds {
		if cfg.Feeds[i].Name == "" {
			cfg.Feeds[i].Name = cfg.Feeds[i].URL
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("verify config: %w", err)
	}

	return cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Fetch.Interval != 0 && cfg.Fetch.Interval < time.Second {
		return fmt.Errorf("fetch interval must be at least 1 second")
	}
	if _, err := domain.ParseMode(cfg.Dedup.Mode); err != nil {
		return fmt.Errorf("dedup.mode: %w", err)
	}
	for i, f := range cfg.Feeds {
		if f.URL == "" {
			return fmt.Errorf("feeds[%d].url is required", i)
		}
	}
	return nil
}

// Sources returns configured feeds as domain feed sources
func (c *Config) Sources() []domain.FeedSource {
	res := make([]domain.FeedSource, 0, len(c.Feeds))
	for _, f := range c.Feeds {
		res = append(res, domain.FeedSource{Name: f.Name, URL: f.URL, Category: f.Category})
	}
	return res
}

// SimilarityMode returns parsed dedup mode, text if the configured one is invalid
func (c *Config) SimilarityMode() domain.SimilarityMode {
	mode, err := domain.ParseMode(c.Dedup.Mode)
	if err != nil {
		return domain.ModeText
	}
	return mode
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetDedupThreshold returns default similarity threshold
func (c *Config) GetDedupThreshold() float64 {
	return c.Dedup.Threshold
}
