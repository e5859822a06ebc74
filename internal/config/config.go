package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for statside.
type Config struct {
	Fetcher   FetcherConfig   `mapstructure:"fetcher"    yaml:"fetcher"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
	Recruit   RecruitConfig   `mapstructure:"recruit"    yaml:"recruit"`
	Stats     StatsConfig     `mapstructure:"stats"      yaml:"stats"`
	Storage   StorageConfig   `mapstructure:"storage"    yaml:"storage"`
	Logging   LoggingConfig   `mapstructure:"logging"    yaml:"logging"`
}

// FetcherConfig controls the document fetcher.
type FetcherConfig struct {
	Type            string        `mapstructure:"type"              yaml:"type"` // http or browser
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
	MaxPages        int           `mapstructure:"max_pages"         yaml:"max_pages"` // browser page pool size
	UserAgents      []string      `mapstructure:"user_agents"       yaml:"user_agents"`
}

// RateLimitConfig controls the per-domain politeness limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `mapstructure:"burst"               yaml:"burst"`
}

// RecruitConfig controls the recruiting-site source.
type RecruitConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// StatsConfig controls the sports-media JSON source.
type StatsConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// StorageConfig controls output/export.
type StorageConfig struct {
	Type            string `mapstructure:"type"             yaml:"type"` // json, jsonl, csv, mongodb
	OutputPath      string `mapstructure:"output_path"      yaml:"output_path"`
	MongoURI        string `mapstructure:"mongo_uri"        yaml:"mongo_uri"`
	MongoDatabase   string `mapstructure:"mongo_database"   yaml:"mongo_database"`
	MongoCollection string `mapstructure:"mongo_collection" yaml:"mongo_collection"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Fetcher: FetcherConfig{
			Type:            "http",
			RequestTimeout:  30 * time.Second,
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
			MaxPages:        4,
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			},
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 2.0,
			Burst:             4,
		},
		Recruit: RecruitConfig{
			BaseURL: "https://247sports.com",
		},
		Stats: StatsConfig{
			BaseURL: "https://site.api.espn.com/apis/site/v2/sports",
		},
		Storage: StorageConfig{
			Type:            "json",
			OutputPath:      "./output",
			MongoDatabase:   "statside",
			MongoCollection: "records",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
