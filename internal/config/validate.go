package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	switch c.Fetcher.Type {
	case "http", "browser":
	default:
		return fmt.Errorf("invalid fetcher type: %q", c.Fetcher.Type)
	}

	if c.Fetcher.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher request_timeout must be positive")
	}
	if c.Fetcher.MaxBodySize < 0 {
		return fmt.Errorf("fetcher max_body_size must not be negative")
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("rate_limit requests_per_second must not be negative")
	}

	for name, raw := range map[string]string{
		"recruit.base_url": c.Recruit.BaseURL,
		"stats.base_url":   c.Stats.BaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s is not a valid absolute URL: %q", name, raw)
		}
	}

	switch c.Storage.Type {
	case "json", "jsonl", "csv", "mongodb":
	default:
		return fmt.Errorf("invalid storage type: %q", c.Storage.Type)
	}
	if c.Storage.Type == "mongodb" && c.Storage.MongoURI == "" {
		return fmt.Errorf("storage mongo_uri is required for mongodb storage")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	return nil
}
