package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres store")
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", DriverPostgres, DriverSQLite, c.Store.Driver)
	}

	if err := c.Lookup.validate(); err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	if c.Reader.MaxTextBytes <= 0 {
		return fmt.Errorf("reader.max_text_bytes must be > 0 (got %d)", c.Reader.MaxTextBytes)
	}
	c.Reader.TablePaths = SplitList(c.Reader.TablePathsRaw)

	if c.RateLimit.Enabled && (c.RateLimit.LookupPerMinute <= 0 || c.RateLimit.ImportPerMinute <= 0) {
		return fmt.Errorf("rate_limit per-minute limits must be > 0")
	}

	return nil
}

func (l *LookupConfig) validate() error {
	switch strings.ToLower(l.CapsTier) {
	case "compact", "rich":
	default:
		return fmt.Errorf("caps_tier must be \"compact\" or \"rich\" (got %q)", l.CapsTier)
	}
	if l.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0 (got %d)", l.CacheSize)
	}
	return nil
}

// SplitList splits a comma-separated value, trimming spaces and dropping
// empty items. An empty string returns nil.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
