package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Store       StoreConfig       `yaml:"store"`
	Auth        AuthConfig        `yaml:"auth"`
	Dictionary  DictionaryConfig  `yaml:"dictionary"`
	Translation TranslationConfig `yaml:"translation"`
	Reader      ReaderConfig      `yaml:"reader"`
	Lookup      LookupConfig      `yaml:"lookup"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is required only when store.driver is "postgres".
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StoreConfig selects where vocabulary entries are kept.
type StoreConfig struct {
	Driver     string `yaml:"driver"      env:"STORE_DRIVER"      env-default:"postgres"`
	SQLitePath string `yaml:"sqlite_path" env:"STORE_SQLITE_PATH" env-default:"clicktionary.db"`
}

// AuthConfig holds access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"clicktionary"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
}

// DictionaryConfig holds dictionary lookup service settings.
type DictionaryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DICTIONARY_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	Timeout time.Duration `yaml:"timeout"  env:"DICTIONARY_TIMEOUT"  env-default:"10s"`
}

// TranslationConfig holds translation service settings.
type TranslationConfig struct {
	Enabled bool          `yaml:"enabled"  env:"TRANSLATION_ENABLED"  env-default:"true"`
	BaseURL string        `yaml:"base_url" env:"TRANSLATION_BASE_URL" env-default:"https://api.mymemory.translated.net/get"`
	Email   string        `yaml:"email"    env:"TRANSLATION_EMAIL"`
	Timeout time.Duration `yaml:"timeout"  env:"TRANSLATION_TIMEOUT"  env-default:"10s"`
}

// ReaderConfig holds text analysis and import settings.
type ReaderConfig struct {
	// TablePathsRaw is a comma-separated list of difficulty CSV files.
	// Empty means the bundled table.
	TablePathsRaw  string        `yaml:"table_paths"      env:"READER_TABLE_PATHS"`
	MaxTextBytes   int           `yaml:"max_text_bytes"   env:"READER_MAX_TEXT_BYTES"   env-default:"262144"`
	ImportTimeout  time.Duration `yaml:"import_timeout"   env:"READER_IMPORT_TIMEOUT"   env-default:"15s"`
	ImportMaxBytes int64         `yaml:"import_max_bytes" env:"READER_IMPORT_MAX_BYTES" env-default:"5242880"`

	// TablePaths is parsed from TablePathsRaw during validation.
	TablePaths []string `yaml:"-" env:"-"`
}

// LookupConfig holds word lookup settings.
type LookupConfig struct {
	// CapsTier is "compact" (3 definitions, 2 examples, 5 synonyms/antonyms)
	// or "rich" (3, 3, 6, 6).
	CapsTier  string        `yaml:"caps_tier"  env:"LOOKUP_CAPS_TIER"  env-default:"compact"`
	CacheSize int           `yaml:"cache_size" env:"LOOKUP_CACHE_SIZE" env-default:"2048"`
	CacheTTL  time.Duration `yaml:"cache_ttl"  env:"LOOKUP_CACHE_TTL"  env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	LookupPerMinute int           `yaml:"lookup_per_minute" env:"RATE_LIMIT_LOOKUP_PER_MINUTE" env-default:"120"`
	ImportPerMinute int           `yaml:"import_per_minute" env:"RATE_LIMIT_IMPORT_PER_MINUTE" env-default:"10"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
