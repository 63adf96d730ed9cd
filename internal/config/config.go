package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Session  SessionConfig  `yaml:"session"`
	Identity IdentityConfig `yaml:"identity"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SessionConfig selects where the current actor is persisted between
// process restarts.
type SessionConfig struct {
	Backend       string        `yaml:"backend"        env:"SESSION_BACKEND"        env-default:"memory"`
	RedisAddr     string        `yaml:"redis_addr"     env:"SESSION_REDIS_ADDR"     env-default:"localhost:6379"`
	RedisPassword string        `yaml:"redis_password" env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db"       env:"SESSION_REDIS_DB"       env-default:"0"`
	Key           string        `yaml:"key"            env:"SESSION_KEY"            env-default:"crimewatch:session:actor"`
	TTL           time.Duration `yaml:"ttl"            env:"SESSION_TTL"            env-default:"0s"`
}

// IdentityConfig holds Identity Register settings.
type IdentityConfig struct {
	// Latency simulates the round-trip of a real identity backend on
	// register and sign-in.
	Latency time.Duration `yaml:"latency" env:"IDENTITY_LATENCY" env-default:"0s"`
}

// LedgerConfig holds Report Ledger settings.
type LedgerConfig struct {
	SubmitLatency     time.Duration `yaml:"submit_latency"     env:"LEDGER_SUBMIT_LATENCY"     env-default:"0s"`
	StrictTransitions bool          `yaml:"strict_transitions" env:"LEDGER_STRICT_TRANSITIONS" env-default:"false"`
	DisableSeed       bool          `yaml:"disable_seed"       env:"LEDGER_DISABLE_SEED"       env-default:"false"`
	// SeedFile replaces the built-in demo dataset when set.
	SeedFile string `yaml:"seed_file" env:"LEDGER_SEED_FILE"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SessionBackend values.
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)
