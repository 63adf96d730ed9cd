package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

session:
  backend: "redis"
  redis_addr: "redis:6379"
  redis_db: 2
  key: "test:actor"
  ttl: "24h"

identity:
  latency: "800ms"

ledger:
  submit_latency: "1s"
  strict_transitions: true
  disable_seed: true

log:
  level: "debug"
  format: "text"

cors:
  allowed_origins: "http://localhost:5173"
`

// validConfig returns a Config equivalent to the env-default values.
func validConfig() Config {
	return Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
		Session: SessionConfig{Backend: "memory", RedisAddr: "localhost:6379", Key: "crimewatch:session:actor"},
		Log:     LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Session
	if cfg.Session.Backend != SessionBackendRedis {
		t.Errorf("session.backend = %q, want %q", cfg.Session.Backend, SessionBackendRedis)
	}
	if cfg.Session.RedisAddr != "redis:6379" {
		t.Errorf("session.redis_addr = %q", cfg.Session.RedisAddr)
	}
	if cfg.Session.RedisDB != 2 {
		t.Errorf("session.redis_db = %d, want 2", cfg.Session.RedisDB)
	}
	if cfg.Session.Key != "test:actor" {
		t.Errorf("session.key = %q", cfg.Session.Key)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("session.ttl = %v, want 24h", cfg.Session.TTL)
	}

	// Identity / Ledger
	if cfg.Identity.Latency != 800*time.Millisecond {
		t.Errorf("identity.latency = %v, want 800ms", cfg.Identity.Latency)
	}
	if cfg.Ledger.SubmitLatency != time.Second {
		t.Errorf("ledger.submit_latency = %v, want 1s", cfg.Ledger.SubmitLatency)
	}
	if !cfg.Ledger.StrictTransitions {
		t.Error("ledger.strict_transitions = false, want true")
	}
	if !cfg.Ledger.DisableSeed {
		t.Error("ledger.disable_seed = false, want true")
	}

	// Log
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}

	// CORS keeps defaults for fields absent from the file.
	if cfg.CORS.AllowedOrigins != "http://localhost:5173" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}
	if cfg.CORS.MaxAge != 86400 {
		t.Errorf("cors.max_age = %d, want 86400", cfg.CORS.MaxAge)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("LEDGER_SUBMIT_LATENCY", "250ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("server.port = %d, want 7000", cfg.Server.Port)
	}
	if cfg.Ledger.SubmitLatency != 250*time.Millisecond {
		t.Errorf("ledger.submit_latency = %v, want 250ms", cfg.Ledger.SubmitLatency)
	}
}

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	// The package directory has no config.yaml, so only ENV + defaults apply.
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("server.shutdown_timeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Errorf("session.backend = %q, want memory", cfg.Session.Backend)
	}
	if cfg.Session.Key != "crimewatch:session:actor" {
		t.Errorf("session.key = %q", cfg.Session.Key)
	}
	if cfg.Ledger.SubmitLatency != 0 || cfg.Identity.Latency != 0 {
		t.Errorf("latencies should default to zero: %v / %v", cfg.Ledger.SubmitLatency, cfg.Identity.Latency)
	}
	if cfg.Ledger.StrictTransitions || cfg.Ledger.DisableSeed {
		t.Errorf("ledger flags should default to false: %+v", cfg.Ledger)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want json", cfg.Log.Format)
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SESSION_BACKEND", "etcd")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for unknown session backend")
	}
	if !strings.Contains(err.Error(), "session") {
		t.Errorf("error should mention session: %v", err)
	}
}

func TestValidate_BackendNormalized(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Session.Backend = "  REDIS "

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Session.Backend != SessionBackendRedis {
		t.Errorf("backend = %q, want %q", cfg.Session.Backend, SessionBackendRedis)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"redis without addr", func(c *Config) { c.Session.Backend = "redis"; c.Session.RedisAddr = "" }},
		{"empty key", func(c *Config) { c.Session.Key = " " }},
		{"negative ttl", func(c *Config) { c.Session.TTL = -time.Second }},
		{"negative identity latency", func(c *Config) { c.Identity.Latency = -time.Millisecond }},
		{"negative submit latency", func(c *Config) { c.Ledger.SubmitLatency = -time.Millisecond }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"seed file with seeding disabled", func(c *Config) { c.Ledger.DisableSeed = true; c.Ledger.SeedFile = "seed.yaml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_SeedFileFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("LEDGER_SEED_FILE", "  /data/seed.yaml ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ledger.SeedFile != "/data/seed.yaml" {
		t.Errorf("ledger.seed_file = %q, want trimmed path", cfg.Ledger.SeedFile)
	}
}
