package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if c.Identity.Latency < 0 {
		return fmt.Errorf("identity.latency must be >= 0 (got %v)", c.Identity.Latency)
	}
	if c.Ledger.SubmitLatency < 0 {
		return fmt.Errorf("ledger.submit_latency must be >= 0 (got %v)", c.Ledger.SubmitLatency)
	}
	c.Ledger.SeedFile = strings.TrimSpace(c.Ledger.SeedFile)
	if c.Ledger.DisableSeed && c.Ledger.SeedFile != "" {
		return fmt.Errorf("ledger.seed_file is set but ledger.disable_seed is true")
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (s *SessionConfig) validate() error {
	s.Backend = strings.ToLower(strings.TrimSpace(s.Backend))

	switch s.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis backend")
		}
	default:
		return fmt.Errorf("backend must be memory or redis (got %q)", s.Backend)
	}

	if strings.TrimSpace(s.Key) == "" {
		return fmt.Errorf("key must not be empty")
	}
	if s.TTL < 0 {
		return fmt.Errorf("ttl must be >= 0 (got %v)", s.TTL)
	}
	return nil
}
