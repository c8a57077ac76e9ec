package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.AuthRequestsPerMinute <= 0 {
		return fmt.Errorf("ratelimit.auth_requests_per_minute must be > 0 (got %d)", c.RateLimit.AuthRequestsPerMinute)
	}

	if c.Upload.Dir == "" {
		return fmt.Errorf("upload.dir must not be empty")
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload.max_bytes must be > 0 (got %d)", c.Upload.MaxBytes)
	}

	if c.Weather.WeatherEnabled() && c.Weather.Timeout <= 0 {
		return fmt.Errorf("weather.timeout must be > 0 (got %v)", c.Weather.Timeout)
	}

	if err := c.Leaderboard.validate(); err != nil {
		return fmt.Errorf("leaderboard: %w", err)
	}

	return nil
}

func (l *LeaderboardConfig) validate() error {
	if l.MaxLimit <= 0 {
		return fmt.Errorf("max_limit must be > 0 (got %d)", l.MaxLimit)
	}
	if l.DefaultLimit <= 0 || l.DefaultLimit > l.MaxLimit {
		return fmt.Errorf("default_limit must be in [1, %d] (got %d)", l.MaxLimit, l.DefaultLimit)
	}
	return nil
}
