package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads configuration: .env (if present), then strand.yaml from
// configDir (if present), merged over built-in defaults, then environment
// overrides. The returned Config is fully validated.
func Load(configDir string) (*Config, error) {
	// .env is a development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg := &Config{
		Database: DefaultDatabaseConfig(),
		Pool:     DefaultPoolConfig(),
		Retry:    DefaultRetryConfig(),
		Durable:  DefaultDurableConfig(),
		Agent:    DefaultAgentConfig(),
		API:      DefaultAPIConfig(),
	}

	path := filepath.Join(configDir, "strand.yaml")
	if data, err := os.ReadFile(path); err == nil {
		fileCfg := &Config{}
		if err := yaml.Unmarshal(data, fileCfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		// mergo skips zero-valued source fields, so an explicit zero in the
		// file would silently revert to the default. The rate-limit block is
		// a pointer, so its presence is detectable before the merge.
		if fileCfg.Agent != nil && fileCfg.Agent.RateLimit != nil {
			if err := validateRateLimit(fileCfg.Agent.RateLimit); err != nil {
				return nil, fmt.Errorf("configuration validation failed: %w", err)
			}
		}
		// File values override defaults.
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merge %s: %w", path, err)
		}
		slog.Info("Loaded configuration file", "path", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies deployment-specific environment variables.
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if endpoint := os.Getenv("AGENT_ENDPOINT"); endpoint != "" {
		cfg.Agent.Endpoint = endpoint
	}
	if addr := os.Getenv("API_ADDR"); addr != "" {
		cfg.API.Addr = addr
	}
}

func validate(cfg *Config) error {
	if cfg.Pool.WorkerCount < 1 {
		return fmt.Errorf("pool.worker_count must be >= 1, got %d", cfg.Pool.WorkerCount)
	}
	if cfg.Pool.MaxConcurrentItems < cfg.Pool.WorkerCount {
		return fmt.Errorf("pool.max_concurrent_items (%d) must be >= pool.worker_count (%d)",
			cfg.Pool.MaxConcurrentItems, cfg.Pool.WorkerCount)
	}
	if cfg.Pool.DefaultMaxAttempts < 1 {
		return fmt.Errorf("pool.default_max_attempts must be >= 1, got %d", cfg.Pool.DefaultMaxAttempts)
	}
	if cfg.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry.max_attempts must be >= 1, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Retry.InitialBackoffMs <= 0 {
		return fmt.Errorf("retry.initial_backoff_ms must be > 0, got %d", cfg.Retry.InitialBackoffMs)
	}
	if cfg.Retry.Base <= 1 {
		return fmt.Errorf("retry.base must be > 1, got %v", cfg.Retry.Base)
	}
	if cfg.Retry.MaxBackoffMs < cfg.Retry.InitialBackoffMs {
		return fmt.Errorf("retry.max_backoff_ms (%d) must be >= retry.initial_backoff_ms (%d)",
			cfg.Retry.MaxBackoffMs, cfg.Retry.InitialBackoffMs)
	}
	if cfg.Durable.IntentTimeout <= 0 {
		return fmt.Errorf("durable.intent_timeout must be > 0, got %v", cfg.Durable.IntentTimeout)
	}
	if rl := cfg.Agent.RateLimit; rl != nil {
		if err := validateRateLimit(rl); err != nil {
			return err
		}
	}
	return nil
}

func validateRateLimit(rl *RateLimitConfig) error {
	if rl.RequestsPerMinute < 1 || rl.Burst < 1 {
		return fmt.Errorf("INVALID_RATE_LIMIT_CONFIG: requests_per_minute and burst must be >= 1, got %d/%d",
			rl.RequestsPerMinute, rl.Burst)
	}
	return nil
}
