package config

import "time"

// DefaultPoolConfig returns the built-in work pool defaults.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		WorkerCount:             5,
		MaxConcurrentItems:      20,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ItemTimeout:             5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		DefaultMaxAttempts:      5,
	}
}

// DefaultRetryConfig returns the built-in backoff policy.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:      5,
		InitialBackoffMs: 100,
		Base:             2,
		MaxBackoffMs:     30000,
	}
}

// DefaultDurableConfig returns the built-in intent bracketing defaults.
func DefaultDurableConfig() *DurableConfig {
	return &DurableConfig{
		IntentTimeout: 5 * time.Minute,
		SweepInterval: 1 * time.Minute,
	}
}

// DefaultDatabaseConfig returns the built-in database defaults. The URL has
// no default; it must come from configuration or DATABASE_URL.
func DefaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	}
}

// DefaultAgentConfig returns the built-in agent gateway defaults.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		RequestTimeout: 60 * time.Second,
		RateLimit: &RateLimitConfig{
			RequestsPerMinute: 60,
			Burst:             10,
		},
	}
}

// DefaultAPIConfig returns the built-in HTTP API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Addr: ":8080",
	}
}
