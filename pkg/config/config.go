// Package config loads and validates runtime configuration. Values come from
// an optional strand.yaml, overlaid on built-in defaults, with environment
// variables taking final precedence for deployment-specific settings.
package config

import "time"

// Config is the umbrella configuration object returned by Load and used
// throughout the runtime.
type Config struct {
	// Database connection settings.
	Database *DatabaseConfig `yaml:"database"`

	// Work pool and worker configuration.
	Pool *PoolConfig `yaml:"pool"`

	// Retry/backoff policy shared by the pool and the DCB retry helper.
	Retry *RetryConfig `yaml:"retry"`

	// Durable executor (intent bracketing) settings.
	Durable *DurableConfig `yaml:"durable"`

	// Agent gateway settings.
	Agent *AgentConfig `yaml:"agent"`

	// Operational HTTP API settings.
	API *APIConfig `yaml:"api"`
}

// DatabaseConfig contains PostgreSQL connection settings.
type DatabaseConfig struct {
	// URL is the full connection string. Taken from DATABASE_URL when set.
	URL string `yaml:"url"`

	// MaxOpenConns caps the pgx stdlib pool.
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns caps idle connections.
	MaxIdleConns int `yaml:"max_idle_conns"`

	// ConnMaxLifetime bounds connection reuse.
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// PoolConfig contains work pool configuration. These values control how work
// items are polled, claimed, and processed.
type PoolConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentItems is the global limit of items being processed across
	// ALL replicas/pods. Enforced by a database COUNT(*) check.
	MaxConcurrentItems int `yaml:"max_concurrent_items"`

	// PollInterval is the base interval for checking pending items.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ItemTimeout is the maximum time one work item may be processed.
	ItemTimeout time.Duration `yaml:"item_timeout"`

	// GracefulShutdownTimeout is the max time to wait for in-flight items
	// during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes last_heartbeat on the
	// item it is processing.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned items.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long an item can go without a heartbeat before
	// it is considered orphaned and requeued.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// DefaultMaxAttempts applies to items enqueued without an explicit limit.
	DefaultMaxAttempts int `yaml:"default_max_attempts"`
}

// RetryConfig is the backoff policy: delay = min(initial·base^attempt, max),
// scaled by a jitter multiplier.
type RetryConfig struct {
	MaxAttempts      int     `yaml:"max_attempts"`
	InitialBackoffMs int     `yaml:"initial_backoff_ms"`
	Base             float64 `yaml:"base"`
	MaxBackoffMs     int     `yaml:"max_backoff_ms"`
}

// DurableConfig contains intent bracketing settings.
type DurableConfig struct {
	// IntentTimeout is the default window before a pending intent is
	// considered abandoned.
	IntentTimeout time.Duration `yaml:"intent_timeout"`

	// SweepInterval is how often the abandoned-intent sweeper runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// AgentConfig contains agent gateway (gRPC) settings.
type AgentConfig struct {
	// Endpoint is the gRPC target, host:port. Empty disables the gateway.
	Endpoint string `yaml:"endpoint"`

	// RequestTimeout bounds a single agent invocation.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// RateLimit throttles outbound agent calls.
	RateLimit *RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig throttles a client.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

// APIConfig contains operational HTTP API settings.
type APIConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
}
