package workpool

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/strandkit/strand/pkg/config"
)

// Jitter produces a multiplier applied to a computed backoff delay.
type Jitter func() float64

// UniformJitter is the default jitter: a uniform multiplier in [0.5, 1.5].
func UniformJitter() float64 {
	return 0.5 + rand.Float64()
}

// Backoff computes the retry delay for the given attempt (0-based):
// min(initial·base^attempt, max), scaled by the jitter multiplier.
func Backoff(attempt int, cfg *config.RetryConfig, jitter Jitter) time.Duration {
	if jitter == nil {
		jitter = UniformJitter
	}
	delay := float64(cfg.InitialBackoffMs) * math.Pow(cfg.Base, float64(attempt))
	if max := float64(cfg.MaxBackoffMs); delay > max {
		delay = max
	}
	return time.Duration(delay*jitter()) * time.Millisecond
}
