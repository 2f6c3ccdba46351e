package workpool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/strandkit/strand/pkg/config"
)

func TestBackoffExponential(t *testing.T) {
	cfg := &config.RetryConfig{InitialBackoffMs: 100, Base: 2, MaxBackoffMs: 30000}
	unit := func() float64 { return 1.0 }

	assert.Equal(t, 100*time.Millisecond, Backoff(0, cfg, unit))
	assert.Equal(t, 200*time.Millisecond, Backoff(1, cfg, unit))
	assert.Equal(t, 400*time.Millisecond, Backoff(2, cfg, unit))
	assert.Equal(t, 800*time.Millisecond, Backoff(3, cfg, unit))
}

func TestBackoffCapped(t *testing.T) {
	cfg := &config.RetryConfig{InitialBackoffMs: 100, Base: 2, MaxBackoffMs: 30000}
	unit := func() float64 { return 1.0 }

	// 100·2^10 = 102400ms, capped at 30000ms.
	assert.Equal(t, 30*time.Second, Backoff(10, cfg, unit))
}

func TestBackoffJitterScalesAfterCap(t *testing.T) {
	cfg := &config.RetryConfig{InitialBackoffMs: 100, Base: 2, MaxBackoffMs: 30000}

	assert.Equal(t, 1200*time.Millisecond, Backoff(3, cfg, func() float64 { return 1.5 }))
	assert.Equal(t, 400*time.Millisecond, Backoff(3, cfg, func() float64 { return 0.5 }))
}

func TestBackoffDefaultJitterRange(t *testing.T) {
	cfg := &config.RetryConfig{InitialBackoffMs: 100, Base: 2, MaxBackoffMs: 30000}

	for i := 0; i < 100; i++ {
		d := Backoff(3, cfg, nil)
		assert.GreaterOrEqual(t, d, 400*time.Millisecond)
		assert.LessOrEqual(t, d, 1200*time.Millisecond)
	}
}

func TestDeliveryFromMapRoundTrip(t *testing.T) {
	d := DeliveryFromMap(map[string]any{
		"subscription":   "orderProjection",
		"kind":           "mutation",
		"eventId":        "e1",
		"globalPosition": float64(42), // JSON numbers decode as float64
		"partitionKey":   "o1",
		"correlationId":  "corr-1",
		"causationId":    "cmd-1",
	})

	assert.Equal(t, "orderProjection", d.Subscription)
	assert.Equal(t, int64(42), d.GlobalPosition)
	assert.Equal(t, "cmd-1", d.CausationID)

	// Nil map yields a zero delivery.
	assert.Equal(t, Delivery{}, DeliveryFromMap(nil))
}
