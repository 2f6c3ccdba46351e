package decider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessDecision(t *testing.T) {
	event := &EventDraft{
		EventType:     "OrderSubmitted",
		Category:      "domain",
		SchemaVersion: 1,
		Payload:       map[string]any{"orderId": "o1"},
	}
	d := Success(event, map[string]any{"orderId": "o1"}, map[string]any{"status": "submitted"})

	assert.True(t, d.IsSuccess())
	assert.False(t, d.IsFailed())
	assert.False(t, d.IsRejected())
	assert.False(t, d.IsConflict())
	require.NotNil(t, d.Event)
	assert.Equal(t, "OrderSubmitted", d.Event.EventType)
	assert.Equal(t, "submitted", d.StateUpdate["status"])
}

func TestFailedDecisionCarriesEvent(t *testing.T) {
	event := &EventDraft{
		EventType: "ReservationFailed",
		Category:  "domain",
		Payload: map[string]any{
			"orderId": "o2",
			"failedItems": []map[string]any{
				{"productId": "p1", "requested": 10, "available": 5},
			},
		},
	}
	d := Failed(event, "INSUFFICIENT_STOCK", map[string]any{"orderId": "o2"})

	assert.True(t, d.IsFailed())
	assert.Equal(t, "INSUFFICIENT_STOCK", d.Reason)
	require.NotNil(t, d.Event)
	assert.Equal(t, "ReservationFailed", d.Event.EventType)
}

func TestRejectedDecision(t *testing.T) {
	d := Rejected(CodeProductNotFound, "product p9 does not exist", map[string]any{"productId": "p9"})

	assert.True(t, d.IsRejected())
	assert.Equal(t, CodeProductNotFound, d.Code)
	assert.Nil(t, d.Event)
}

func TestConflictDecision(t *testing.T) {
	d := Conflict(7)

	assert.True(t, d.IsConflict())
	assert.Equal(t, 7, d.CurrentVersion)
}

// A decider must be deterministic: same inputs, same decision.
func TestDeciderDeterminism(t *testing.T) {
	decide := Func(func(state map[string]any, cmd Command, ctx Context) Decision {
		if state == nil {
			return Rejected(CodeProductNotFound, "missing", nil)
		}
		return Success(&EventDraft{
			EventType: "StockReserved",
			Payload:   map[string]any{"at": ctx.Now.Format(time.RFC3339)},
		}, nil, map[string]any{"reserved": true})
	})

	cmd := Command{CommandID: "c1", CommandType: "ReserveStock"}
	ctx := Context{Now: time.Unix(1700000000, 0).UTC(), CommandID: "c1", CorrelationID: "c1"}
	state := map[string]any{"available": 5}

	first := decide(state, cmd, ctx)
	second := decide(state, cmd, ctx)
	assert.Equal(t, first, second)

	assert.True(t, decide(nil, cmd, ctx).IsRejected())
}
