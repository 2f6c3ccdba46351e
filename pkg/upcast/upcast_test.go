package upcast

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/eventstore"
)

func storedEvent(schemaVersion int, payload map[string]any) *eventstore.Event {
	return &eventstore.Event{
		EventID:       "e1",
		EventType:     "OrderCreated",
		StreamType:    "order",
		StreamID:      "o4",
		StreamVersion: 1,
		Timestamp:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		SchemaVersion: schemaVersion,
		Payload:       payload,
	}
}

func orderCreatedUpcaster(t *testing.T) *Upcaster {
	t.Helper()
	u, err := New("OrderCreated", 3, map[int]Migration{
		1: AddFieldFn("createdAt", func(e *eventstore.Event) any { return e.Timestamp }),
		2: AddField("priority", "medium"),
	})
	require.NoError(t, err)
	return u
}

func TestUpcastV1ToV3(t *testing.T) {
	u := orderCreatedUpcaster(t)

	stored := storedEvent(1, map[string]any{"orderId": "o4", "customerId": "c4"})
	result, err := u.Upcast(stored)
	require.NoError(t, err)

	assert.True(t, result.WasUpcasted)
	assert.Equal(t, 3, result.Event.SchemaVersion)
	assert.Equal(t, "o4", result.Event.Payload["orderId"])
	assert.Equal(t, "c4", result.Event.Payload["customerId"])
	assert.Equal(t, stored.Timestamp, result.Event.Payload["createdAt"])
	assert.Equal(t, "medium", result.Event.Payload["priority"])

	// Stored event is never mutated
	assert.Equal(t, 1, stored.SchemaVersion)
	assert.NotContains(t, stored.Payload, "priority")
}

func TestUpcastCurrentVersionUnchanged(t *testing.T) {
	u := orderCreatedUpcaster(t)

	stored := storedEvent(3, map[string]any{"orderId": "o4"})
	result, err := u.Upcast(stored)
	require.NoError(t, err)

	assert.False(t, result.WasUpcasted)
	assert.Same(t, stored, result.Event)
}

func TestUpcastFutureVersion(t *testing.T) {
	u := orderCreatedUpcaster(t)

	_, err := u.Upcast(storedEvent(4, map[string]any{}))
	require.Error(t, err)

	var ucErr *Error
	require.True(t, errors.As(err, &ucErr))
	assert.Equal(t, CodeFutureVersion, ucErr.Code)
}

func TestMissingMigrationFailsAtConstruction(t *testing.T) {
	_, err := New("OrderCreated", 3, map[int]Migration{
		2: AddField("priority", "medium"),
		// 1 -> 2 missing
	})
	require.Error(t, err)

	var ucErr *Error
	require.True(t, errors.As(err, &ucErr))
	assert.Equal(t, CodeMissingMigration, ucErr.Code)
}

func TestValidatorRejectsMigratedEvent(t *testing.T) {
	u, err := New("OrderCreated", 2, map[int]Migration{
		1: AddField("priority", "medium"),
	}, WithValidator(func(e *eventstore.Event) error {
		if _, ok := e.Payload["orderId"]; !ok {
			return fmt.Errorf("orderId is required")
		}
		return nil
	}))
	require.NoError(t, err)

	_, err = u.Upcast(storedEvent(1, map[string]any{"customerId": "c4"}))
	require.Error(t, err)

	var ucErr *Error
	require.True(t, errors.As(err, &ucErr))
	assert.Equal(t, CodeInvalidEvent, ucErr.Code)
}

func TestRenameField(t *testing.T) {
	u, err := New("OrderCreated", 2, map[int]Migration{
		1: RenameField("custId", "customerId"),
	})
	require.NoError(t, err)

	result, err := u.Upcast(storedEvent(1, map[string]any{"custId": "c4"}))
	require.NoError(t, err)
	assert.Equal(t, "c4", result.Event.Payload["customerId"])
	assert.NotContains(t, result.Event.Payload, "custId")

	// Missing source field is an error
	_, err = u.Upcast(storedEvent(1, map[string]any{}))
	assert.Error(t, err)
}

// Upcasting is idempotent for shape-preserving helpers: upcasting an already
// upcast event changes nothing further.
func TestUpcastIdempotent(t *testing.T) {
	u := orderCreatedUpcaster(t)

	first, err := u.Upcast(storedEvent(1, map[string]any{"orderId": "o4", "customerId": "c4"}))
	require.NoError(t, err)

	second, err := u.Upcast(first.Event)
	require.NoError(t, err)
	assert.False(t, second.WasUpcasted)
	assert.Equal(t, first.Event.Payload, second.Event.Payload)
}

func TestRegistryRoutesByEventType(t *testing.T) {
	u := orderCreatedUpcaster(t)
	reg, err := NewRegistry(u)
	require.NoError(t, err)

	result, err := reg.Upcast(storedEvent(1, map[string]any{"orderId": "o4"}))
	require.NoError(t, err)
	assert.True(t, result.WasUpcasted)
	assert.Equal(t, 3, result.Event.SchemaVersion)

	// Unknown event types pass through unmodified
	unknown := &eventstore.Event{EventType: "SomethingElse", SchemaVersion: 1, Payload: map[string]any{}}
	result, err = reg.Upcast(unknown)
	require.NoError(t, err)
	assert.False(t, result.WasUpcasted)
	assert.Same(t, unknown, result.Event)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	u1 := orderCreatedUpcaster(t)
	u2 := orderCreatedUpcaster(t)

	_, err := NewRegistry(u1, u2)
	assert.Error(t, err)
}
