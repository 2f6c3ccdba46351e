package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/database"
	"github.com/strandkit/strand/test/util"
)

func TestClientConnectionPool(t *testing.T) {
	entClient, db := util.SetupTestDatabase(t)
	client := database.NewClientFromEnt(entClient, db)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
}

func TestMigrationsCreateEventStoreTables(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	for _, table := range []string{
		"events", "stream_states", "scopes", "pm_states",
		"intents", "dead_letters", "work_items",
	} {
		var count int
		err := db.QueryRowContext(ctx, "SELECT count(*) FROM "+table).Scan(&count)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, 0, count, "table %s should start empty", table)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	// SetupTestDatabase already applied the migrations once; a second run
	// must be a no-op, not an error.
	_, db := util.SetupTestDatabase(t)

	err := database.RunMigrations(db)
	require.NoError(t, err)
}

func TestEventsGlobalPositionIsMonotonic(t *testing.T) {
	_, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	insert := func(eventID, causationID string, version int) int64 {
		var id int64
		err := db.QueryRowContext(ctx, `
			INSERT INTO events (event_id, event_type, stream_type, stream_id, stream_version, payload, correlation_id, causation_id)
			VALUES ($1, 'OrderSubmitted', 'order', 'o-1', $2, '{}', 'corr-1', $3)
			RETURNING id`, eventID, version, causationID).Scan(&id)
		require.NoError(t, err)
		return id
	}

	first := insert("ev-1", "cmd-1", 1)
	second := insert("ev-2", "cmd-2", 2)
	assert.Greater(t, second, first)

	// The causation_id unique index enforces command idempotency.
	_, err := db.ExecContext(ctx, `
		INSERT INTO events (event_id, event_type, stream_type, stream_id, stream_version, payload, correlation_id, causation_id)
		VALUES ('ev-3', 'OrderSubmitted', 'order', 'o-1', 3, '{}', 'corr-1', 'cmd-1')`)
	require.Error(t, err)
}
