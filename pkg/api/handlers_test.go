package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/durable"
	"github.com/strandkit/strand/pkg/eventstore"
	testdb "github.com/strandkit/strand/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, eventstore.Store, durable.IntentStore) {
	client := testdb.NewTestClient(t)
	intents := durable.NewEntIntentStore(client.Client)
	srv := NewServer(client, nil, intents)
	return srv, eventstore.NewPGStore(client.Client), intents
}

func doGET(t *testing.T, srv *Server, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Router().ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w, body := doGET(t, srv, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))

	checks := body["checks"].(map[string]any)
	db := checks["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
	// No pool attached; the work_pool check must be absent.
	_, ok := checks["work_pool"]
	assert.False(t, ok)
}

func TestListDeadLetters(t *testing.T) {
	srv, store, _ := newTestServer(t)
	ctx := context.Background()

	for _, sub := range []string{"pm.fulfillment", "pm.fulfillment", "integration.orders"} {
		require.NoError(t, store.RecordDeadLetter(ctx, eventstore.DeadLetterInput{
			Subscription: sub,
			Event:        map[string]any{"eventType": "OrderPlaced"},
			ErrorMessage: "handler exploded",
			Attempts:     5,
		}))
	}

	w, body := doGET(t, srv, "/api/v1/dead-letters")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), body["count"])

	w, body = doGET(t, srv, "/api/v1/dead-letters?subscription=pm.fulfillment")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"])
	rows := body["dead_letters"].([]any)
	first := rows[0].(map[string]any)
	assert.Equal(t, "pm.fulfillment", first["subscription"])
	assert.Equal(t, "handler exploded", first["error_message"])

	w, _ = doGET(t, srv, "/api/v1/dead-letters?limit=zero")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIntents(t *testing.T) {
	srv, _, intents := newTestServer(t)
	ctx := context.Background()

	for i, key := range []string{"createNote:note:n-1:1_aa", "createNote:note:n-2:2_bb"} {
		require.NoError(t, intents.Create(ctx, &durable.Intent{
			IntentKey:     key,
			OperationType: "createNote",
			StreamType:    "note",
			StreamID:      "n-" + string(rune('1'+i)),
			TimeoutMs:     300000,
			ExpiresAt:     time.Now().Add(5 * time.Minute),
		}))
	}
	require.NoError(t, intents.Complete(ctx, "createNote:note:n-1:1_aa", "ev-1"))

	w, body := doGET(t, srv, "/api/v1/intents?status=pending")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])
	rows := body["intents"].([]any)
	row := rows[0].(map[string]any)
	assert.Equal(t, "createNote:note:n-2:2_bb", row["intent_key"])
	assert.Equal(t, "pending", row["status"])

	w, body = doGET(t, srv, "/api/v1/intents")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"])

	w, _ = doGET(t, srv, "/api/v1/intents?status=bogus")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReadStreamEndpoint(t *testing.T) {
	srv, store, _ := newTestServer(t)
	ctx := context.Background()

	_, err := store.Append(ctx, "order", "o-1", 0, []eventstore.AppendEvent{
		{EventType: "OrderPlaced", Payload: map[string]any{"total": 40}, Metadata: eventstore.Metadata{CorrelationID: "corr-1", CausationID: "cmd-1"}},
		{EventType: "OrderPaid", Payload: map[string]any{}, Metadata: eventstore.Metadata{CorrelationID: "corr-1", CausationID: "cmd-2"}},
	})
	require.NoError(t, err)

	w, body := doGET(t, srv, "/api/v1/streams/order/o-1/events")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["count"])
	events := body["events"].([]any)
	first := events[0].(map[string]any)
	assert.Equal(t, "OrderPlaced", first["eventType"])
	assert.Equal(t, float64(1), first["streamVersion"])

	// from skips already-seen versions.
	w, body = doGET(t, srv, "/api/v1/streams/order/o-1/events?from=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["count"])

	// Unknown streams 404 rather than returning an empty list.
	w, _ = doGET(t, srv, "/api/v1/streams/order/nope/events")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
