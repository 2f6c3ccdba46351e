package workpool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/deadletter"
	"github.com/strandkit/strand/ent/workitem"
	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/test/util"
)

func testPoolConfig() *config.PoolConfig {
	return &config.PoolConfig{
		WorkerCount:             2,
		MaxConcurrentItems:      8,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		ItemTimeout:             5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		HeartbeatInterval:       50 * time.Millisecond,
		OrphanDetectionInterval: time.Hour, // tests invoke the scan directly
		OrphanThreshold:         100 * time.Millisecond,
		DefaultMaxAttempts:      5,
	}
}

func testRetryConfig() *config.RetryConfig {
	return &config.RetryConfig{
		MaxAttempts:      5,
		InitialBackoffMs: 1,
		Base:             2,
		MaxBackoffMs:     10,
	}
}

// startTestPool spins up a pool over a fresh schema and stops it on cleanup.
func startTestPool(t *testing.T, reg *Registry) (*Pool, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	pool := New("test-pod", client, testPoolConfig(), testRetryConfig(), reg)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)
	return pool, client
}

func waitForStatus(t *testing.T, client *ent.Client, id int64, want workitem.Status) *ent.WorkItem {
	t.Helper()
	var row *ent.WorkItem
	require.Eventually(t, func() bool {
		var err error
		row, err = client.WorkItem.Get(context.Background(), int(id))
		return err == nil && row.Status == want
	}, 10*time.Second, 20*time.Millisecond, "work item %d never reached %s", id, want)
	return row
}

func TestPoolProcessesMutation(t *testing.T) {
	var (
		mu       sync.Mutex
		gotArgs  map[string]any
		gotDeliv Delivery
	)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("note.create", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		mu.Lock()
		defer mu.Unlock()
		gotArgs = args
		gotDeliv = d
		return map[string]any{"ok": true}, nil
	}))

	pool, client := startTestPool(t, reg)

	id, err := pool.Enqueue(context.Background(), eventstore.WorkInput{
		Ref:  "note.create",
		Args: map[string]any{"title": "hello"},
		Delivery: map[string]any{
			"subscription":  "projection.notes",
			"correlationId": "corr-1",
		},
	})
	require.NoError(t, err)

	waitForStatus(t, client, id, workitem.StatusCompleted)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "hello", gotArgs["title"])
	assert.Equal(t, "projection.notes", gotDeliv.Subscription)
	assert.Equal(t, "corr-1", gotDeliv.CorrelationID)
	assert.Equal(t, id, gotDeliv.WorkID)
	assert.Equal(t, 1, gotDeliv.Attempt)
}

func TestPartitionKeyPreservesOrder(t *testing.T) {
	var (
		mu    sync.Mutex
		order []int
	)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("order.step", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		// Long enough that a second worker would overtake if the partition
		// gate did not hold it back.
		time.Sleep(30 * time.Millisecond)
		mu.Lock()
		order = append(order, int(args["seq"].(float64)))
		mu.Unlock()
		return nil, nil
	}))

	pool, client := startTestPool(t, reg)
	ctx := context.Background()

	var last int64
	for seq := 1; seq <= 4; seq++ {
		id, err := pool.Enqueue(ctx, eventstore.WorkInput{
			Ref:          "order.step",
			Args:         map[string]any{"seq": seq},
			PartitionKey: "order:o-1",
		})
		require.NoError(t, err)
		last = id
	}

	waitForStatus(t, client, last, workitem.StatusCompleted)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestPriorityOrdersClaims(t *testing.T) {
	var (
		mu    sync.Mutex
		order []string
	)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("prio.record", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		mu.Lock()
		order = append(order, args["name"].(string))
		mu.Unlock()
		return nil, nil
	}))

	client, _ := util.SetupTestDatabase(t)
	store := eventstore.NewPGStore(client)
	ctx := context.Background()

	// Enqueue before any worker runs so both are claimable at once.
	_, err := store.EnqueueWork(ctx, eventstore.WorkInput{
		Ref: "prio.record", Args: map[string]any{"name": "later"}, Priority: 300,
	})
	require.NoError(t, err)
	_, err = store.EnqueueWork(ctx, eventstore.WorkInput{
		Ref: "prio.record", Args: map[string]any{"name": "urgent"}, Priority: 10,
	})
	require.NoError(t, err)

	cfg := testPoolConfig()
	cfg.WorkerCount = 1
	pool := New("test-pod", client, cfg, testRetryConfig(), reg)
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(order) == 2
	}, 10*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"urgent", "later"}, order)
}

func TestRetryExhaustionDeadLetters(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("always.fails", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, errors.New("downstream unavailable")
	}))

	pool, client := startTestPool(t, reg)
	ctx := context.Background()

	id, err := pool.Enqueue(ctx, eventstore.WorkInput{
		Ref:         "always.fails",
		Args:        map[string]any{"k": "v"},
		Delivery:    map[string]any{"subscription": "pm.fulfillment"},
		MaxAttempts: 2,
	})
	require.NoError(t, err)

	row := waitForStatus(t, client, id, workitem.StatusDead)
	assert.Equal(t, 2, row.Attempts)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "downstream unavailable")

	dl, err := client.DeadLetter.Query().
		Where(deadletter.SubscriptionEQ("pm.fulfillment")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dl.Attempts)
	assert.Equal(t, "v", dl.Event["k"])
}

type permanentTestError struct{ msg string }

func (e *permanentTestError) Error() string   { return e.msg }
func (e *permanentTestError) Permanent() bool { return true }

func TestPermanentErrorSkipsRetries(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("rejects.hard", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, &permanentTestError{msg: "schema mismatch"}
	}))

	pool, client := startTestPool(t, reg)

	id, err := pool.Enqueue(context.Background(), eventstore.WorkInput{
		Ref:  "rejects.hard",
		Args: map[string]any{},
	})
	require.NoError(t, err)

	row := waitForStatus(t, client, id, workitem.StatusDead)
	// Dead after the first attempt: retrying cannot fix a permanent error.
	assert.Equal(t, 1, row.Attempts)
}

func TestUnresolvableRefDeadLetters(t *testing.T) {
	pool, client := startTestPool(t, NewRegistry())

	id, err := pool.Enqueue(context.Background(), eventstore.WorkInput{
		Ref:  "never.registered",
		Args: map[string]any{},
	})
	require.NoError(t, err)

	row := waitForStatus(t, client, id, workitem.StatusDead)
	assert.Equal(t, 1, row.Attempts)
	require.NotNil(t, row.ErrorMessage)
	assert.Contains(t, *row.ErrorMessage, "never.registered")
}

func TestActionOutcomeFlowsToCompletion(t *testing.T) {
	var (
		mu         sync.Mutex
		gotOutcome *Outcome
	)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAction("agent.summarize", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return map[string]any{"summary": "all good"}, nil
	}))
	require.NoError(t, reg.RegisterCompletion("agent.summarize.done", func(ctx context.Context, outcome Outcome, d Delivery) error {
		mu.Lock()
		defer mu.Unlock()
		gotOutcome = &outcome
		return nil
	}))

	pool, client := startTestPool(t, reg)

	id, err := pool.Enqueue(context.Background(), eventstore.WorkInput{
		Ref:        "agent.summarize",
		Args:       map[string]any{"text": "..."},
		OnComplete: "agent.summarize.done",
	})
	require.NoError(t, err)

	waitForStatus(t, client, id, workitem.StatusCompleted)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, gotOutcome)
	assert.True(t, gotOutcome.Success)
	assert.Equal(t, "all good", gotOutcome.Result["summary"])
	assert.Equal(t, 1, gotOutcome.Attempts)
}

func TestFailedActionHandsFailureToCompletion(t *testing.T) {
	var (
		mu         sync.Mutex
		gotOutcome *Outcome
	)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterAction("agent.flaky", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, &permanentTestError{msg: "auth failed"}
	}))
	require.NoError(t, reg.RegisterCompletion("agent.flaky.done", func(ctx context.Context, outcome Outcome, d Delivery) error {
		mu.Lock()
		defer mu.Unlock()
		gotOutcome = &outcome
		return nil
	}))

	pool, client := startTestPool(t, reg)

	id, err := pool.Enqueue(context.Background(), eventstore.WorkInput{
		Ref:        "agent.flaky",
		Args:       map[string]any{},
		OnComplete: "agent.flaky.done",
	})
	require.NoError(t, err)

	waitForStatus(t, client, id, workitem.StatusDead)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, gotOutcome)
	assert.False(t, gotOutcome.Success)
	assert.Contains(t, gotOutcome.Error, "auth failed")
}

func TestScheduledItemWaitsForRunAfter(t *testing.T) {
	done := make(chan time.Time, 1)
	reg := NewRegistry()
	require.NoError(t, reg.RegisterMutation("later.run", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		done <- time.Now()
		return nil, nil
	}))

	pool, client := startTestPool(t, reg)

	runAfter := time.Now().Add(400 * time.Millisecond)
	id, err := pool.Schedule(context.Background(), "later.run", map[string]any{}, 400*time.Millisecond)
	require.NoError(t, err)

	waitForStatus(t, client, id, workitem.StatusCompleted)
	ranAt := <-done
	assert.False(t, ranAt.Before(runAfter.Add(-50*time.Millisecond)),
		"item ran at %s, before its run_after %s", ranAt, runAfter)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine, err := client.WorkItem.Create().
		SetRef("note.create").
		SetArgs(map[string]any{}).
		SetStatus(workitem.StatusInProgress).
		SetPodID("pod-a").
		SetLastHeartbeat(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	theirs, err := client.WorkItem.Create().
		SetRef("note.create").
		SetArgs(map[string]any{}).
		SetStatus(workitem.StatusInProgress).
		SetPodID("pod-b").
		SetLastHeartbeat(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-a"))

	mine, err = client.WorkItem.Get(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusPending, mine.Status)
	assert.Nil(t, mine.PodID)

	theirs, err = client.WorkItem.Get(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusInProgress, theirs.Status)
}

func TestDetectAndRequeueOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	stale, err := client.WorkItem.Create().
		SetRef("note.create").
		SetArgs(map[string]any{}).
		SetStatus(workitem.StatusInProgress).
		SetPodID("pod-gone").
		SetLastHeartbeat(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	fresh, err := client.WorkItem.Create().
		SetRef("note.create").
		SetArgs(map[string]any{}).
		SetStatus(workitem.StatusInProgress).
		SetPodID("pod-alive").
		SetLastHeartbeat(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := New("test-pod", client, testPoolConfig(), testRetryConfig(), NewRegistry())
	require.NoError(t, pool.detectAndRequeueOrphans(ctx))

	stale, err = client.WorkItem.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusPending, stale.Status)
	require.NotNil(t, stale.ErrorMessage)
	assert.Contains(t, *stale.ErrorMessage, "Orphaned")

	fresh, err = client.WorkItem.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, workitem.StatusInProgress, fresh.Status)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRequeued)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestPoolHealthCounts(t *testing.T) {
	reg := NewRegistry()
	block := make(chan struct{})
	require.NoError(t, reg.RegisterMutation("blocks", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		<-block
		return nil, nil
	}))

	pool, client := startTestPool(t, reg)
	defer close(block)
	ctx := context.Background()

	id, err := pool.Enqueue(ctx, eventstore.WorkInput{Ref: "blocks", Args: map[string]any{}})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		row, err := client.WorkItem.Get(ctx, int(id))
		return err == nil && row.Status == workitem.StatusInProgress
	}, 10*time.Second, 20*time.Millisecond)

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, "test-pod", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 1, health.ActiveItems)
	assert.Equal(t, 8, health.MaxConcurrent)
}
