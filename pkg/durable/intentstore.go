package durable

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/strandkit/strand/ent"
	"github.com/strandkit/strand/ent/intent"
)

// Status of one intent. Every intent transitions exactly once out of pending.
type Status string

// Intent statuses.
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusAbandoned Status = "abandoned"
)

// Intent is the durable record that a command started.
type Intent struct {
	IntentKey         string
	OperationType     string
	StreamType        string
	StreamID          string
	Status            Status
	TimeoutMs         int
	ExpiresAt         time.Time
	CompletionEventID string
	ErrorMessage      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IntentStore persists intents. All transitions are guarded on the pending
// status, so a late timeout cannot clobber a completed intent.
type IntentStore interface {
	Create(ctx context.Context, in *Intent) error

	// Complete flips pending → completed with the completion event.
	Complete(ctx context.Context, intentKey, completionEventID string) error

	// Fail flips pending → failed with the error message.
	Fail(ctx context.Context, intentKey, errorMessage string) error

	// Abandon flips pending → abandoned. Returns false when the intent had
	// already left pending.
	Abandon(ctx context.Context, intentKey string) (bool, error)

	// AbandonExpired abandons every pending intent whose deadline has passed
	// and returns how many it flipped.
	AbandonExpired(ctx context.Context, now time.Time) (int, error)

	Get(ctx context.Context, intentKey string) (*Intent, error)

	// List returns intents by status, newest first. An empty status lists all.
	List(ctx context.Context, status Status, limit int) ([]*Intent, error)
}

// EntIntentStore is the PostgreSQL-backed IntentStore.
type EntIntentStore struct {
	client *ent.Client
}

// NewEntIntentStore wraps an ent client.
func NewEntIntentStore(client *ent.Client) *EntIntentStore {
	return &EntIntentStore{client: client}
}

// Create implements IntentStore.
func (s *EntIntentStore) Create(ctx context.Context, in *Intent) error {
	err := s.client.Intent.Create().
		SetIntentKey(in.IntentKey).
		SetOperationType(in.OperationType).
		SetStreamType(in.StreamType).
		SetStreamID(in.StreamID).
		SetTimeoutMs(in.TimeoutMs).
		SetExpiresAt(in.ExpiresAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create intent %s: %w", in.IntentKey, err)
	}
	return nil
}

// Complete implements IntentStore.
func (s *EntIntentStore) Complete(ctx context.Context, intentKey, completionEventID string) error {
	upd := s.client.Intent.Update().
		Where(intent.IntentKeyEQ(intentKey), intent.StatusEQ(intent.StatusPending)).
		SetStatus(intent.StatusCompleted)
	if completionEventID != "" {
		upd = upd.SetCompletionEventID(completionEventID)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("complete intent %s: %w", intentKey, err)
	}
	return nil
}

// Fail implements IntentStore.
func (s *EntIntentStore) Fail(ctx context.Context, intentKey, errorMessage string) error {
	_, err := s.client.Intent.Update().
		Where(intent.IntentKeyEQ(intentKey), intent.StatusEQ(intent.StatusPending)).
		SetStatus(intent.StatusFailed).
		SetErrorMessage(errorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("fail intent %s: %w", intentKey, err)
	}
	return nil
}

// Abandon implements IntentStore.
func (s *EntIntentStore) Abandon(ctx context.Context, intentKey string) (bool, error) {
	n, err := s.client.Intent.Update().
		Where(intent.IntentKeyEQ(intentKey), intent.StatusEQ(intent.StatusPending)).
		SetStatus(intent.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("abandon intent %s: %w", intentKey, err)
	}
	return n > 0, nil
}

// AbandonExpired implements IntentStore.
func (s *EntIntentStore) AbandonExpired(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.Intent.Update().
		Where(intent.StatusEQ(intent.StatusPending), intent.ExpiresAtLT(now)).
		SetStatus(intent.StatusAbandoned).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("abandon expired intents: %w", err)
	}
	return n, nil
}

// Get implements IntentStore.
func (s *EntIntentStore) Get(ctx context.Context, intentKey string) (*Intent, error) {
	row, err := s.client.Intent.Query().
		Where(intent.IntentKeyEQ(intentKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get intent %s: %w", intentKey, err)
	}
	return intentFromRow(row), nil
}

// List implements IntentStore.
func (s *EntIntentStore) List(ctx context.Context, status Status, limit int) ([]*Intent, error) {
	q := s.client.Intent.Query()
	if status != "" {
		q = q.Where(intent.StatusEQ(intent.Status(status)))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.Order(ent.Desc(intent.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	out := make([]*Intent, len(rows))
	for i, row := range rows {
		out[i] = intentFromRow(row)
	}
	return out, nil
}

func intentFromRow(row *ent.Intent) *Intent {
	in := &Intent{
		IntentKey:     row.IntentKey,
		OperationType: row.OperationType,
		StreamType:    row.StreamType,
		StreamID:      row.StreamID,
		Status:        Status(row.Status),
		TimeoutMs:     row.TimeoutMs,
		ExpiresAt:     row.ExpiresAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.CompletionEventID != nil {
		in.CompletionEventID = *row.CompletionEventID
	}
	if row.ErrorMessage != nil {
		in.ErrorMessage = *row.ErrorMessage
	}
	return in
}

// MemIntentStore is an in-memory IntentStore for tests and embedded use.
type MemIntentStore struct {
	mu      sync.Mutex
	intents map[string]*Intent
}

// NewMemIntentStore creates an empty in-memory intent store.
func NewMemIntentStore() *MemIntentStore {
	return &MemIntentStore{intents: make(map[string]*Intent)}
}

// Create implements IntentStore.
func (s *MemIntentStore) Create(ctx context.Context, in *Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.intents[in.IntentKey]; dup {
		return fmt.Errorf("create intent %s: already exists", in.IntentKey)
	}
	cp := *in
	cp.Status = StatusPending
	now := time.Now().UTC()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.intents[in.IntentKey] = &cp
	return nil
}

func (s *MemIntentStore) transition(intentKey string, to Status, mutate func(*Intent)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.intents[intentKey]
	if !ok || in.Status != StatusPending {
		return false
	}
	in.Status = to
	if mutate != nil {
		mutate(in)
	}
	in.UpdatedAt = time.Now().UTC()
	return true
}

// Complete implements IntentStore.
func (s *MemIntentStore) Complete(ctx context.Context, intentKey, completionEventID string) error {
	s.transition(intentKey, StatusCompleted, func(in *Intent) {
		in.CompletionEventID = completionEventID
	})
	return nil
}

// Fail implements IntentStore.
func (s *MemIntentStore) Fail(ctx context.Context, intentKey, errorMessage string) error {
	s.transition(intentKey, StatusFailed, func(in *Intent) {
		in.ErrorMessage = errorMessage
	})
	return nil
}

// Abandon implements IntentStore.
func (s *MemIntentStore) Abandon(ctx context.Context, intentKey string) (bool, error) {
	return s.transition(intentKey, StatusAbandoned, nil), nil
}

// AbandonExpired implements IntentStore.
func (s *MemIntentStore) AbandonExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, in := range s.intents {
		if in.Status == StatusPending && in.ExpiresAt.Before(now) {
			in.Status = StatusAbandoned
			in.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

// Get implements IntentStore.
func (s *MemIntentStore) Get(ctx context.Context, intentKey string) (*Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.intents[intentKey]
	if !ok {
		return nil, nil
	}
	cp := *in
	return &cp, nil
}

// List implements IntentStore.
func (s *MemIntentStore) List(ctx context.Context, status Status, limit int) ([]*Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Intent
	for _, in := range s.intents {
		if status != "" && in.Status != status {
			continue
		}
		cp := *in
		out = append(out, &cp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}
