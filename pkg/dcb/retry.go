package dcb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/decider"
	"github.com/strandkit/strand/pkg/eventstore"
	"github.com/strandkit/strand/pkg/workpool"
)

// RetryPolicy governs how scope conflicts are retried through the work pool.
type RetryPolicy struct {
	Config *config.RetryConfig
	Jitter workpool.Jitter
}

func (p RetryPolicy) config() *config.RetryConfig {
	if p.Config != nil {
		return p.Config
	}
	return config.DefaultRetryConfig()
}

// WithRetry executes req and, on a scope conflict, schedules a retry through
// the work pool instead of surfacing the conflict. Retries for one scope are
// serialized by partition key, so by the time a retry runs the competing
// operation has finished. attempt is 0 for the initial call and increments
// with each scheduled retry; when it reaches the policy's max the operation
// is rejected with DCB_MAX_RETRIES_EXCEEDED.
func WithRetry(ctx context.Context, x *Executor, req Request, ref string, attempt int, policy RetryPolicy) (*Result, error) {
	result, err := x.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if result.Status != decider.StatusConflict {
		return result, nil
	}

	cfg := policy.config()
	if attempt >= cfg.MaxAttempts {
		return &Result{
			Status:  decider.StatusRejected,
			Code:    CodeDCBMaxRetriesExceeded,
			Message: fmt.Sprintf("scope %s still conflicted after %d attempts", req.ScopeKey, attempt),
			Reason:  fmt.Sprintf("scope %s still conflicted after %d attempts", req.ScopeKey, attempt),
			Context: map[string]any{"scopeKey": req.ScopeKey, "attempts": attempt},
		}, nil
	}

	delay := workpool.Backoff(attempt, cfg, policy.Jitter)
	workID, err := x.store.EnqueueWork(ctx, eventstore.WorkInput{
		Ref: ref,
		Args: map[string]any{
			"scopeKey":      req.ScopeKey,
			"attempt":       attempt + 1,
			"commandId":     req.Command.CommandID,
			"correlationId": req.Command.CorrelationID,
			"payload":       req.Command.Payload,
		},
		PartitionKey: "dcb:" + req.ScopeKey,
		MaxAttempts:  1,
		RunAfter:     x.now().Add(delay),
	})
	if err != nil {
		return nil, fmt.Errorf("schedule dcb retry for %s: %w", req.ScopeKey, err)
	}

	slog.Info("Scope conflict, retry scheduled",
		"scope_key", req.ScopeKey, "attempt", attempt+1,
		"delay_ms", delay.Milliseconds(), "work_id", workID)

	return &Result{
		Status:           StatusDeferred,
		WorkID:           workID,
		RetryAttempt:     attempt + 1,
		ScheduledAfterMs: int(delay.Milliseconds()),
	}, nil
}

// RegisterRetryable wires a DCB operation into the pool so its scheduled
// retries resolve back to WithRetry. build reconstructs the Request from the
// scheduled args; it must re-read the current scope version rather than
// reusing the one that conflicted.
func RegisterRetryable(reg *workpool.Registry, ref string, x *Executor, policy RetryPolicy, build func(ctx context.Context, args map[string]any) (Request, error)) error {
	return reg.RegisterMutation(ref, func(ctx context.Context, args map[string]any, d workpool.Delivery) (map[string]any, error) {
		req, err := build(ctx, args)
		if err != nil {
			return nil, err
		}
		attempt := argInt(args, "attempt")
		result, err := WithRetry(ctx, x, req, ref, attempt, policy)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"status":   string(result.Status),
			"eventId":  result.EventID,
			"workId":   result.WorkID,
			"attempt":  result.RetryAttempt,
			"replayed": result.Replayed,
		}, nil
	})
}

func argInt(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
