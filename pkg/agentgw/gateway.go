// Package agentgw is the gateway action subscriptions use to invoke the
// external agent (LLM) service. It rate-limits outbound calls, enforces a
// per-correlation token budget, and translates transport failures into the
// stable code vocabulary so the work pool can tell retryable failures from
// permanent ones.
package agentgw

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/workpool"
)

// InvokeRequest is the wire-level request to the agent service.
type InvokeRequest struct {
	AgentName     string
	Action        string
	CorrelationID string
	PayloadJSON   string
	MaxTokens     int
}

// InvokeResponse is the wire-level response.
type InvokeResponse struct {
	PayloadJSON string
	TotalTokens int
}

// invokeFunc is the transport seam; the production implementation is the
// gRPC client in grpcclient.go.
type invokeFunc func(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error)

// Request is one agent invocation.
type Request struct {
	AgentName     string
	Action        string
	CorrelationID string
	Payload       map[string]any
	MaxTokens     int
}

// Response is the decoded agent result.
type Response struct {
	Payload     map[string]any
	TotalTokens int
}

// Gateway mediates agent invocations.
type Gateway struct {
	invoke  invokeFunc
	limiter *rate.Limiter
	timeout time.Duration
	budget  *BudgetTracker
}

// newGateway wires a gateway over a transport. cfg's rate limit must have
// been validated (config.Load does).
func newGateway(invoke invokeFunc, cfg *config.AgentConfig, budget *BudgetTracker) (*Gateway, error) {
	rl := cfg.RateLimit
	if rl == nil || rl.RequestsPerMinute <= 0 || rl.Burst <= 0 {
		return nil, fmt.Errorf("INVALID_RATE_LIMIT_CONFIG: requests_per_minute and burst must be positive")
	}
	return &Gateway{
		invoke:  invoke,
		limiter: rate.NewLimiter(rate.Limit(float64(rl.RequestsPerMinute)/60.0), rl.Burst),
		timeout: cfg.RequestTimeout,
		budget:  budget,
	}, nil
}

// Invoke calls the agent service once. Rate-limit waits are bounded by the
// request timeout; a wait that cannot be satisfied within it overflows
// instead of queueing unboundedly.
func (g *Gateway) Invoke(ctx context.Context, req Request) (*Response, error) {
	if g.budget != nil {
		if err := g.budget.Check(req.CorrelationID); err != nil {
			return nil, err
		}
	}

	r := g.limiter.Reserve()
	if !r.OK() {
		return nil, &AgentError{
			Code:      CodeQueueOverflow,
			Message:   "rate limiter cannot satisfy request",
			Retryable: true,
		}
	}
	if delay := r.Delay(); delay > 0 {
		if delay > g.timeout {
			r.Cancel()
			return nil, &AgentError{
				Code:      CodeQueueOverflow,
				Message:   fmt.Sprintf("rate limit wait %s exceeds request timeout %s", delay, g.timeout),
				Retryable: true,
			}
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			r.Cancel()
			return nil, ctx.Err()
		}
	}

	payloadJSON, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, fmt.Errorf("encode agent payload: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.invoke(callCtx, &InvokeRequest{
		AgentName:     req.AgentName,
		Action:        req.Action,
		CorrelationID: req.CorrelationID,
		PayloadJSON:   string(payloadJSON),
		MaxTokens:     req.MaxTokens,
	})
	if err != nil {
		aerr := mapTransportError(err)
		slog.Warn("Agent invocation failed",
			"agent", req.AgentName, "action", req.Action,
			"code", aerr.Code, "retryable", aerr.Retryable)
		return nil, aerr
	}

	var payload map[string]any
	if resp.PayloadJSON != "" {
		if err := json.Unmarshal([]byte(resp.PayloadJSON), &payload); err != nil {
			return nil, &AgentError{
				Code:      CodeLLMInvalidResponse,
				Message:   fmt.Sprintf("agent returned malformed payload: %v", err),
				Retryable: false,
			}
		}
	}

	if g.budget != nil && resp.TotalTokens > 0 {
		g.budget.Spend(req.CorrelationID, resp.TotalTokens)
	}

	return &Response{Payload: payload, TotalTokens: resp.TotalTokens}, nil
}

// ActionHandler adapts the gateway to a pool action handler. Args carry
// agentName, action, and payload; the delivery supplies the correlation.
func (g *Gateway) ActionHandler() workpool.ActionHandler {
	return func(ctx context.Context, args map[string]any, d workpool.Delivery) (map[string]any, error) {
		agentName, _ := args["agentName"].(string)
		action, _ := args["action"].(string)
		payload, _ := args["payload"].(map[string]any)
		maxTokens := 0
		if v, ok := args["maxTokens"]; ok {
			switch n := v.(type) {
			case int:
				maxTokens = n
			case float64:
				maxTokens = int(n)
			}
		}

		resp, err := g.Invoke(ctx, Request{
			AgentName:     agentName,
			Action:        action,
			CorrelationID: d.CorrelationID,
			Payload:       payload,
			MaxTokens:     maxTokens,
		})
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"payload":     resp.Payload,
			"totalTokens": resp.TotalTokens,
		}, nil
	}
}
