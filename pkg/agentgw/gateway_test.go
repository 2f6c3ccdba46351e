package agentgw

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/strandkit/strand/pkg/config"
	"github.com/strandkit/strand/pkg/workpool"
)

func testAgentConfig() *config.AgentConfig {
	return &config.AgentConfig{
		Endpoint:       "localhost:50051",
		RequestTimeout: time.Second,
		RateLimit:      &config.RateLimitConfig{RequestsPerMinute: 6000, Burst: 100},
	}
}

func echoInvoke(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
	return &InvokeResponse{
		PayloadJSON: `{"summary":"ok"}`,
		TotalTokens: 42,
	}, nil
}

func TestInvokeDecodesResponse(t *testing.T) {
	budget := NewBudgetTracker(1000)
	g, err := newGateway(echoInvoke, testAgentConfig(), budget)
	require.NoError(t, err)

	resp, err := g.Invoke(context.Background(), Request{
		AgentName:     "triage",
		Action:        "summarize",
		CorrelationID: "corr-1",
		Payload:       map[string]any{"text": "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Payload["summary"])
	assert.Equal(t, 42, resp.TotalTokens)
	assert.Equal(t, 42, budget.Spent("corr-1"))
}

func TestInvokeMapsTransportErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      string
		retryable bool
	}{
		{"rate limited", status.Error(codes.ResourceExhausted, "quota"), CodeLLMRateLimited, true},
		{"unavailable", status.Error(codes.Unavailable, "down"), CodeLLMUnavailable, true},
		{"timeout", status.Error(codes.DeadlineExceeded, "slow"), CodeLLMTimeout, true},
		{"auth", status.Error(codes.Unauthenticated, "bad key"), CodeLLMAuthFailed, false},
		{"permission", status.Error(codes.PermissionDenied, "forbidden"), CodeLLMAuthFailed, false},
		{"context deadline", context.DeadlineExceeded, CodeLLMTimeout, true},
		{"unknown", errors.New("boom"), CodeLLMUnavailable, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := newGateway(func(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
				return nil, tt.err
			}, testAgentConfig(), nil)
			require.NoError(t, err)

			_, err = g.Invoke(context.Background(), Request{AgentName: "triage", Action: "summarize"})
			require.Error(t, err)
			var aerr *AgentError
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, tt.code, aerr.Code)
			assert.Equal(t, tt.retryable, aerr.Retryable)
			assert.Equal(t, !tt.retryable, aerr.Permanent())
		})
	}
}

func TestInvokeRejectsMalformedResponse(t *testing.T) {
	g, err := newGateway(func(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
		return &InvokeResponse{PayloadJSON: "not json"}, nil
	}, testAgentConfig(), nil)
	require.NoError(t, err)

	_, err = g.Invoke(context.Background(), Request{AgentName: "triage", Action: "summarize"})
	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, CodeLLMInvalidResponse, aerr.Code)
	assert.True(t, aerr.Permanent())
}

func TestInvokeEnforcesBudget(t *testing.T) {
	budget := NewBudgetTracker(100)
	g, err := newGateway(func(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
		return &InvokeResponse{PayloadJSON: "{}", TotalTokens: 60}, nil
	}, testAgentConfig(), budget)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-1"})
	require.NoError(t, err)
	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-1"})
	require.NoError(t, err)

	// 120 of 100 spent; the next call is refused.
	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-1"})
	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, CodeBudgetExceeded, aerr.Code)
	assert.True(t, aerr.Permanent())

	// Other correlations are unaffected.
	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-2"})
	require.NoError(t, err)
}

func TestInvokeOverflowsInsteadOfQueueing(t *testing.T) {
	cfg := testAgentConfig()
	cfg.RateLimit = &config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}
	cfg.RequestTimeout = 50 * time.Millisecond
	g, err := newGateway(echoInvoke, cfg, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-1"})
	require.NoError(t, err)

	// The next slot is ~60s away, far beyond the request timeout.
	_, err = g.Invoke(ctx, Request{CorrelationID: "corr-1"})
	var aerr *AgentError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, CodeQueueOverflow, aerr.Code)
	assert.True(t, aerr.Retryable)
}

func TestNewGatewayRejectsInvalidRateLimit(t *testing.T) {
	cfg := testAgentConfig()
	cfg.RateLimit = &config.RateLimitConfig{RequestsPerMinute: 0, Burst: 10}
	_, err := newGateway(echoInvoke, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_RATE_LIMIT_CONFIG")
}

func TestActionHandlerAdaptsArgs(t *testing.T) {
	var captured *InvokeRequest
	g, err := newGateway(func(ctx context.Context, req *InvokeRequest) (*InvokeResponse, error) {
		captured = req
		return &InvokeResponse{PayloadJSON: `{"done":true}`, TotalTokens: 5}, nil
	}, testAgentConfig(), nil)
	require.NoError(t, err)

	h := g.ActionHandler()
	out, err := h(context.Background(), map[string]any{
		"agentName": "triage",
		"action":    "summarize",
		"payload":   map[string]any{"text": "hello"},
		"maxTokens": float64(256),
	}, workpool.Delivery{CorrelationID: "corr-7"})
	require.NoError(t, err)

	require.NotNil(t, captured)
	assert.Equal(t, "triage", captured.AgentName)
	assert.Equal(t, "corr-7", captured.CorrelationID)
	assert.Equal(t, 256, captured.MaxTokens)
	assert.Contains(t, captured.PayloadJSON, "hello")
	assert.Equal(t, 5, out["totalTokens"])
}
