package agentgw

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stable agent failure codes.
const (
	CodeLLMRateLimited     = "LLM_RATE_LIMITED"
	CodeLLMUnavailable     = "LLM_UNAVAILABLE"
	CodeLLMTimeout         = "LLM_TIMEOUT"
	CodeLLMAuthFailed      = "LLM_AUTH_FAILED"
	CodeLLMInvalidResponse = "LLM_INVALID_RESPONSE"
	CodeQueueOverflow      = "QUEUE_OVERFLOW"
	CodeBudgetExceeded     = "BUDGET_EXCEEDED"
)

// AgentError is an agent invocation failure with a stable code. Non-retryable
// errors are permanent for the work pool, so they dead-letter instead of
// burning attempts.
type AgentError struct {
	Code      string
	Message   string
	Retryable bool
}

// Error implements the error interface.
func (e *AgentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Permanent reports whether the pool should stop retrying.
func (e *AgentError) Permanent() bool { return !e.Retryable }

// mapTransportError translates gRPC transport failures into the stable code
// vocabulary.
func mapTransportError(err error) *AgentError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &AgentError{Code: CodeLLMTimeout, Message: err.Error(), Retryable: true}
	}
	st, ok := status.FromError(err)
	if !ok {
		return &AgentError{Code: CodeLLMUnavailable, Message: err.Error(), Retryable: true}
	}
	switch st.Code() {
	case codes.ResourceExhausted:
		return &AgentError{Code: CodeLLMRateLimited, Message: st.Message(), Retryable: true}
	case codes.Unavailable:
		return &AgentError{Code: CodeLLMUnavailable, Message: st.Message(), Retryable: true}
	case codes.DeadlineExceeded:
		return &AgentError{Code: CodeLLMTimeout, Message: st.Message(), Retryable: true}
	case codes.Unauthenticated, codes.PermissionDenied:
		return &AgentError{Code: CodeLLMAuthFailed, Message: st.Message(), Retryable: false}
	case codes.InvalidArgument:
		return &AgentError{Code: CodeLLMInvalidResponse, Message: st.Message(), Retryable: false}
	default:
		return &AgentError{Code: CodeLLMUnavailable, Message: st.Message(), Retryable: true}
	}
}
