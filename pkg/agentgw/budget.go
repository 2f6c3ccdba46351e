package agentgw

import (
	"fmt"
	"sync"
)

// BudgetTracker enforces a per-correlation token budget. One runaway
// conversation cannot drain the whole allowance.
type BudgetTracker struct {
	mu        sync.Mutex
	maxTokens int
	spent     map[string]int
}

// NewBudgetTracker creates a tracker. maxTokens <= 0 disables budgeting.
func NewBudgetTracker(maxTokens int) *BudgetTracker {
	return &BudgetTracker{
		maxTokens: maxTokens,
		spent:     make(map[string]int),
	}
}

// Check returns BUDGET_EXCEEDED when the correlation has spent its budget.
func (b *BudgetTracker) Check(correlationID string) error {
	if b.maxTokens <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.spent[correlationID] >= b.maxTokens {
		return &AgentError{
			Code:      CodeBudgetExceeded,
			Message:   fmt.Sprintf("correlation %s spent %d of %d tokens", correlationID, b.spent[correlationID], b.maxTokens),
			Retryable: false,
		}
	}
	return nil
}

// Spend records token usage for a correlation.
func (b *BudgetTracker) Spend(correlationID string, tokens int) {
	if b.maxTokens <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.spent[correlationID] += tokens
}

// Spent returns the tokens spent by one correlation.
func (b *BudgetTracker) Spent(correlationID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.spent[correlationID]
}
