package fsm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderLifecycle() *Machine {
	return New("draft", map[string][]string{
		"draft":     {"submitted", "cancelled"},
		"submitted": {"shipped", "cancelled"},
		"shipped":   {"delivered"},
	})
}

func TestCanTransition(t *testing.T) {
	m := orderLifecycle()

	assert.True(t, m.CanTransition("draft", "submitted"))
	assert.True(t, m.CanTransition("submitted", "cancelled"))
	assert.False(t, m.CanTransition("draft", "shipped"))
	assert.False(t, m.CanTransition("delivered", "draft"))
	assert.False(t, m.CanTransition("unknown", "draft"))
}

func TestAssertTransition(t *testing.T) {
	m := orderLifecycle()

	assert.NoError(t, m.AssertTransition("draft", "submitted"))

	err := m.AssertTransition("draft", "delivered")
	require.Error(t, err)

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "draft", invalid.From)
	assert.Equal(t, "delivered", invalid.To)
	assert.Equal(t, []string{"submitted", "cancelled"}, invalid.Valid)
	assert.Equal(t, ErrCodeInvalidTransition, invalid.Code())
	assert.Contains(t, err.Error(), ErrCodeInvalidTransition)
}

// assertTransition and canTransition must agree for every state pair.
func TestAssertMatchesCan(t *testing.T) {
	m := orderLifecycle()
	states := []string{"draft", "submitted", "shipped", "delivered", "cancelled"}

	for _, from := range states {
		for _, to := range states {
			err := m.AssertTransition(from, to)
			if m.CanTransition(from, to) {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.Error(t, err, "%s -> %s", from, to)
			}
		}
	}
}

func TestTerminalStates(t *testing.T) {
	m := orderLifecycle()

	// Target-only states are terminal
	assert.True(t, m.IsTerminal("delivered"))
	assert.True(t, m.IsTerminal("cancelled"))
	assert.False(t, m.IsTerminal("draft"))
	assert.False(t, m.IsTerminal("unknown"))

	assert.Nil(t, m.ValidTransitions("delivered"))
}

func TestIsValidState(t *testing.T) {
	m := orderLifecycle()

	assert.True(t, m.IsValidState("draft"))
	assert.True(t, m.IsValidState("delivered"))
	assert.False(t, m.IsValidState("refunded"))
}

func TestInitial(t *testing.T) {
	m := orderLifecycle()
	assert.Equal(t, "draft", m.Initial())
}

func TestValidTransitionsCopies(t *testing.T) {
	m := orderLifecycle()

	tos := m.ValidTransitions("draft")
	tos[0] = "mutated"

	// Definition must be unaffected
	assert.Equal(t, []string{"submitted", "cancelled"}, m.ValidTransitions("draft"))
}

func TestDuplicateTargetsDeduplicated(t *testing.T) {
	m := New("a", map[string][]string{
		"a": {"b", "b", "c"},
	})
	assert.Equal(t, []string{"b", "c"}, m.ValidTransitions("a"))
}
