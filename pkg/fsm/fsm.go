// Package fsm provides the finite state machine primitive used by deciders
// to validate lifecycle transitions. Definitions are immutable after
// construction; all lookups are O(1).
package fsm

import "fmt"

// ErrCodeInvalidTransition is the stable code carried by transition failures.
const ErrCodeInvalidTransition = "FSM_INVALID_TRANSITION"

// InvalidTransitionError reports a transition that the machine does not
// permit, along with the valid targets from the source state.
type InvalidTransitionError struct {
	From  string
	To    string
	Valid []string
}

// Error implements the error interface.
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot transition from %q to %q (valid: %v)",
		ErrCodeInvalidTransition, e.From, e.To, e.Valid)
}

// Code returns the stable error code.
func (e *InvalidTransitionError) Code() string { return ErrCodeInvalidTransition }

// Machine is an immutable finite state machine definition. An empty target
// set denotes a terminal state.
type Machine struct {
	initial     string
	transitions map[string]map[string]bool
	// ordered targets per state, for deterministic error messages
	targets map[string][]string
}

// New builds a Machine from an initial state and a transition table. States
// that appear only as targets are registered as terminal.
func New(initial string, transitions map[string][]string) *Machine {
	m := &Machine{
		initial:     initial,
		transitions: make(map[string]map[string]bool, len(transitions)),
		targets:     make(map[string][]string, len(transitions)),
	}
	for from, tos := range transitions {
		set := make(map[string]bool, len(tos))
		ordered := make([]string, 0, len(tos))
		for _, to := range tos {
			if !set[to] {
				ordered = append(ordered, to)
			}
			set[to] = true
		}
		m.transitions[from] = set
		m.targets[from] = ordered
	}
	// Register target-only states as terminal
	for _, tos := range transitions {
		for _, to := range tos {
			if _, ok := m.transitions[to]; !ok {
				m.transitions[to] = map[string]bool{}
				m.targets[to] = nil
			}
		}
	}
	return m
}

// Initial returns the machine's initial state.
func (m *Machine) Initial() string { return m.initial }

// CanTransition reports whether from → to is a permitted transition.
func (m *Machine) CanTransition(from, to string) bool {
	return m.transitions[from][to]
}

// AssertTransition returns an *InvalidTransitionError iff from → to is not
// permitted.
func (m *Machine) AssertTransition(from, to string) error {
	if m.CanTransition(from, to) {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to, Valid: m.ValidTransitions(from)}
}

// ValidTransitions returns the permitted targets from the given state, in
// definition order. Returns nil for terminal or unknown states.
func (m *Machine) ValidTransitions(from string) []string {
	tos := m.targets[from]
	if len(tos) == 0 {
		return nil
	}
	out := make([]string, len(tos))
	copy(out, tos)
	return out
}

// IsTerminal reports whether the state has no outgoing transitions.
func (m *Machine) IsTerminal(state string) bool {
	set, ok := m.transitions[state]
	return ok && len(set) == 0
}

// IsValidState reports whether the state is part of the machine.
func (m *Machine) IsValidState(state string) bool {
	_, ok := m.transitions[state]
	return ok
}
