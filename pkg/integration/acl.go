package integration

import "fmt"

// DomainCommand is the result of translating a foreign integration event into
// this context's vocabulary.
type DomainCommand struct {
	CommandType string
	Payload     map[string]any
}

// InboundTranslator adapts one foreign integration event type.
type InboundTranslator func(e *Event) (*DomainCommand, error)

// RejectionError reports an inbound event the ACL refuses, with a stable
// code.
type RejectionError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ACL is the anti-corruption layer for inbound integration events. Foreign
// shapes never cross it untranslated.
type ACL struct {
	translators map[string]InboundTranslator
}

// NewACL builds an ACL from per-event-type translators.
func NewACL(translators map[string]InboundTranslator) (*ACL, error) {
	for eventType, tr := range translators {
		if eventType == "" {
			return nil, fmt.Errorf("inbound translator with empty eventType")
		}
		if tr == nil {
			return nil, fmt.Errorf("inbound translator for %q is nil", eventType)
		}
	}
	a := &ACL{translators: make(map[string]InboundTranslator, len(translators))}
	for eventType, tr := range translators {
		a.translators[eventType] = tr
	}
	return a, nil
}

// Translate maps an inbound integration event to a domain command. Unknown
// event types are rejected with UNKNOWN_INTEGRATION_EVENT.
func (a *ACL) Translate(e *Event) (*DomainCommand, error) {
	tr, ok := a.translators[e.EventType]
	if !ok {
		return nil, &RejectionError{
			Code:    CodeUnknownIntegrationEvent,
			Message: fmt.Sprintf("no inbound translator for integration event %q", e.EventType),
		}
	}
	cmd, err := tr(e)
	if err != nil {
		return nil, fmt.Errorf("translate inbound %s: %w", e.EventType, err)
	}
	return cmd, nil
}
