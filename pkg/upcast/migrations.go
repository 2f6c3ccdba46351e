package upcast

import (
	"fmt"

	"github.com/strandkit/strand/pkg/eventstore"
)

// AddField returns a migration that adds a payload field with a fixed value.
// Existing values are preserved (the field may have been backfilled).
func AddField(name string, value any) Migration {
	return func(e *eventstore.Event) error {
		if _, exists := e.Payload[name]; !exists {
			e.Payload[name] = value
		}
		return nil
	}
}

// AddFieldFn returns a migration that adds a payload field computed from the
// event (e.g. deriving createdAt from the event timestamp).
func AddFieldFn(name string, fn func(e *eventstore.Event) any) Migration {
	return func(e *eventstore.Event) error {
		if _, exists := e.Payload[name]; !exists {
			e.Payload[name] = fn(e)
		}
		return nil
	}
}

// RenameField returns a migration that renames a payload field. A missing
// source field is an error; a pre-existing target field would be silently
// clobbered otherwise, so that is an error too.
func RenameField(oldName, newName string) Migration {
	return func(e *eventstore.Event) error {
		value, ok := e.Payload[oldName]
		if !ok {
			return fmt.Errorf("field %q not present", oldName)
		}
		if _, exists := e.Payload[newName]; exists {
			return fmt.Errorf("field %q already present", newName)
		}
		delete(e.Payload, oldName)
		e.Payload[newName] = value
		return nil
	}
}
