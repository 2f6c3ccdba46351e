// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/strandkit/strand/ent/deadletter"
	"github.com/strandkit/strand/ent/event"
	"github.com/strandkit/strand/ent/intent"
	"github.com/strandkit/strand/ent/pmstate"
	"github.com/strandkit/strand/ent/schema"
	"github.com/strandkit/strand/ent/scope"
	"github.com/strandkit/strand/ent/streamstate"
	"github.com/strandkit/strand/ent/workitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	deadletterFields := schema.DeadLetter{}.Fields()
	_ = deadletterFields
	// deadletterDescCreatedAt is the schema descriptor for created_at field.
	deadletterDescCreatedAt := deadletterFields[5].Descriptor()
	// deadletter.DefaultCreatedAt holds the default value on creation for the created_at field.
	deadletter.DefaultCreatedAt = deadletterDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescOccurredAt is the schema descriptor for occurred_at field.
	eventDescOccurredAt := eventFields[5].Descriptor()
	// event.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	event.DefaultOccurredAt = eventDescOccurredAt.Default.(func() time.Time)
	// eventDescSchemaVersion is the schema descriptor for schema_version field.
	eventDescSchemaVersion := eventFields[7].Descriptor()
	// event.DefaultSchemaVersion holds the default value on creation for the schema_version field.
	event.DefaultSchemaVersion = eventDescSchemaVersion.Default.(int)
	intentFields := schema.Intent{}.Fields()
	_ = intentFields
	// intentDescCreatedAt is the schema descriptor for created_at field.
	intentDescCreatedAt := intentFields[9].Descriptor()
	// intent.DefaultCreatedAt holds the default value on creation for the created_at field.
	intent.DefaultCreatedAt = intentDescCreatedAt.Default.(func() time.Time)
	// intentDescUpdatedAt is the schema descriptor for updated_at field.
	intentDescUpdatedAt := intentFields[10].Descriptor()
	// intent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	intent.DefaultUpdatedAt = intentDescUpdatedAt.Default.(func() time.Time)
	// intent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	intent.UpdateDefaultUpdatedAt = intentDescUpdatedAt.UpdateDefault.(func() time.Time)
	pmstateFields := schema.PMState{}.Fields()
	_ = pmstateFields
	// pmstateDescLastGlobalPosition is the schema descriptor for last_global_position field.
	pmstateDescLastGlobalPosition := pmstateFields[3].Descriptor()
	// pmstate.DefaultLastGlobalPosition holds the default value on creation for the last_global_position field.
	pmstate.DefaultLastGlobalPosition = pmstateDescLastGlobalPosition.Default.(int)
	// pmstateDescCommandsEmitted is the schema descriptor for commands_emitted field.
	pmstateDescCommandsEmitted := pmstateFields[4].Descriptor()
	// pmstate.DefaultCommandsEmitted holds the default value on creation for the commands_emitted field.
	pmstate.DefaultCommandsEmitted = pmstateDescCommandsEmitted.Default.(int)
	// pmstateDescCommandsFailed is the schema descriptor for commands_failed field.
	pmstateDescCommandsFailed := pmstateFields[5].Descriptor()
	// pmstate.DefaultCommandsFailed holds the default value on creation for the commands_failed field.
	pmstate.DefaultCommandsFailed = pmstateDescCommandsFailed.Default.(int)
	// pmstateDescStateVersion is the schema descriptor for state_version field.
	pmstateDescStateVersion := pmstateFields[6].Descriptor()
	// pmstate.DefaultStateVersion holds the default value on creation for the state_version field.
	pmstate.DefaultStateVersion = pmstateDescStateVersion.Default.(int)
	// pmstateDescCreatedAt is the schema descriptor for created_at field.
	pmstateDescCreatedAt := pmstateFields[10].Descriptor()
	// pmstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	pmstate.DefaultCreatedAt = pmstateDescCreatedAt.Default.(func() time.Time)
	// pmstateDescUpdatedAt is the schema descriptor for updated_at field.
	pmstateDescUpdatedAt := pmstateFields[11].Descriptor()
	// pmstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pmstate.DefaultUpdatedAt = pmstateDescUpdatedAt.Default.(func() time.Time)
	// pmstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pmstate.UpdateDefaultUpdatedAt = pmstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	scopeFields := schema.Scope{}.Fields()
	_ = scopeFields
	// scopeDescCurrentVersion is the schema descriptor for current_version field.
	scopeDescCurrentVersion := scopeFields[1].Descriptor()
	// scope.DefaultCurrentVersion holds the default value on creation for the current_version field.
	scope.DefaultCurrentVersion = scopeDescCurrentVersion.Default.(int)
	// scopeDescCreatedAt is the schema descriptor for created_at field.
	scopeDescCreatedAt := scopeFields[3].Descriptor()
	// scope.DefaultCreatedAt holds the default value on creation for the created_at field.
	scope.DefaultCreatedAt = scopeDescCreatedAt.Default.(func() time.Time)
	// scopeDescUpdatedAt is the schema descriptor for updated_at field.
	scopeDescUpdatedAt := scopeFields[4].Descriptor()
	// scope.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scope.DefaultUpdatedAt = scopeDescUpdatedAt.Default.(func() time.Time)
	// scope.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scope.UpdateDefaultUpdatedAt = scopeDescUpdatedAt.UpdateDefault.(func() time.Time)
	streamstateFields := schema.StreamState{}.Fields()
	_ = streamstateFields
	// streamstateDescStateVersion is the schema descriptor for state_version field.
	streamstateDescStateVersion := streamstateFields[4].Descriptor()
	// streamstate.DefaultStateVersion holds the default value on creation for the state_version field.
	streamstate.DefaultStateVersion = streamstateDescStateVersion.Default.(int)
	// streamstateDescCreatedAt is the schema descriptor for created_at field.
	streamstateDescCreatedAt := streamstateFields[5].Descriptor()
	// streamstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	streamstate.DefaultCreatedAt = streamstateDescCreatedAt.Default.(func() time.Time)
	// streamstateDescUpdatedAt is the schema descriptor for updated_at field.
	streamstateDescUpdatedAt := streamstateFields[6].Descriptor()
	// streamstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	streamstate.DefaultUpdatedAt = streamstateDescUpdatedAt.Default.(func() time.Time)
	// streamstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	streamstate.UpdateDefaultUpdatedAt = streamstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	workitemFields := schema.WorkItem{}.Fields()
	_ = workitemFields
	// workitemDescPartitionKey is the schema descriptor for partition_key field.
	workitemDescPartitionKey := workitemFields[3].Descriptor()
	// workitem.DefaultPartitionKey holds the default value on creation for the partition_key field.
	workitem.DefaultPartitionKey = workitemDescPartitionKey.Default.(string)
	// workitemDescPriority is the schema descriptor for priority field.
	workitemDescPriority := workitemFields[4].Descriptor()
	// workitem.DefaultPriority holds the default value on creation for the priority field.
	workitem.DefaultPriority = workitemDescPriority.Default.(int)
	// workitemDescAttempts is the schema descriptor for attempts field.
	workitemDescAttempts := workitemFields[6].Descriptor()
	// workitem.DefaultAttempts holds the default value on creation for the attempts field.
	workitem.DefaultAttempts = workitemDescAttempts.Default.(int)
	// workitemDescMaxAttempts is the schema descriptor for max_attempts field.
	workitemDescMaxAttempts := workitemFields[7].Descriptor()
	// workitem.DefaultMaxAttempts holds the default value on creation for the max_attempts field.
	workitem.DefaultMaxAttempts = workitemDescMaxAttempts.Default.(int)
	// workitemDescRunAfter is the schema descriptor for run_after field.
	workitemDescRunAfter := workitemFields[8].Descriptor()
	// workitem.DefaultRunAfter holds the default value on creation for the run_after field.
	workitem.DefaultRunAfter = workitemDescRunAfter.Default.(func() time.Time)
	// workitemDescCreatedAt is the schema descriptor for created_at field.
	workitemDescCreatedAt := workitemFields[13].Descriptor()
	// workitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	workitem.DefaultCreatedAt = workitemDescCreatedAt.Default.(func() time.Time)
	// workitemDescUpdatedAt is the schema descriptor for updated_at field.
	workitemDescUpdatedAt := workitemFields[14].Descriptor()
	// workitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workitem.DefaultUpdatedAt = workitemDescUpdatedAt.Default.(func() time.Time)
	// workitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workitem.UpdateDefaultUpdatedAt = workitemDescUpdatedAt.UpdateDefault.(func() time.Time)
}
