// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeadLettersColumns holds the columns for the "dead_letters" table.
	DeadLettersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subscription", Type: field.TypeString},
		{Name: "event", Type: field.TypeJSON},
		{Name: "error_message", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt},
		{Name: "failed_command", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeadLettersTable holds the schema information for the "dead_letters" table.
	DeadLettersTable = &schema.Table{
		Name:       "dead_letters",
		Columns:    DeadLettersColumns,
		PrimaryKey: []*schema.Column{DeadLettersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deadletter_subscription",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[1]},
			},
			{
				Name:    "deadletter_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeadLettersColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "stream_version", Type: field.TypeInt},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"domain", "integration", "trigger", "fat"}, Default: "domain"},
		{Name: "schema_version", Type: field.TypeInt, Default: 1},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "correlation_id", Type: field.TypeString},
		{Name: "causation_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeEnum, Enums: []string{"success", "failed"}, Default: "success"},
		{Name: "bounded_context", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_stream_type_stream_id_stream_version",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[4], EventsColumns[5]},
			},
			{
				Name:    "event_causation_id",
				Unique:  true,
				Columns: []*schema.Column{EventsColumns[11]},
			},
			{
				Name:    "event_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_category",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[7]},
			},
			{
				Name:    "event_correlation_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[10]},
			},
		},
	}
	// IntentsColumns holds the columns for the "intents" table.
	IntentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "intent_key", Type: field.TypeString, Unique: true},
		{Name: "operation_type", Type: field.TypeString},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed", "failed", "abandoned"}, Default: "pending"},
		{Name: "timeout_ms", Type: field.TypeInt},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "completion_event_id", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IntentsTable holds the schema information for the "intents" table.
	IntentsTable = &schema.Table{
		Name:       "intents",
		Columns:    IntentsColumns,
		PrimaryKey: []*schema.Column{IntentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "intent_intent_key",
				Unique:  true,
				Columns: []*schema.Column{IntentsColumns[1]},
			},
			{
				Name:    "intent_status_expires_at",
				Unique:  false,
				Columns: []*schema.Column{IntentsColumns[5], IntentsColumns[7]},
			},
		},
	}
	// PmStatesColumns holds the columns for the "pm_states" table.
	PmStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pm_name", Type: field.TypeString},
		{Name: "instance_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "processing", "completed", "failed"}, Default: "idle"},
		{Name: "last_global_position", Type: field.TypeInt, Default: 0},
		{Name: "commands_emitted", Type: field.TypeInt, Default: 0},
		{Name: "commands_failed", Type: field.TypeInt, Default: 0},
		{Name: "state_version", Type: field.TypeInt, Default: 1},
		{Name: "custom_state", Type: field.TypeJSON, Nullable: true},
		{Name: "trigger_event_id", Type: field.TypeString, Nullable: true},
		{Name: "correlation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PmStatesTable holds the schema information for the "pm_states" table.
	PmStatesTable = &schema.Table{
		Name:       "pm_states",
		Columns:    PmStatesColumns,
		PrimaryKey: []*schema.Column{PmStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pmstate_pm_name_instance_id",
				Unique:  true,
				Columns: []*schema.Column{PmStatesColumns[1], PmStatesColumns[2]},
			},
			{
				Name:    "pmstate_status",
				Unique:  false,
				Columns: []*schema.Column{PmStatesColumns[3]},
			},
		},
	}
	// ScopesColumns holds the columns for the "scopes" table.
	ScopesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope_key", Type: field.TypeString, Unique: true},
		{Name: "current_version", Type: field.TypeInt, Default: 0},
		{Name: "streams", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScopesTable holds the schema information for the "scopes" table.
	ScopesTable = &schema.Table{
		Name:       "scopes",
		Columns:    ScopesColumns,
		PrimaryKey: []*schema.Column{ScopesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scope_scope_key",
				Unique:  true,
				Columns: []*schema.Column{ScopesColumns[1]},
			},
		},
	}
	// StreamStatesColumns holds the columns for the "stream_states" table.
	StreamStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "stream_type", Type: field.TypeString},
		{Name: "stream_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "state", Type: field.TypeJSON},
		{Name: "state_version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StreamStatesTable holds the schema information for the "stream_states" table.
	StreamStatesTable = &schema.Table{
		Name:       "stream_states",
		Columns:    StreamStatesColumns,
		PrimaryKey: []*schema.Column{StreamStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streamstate_stream_type_stream_id",
				Unique:  true,
				Columns: []*schema.Column{StreamStatesColumns[1], StreamStatesColumns[2]},
			},
		},
	}
	// WorkItemsColumns holds the columns for the "work_items" table.
	WorkItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ref", Type: field.TypeString},
		{Name: "args", Type: field.TypeJSON},
		{Name: "delivery", Type: field.TypeJSON, Nullable: true},
		{Name: "partition_key", Type: field.TypeString, Default: ""},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed", "dead"}, Default: "pending"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "max_attempts", Type: field.TypeInt, Default: 5},
		{Name: "run_after", Type: field.TypeTime},
		{Name: "on_complete", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkItemsTable holds the schema information for the "work_items" table.
	WorkItemsTable = &schema.Table{
		Name:       "work_items",
		Columns:    WorkItemsColumns,
		PrimaryKey: []*schema.Column{WorkItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workitem_status_run_after",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[6], WorkItemsColumns[9]},
			},
			{
				Name:    "workitem_partition_key_status",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[4], WorkItemsColumns[6]},
			},
			{
				Name:    "workitem_status_last_heartbeat",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[6], WorkItemsColumns[12]},
			},
			{
				Name:    "workitem_pod_id_status",
				Unique:  false,
				Columns: []*schema.Column{WorkItemsColumns[11], WorkItemsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeadLettersTable,
		EventsTable,
		IntentsTable,
		PmStatesTable,
		ScopesTable,
		StreamStatesTable,
		WorkItemsTable,
	}
)

func init() {
}
