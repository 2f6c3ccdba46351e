package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/pkg/eventstore"
)

func validDefs() Definitions {
	return Definitions{
		Events: []EventDef{
			{EventType: "ProductCreated", Category: eventstore.CategoryDomain, SchemaVersion: 1, BoundedContext: "catalog"},
			{EventType: "ProductCreationFailed", Category: eventstore.CategoryDomain, SchemaVersion: 1, BoundedContext: "catalog"},
		},
		Commands: []CommandDef{
			{
				CommandType:    "createProduct",
				BoundedContext: "catalog",
				StreamType:     "product",
				Emits:          []string{"ProductCreated", "ProductCreationFailed"},
				PayloadSchema: map[string]any{
					"type":                 "object",
					"required":             []any{"sku"},
					"additionalProperties": false,
					"properties": map[string]any{
						"sku":   map[string]any{"type": "string", "minLength": 1},
						"price": map[string]any{"type": "number"},
					},
				},
			},
		},
		Projections: []ProjectionDef{
			{ProjectionName: "productCatalog", Category: ProjectionView, EventSubscriptions: []string{"ProductCreated"}},
			{ProjectionName: "productAudit", Category: ProjectionReporting, EventSubscriptions: []string{"ProductCreated"}},
		},
		PMs: []PMDef{
			{PMName: "restockOnLowInventory", Trigger: TriggerEvent, EventSubscriptions: []string{"ProductCreated"}, EmitsCommands: []string{"createProduct"}},
		},
		Queries: []QueryDef{
			{QueryName: "getProduct", BoundedContext: "catalog", Projection: "productCatalog"},
		},
	}
}

func TestBuildAndLookup(t *testing.T) {
	r, err := New(validDefs())
	require.NoError(t, err)

	cmd, ok := r.Command("createProduct")
	require.True(t, ok)
	assert.Equal(t, "product", cmd.StreamType)

	_, ok = r.Command("unknown")
	assert.False(t, ok)

	proj, ok := r.Projection("productCatalog")
	require.True(t, ok)
	assert.True(t, proj.ClientExposed())

	proj, ok = r.Projection("productAudit")
	require.True(t, ok)
	assert.False(t, proj.ClientExposed())
}

func TestDuplicateCommandFails(t *testing.T) {
	defs := validDefs()
	defs.Commands = append(defs.Commands, CommandDef{CommandType: "createProduct"})
	_, err := New(defs)
	assert.ErrorContains(t, err, "duplicate command")
}

func TestCommandEmittingUnregisteredEventFails(t *testing.T) {
	defs := validDefs()
	defs.Commands[0].Emits = append(defs.Commands[0].Emits, "NeverDeclared")
	_, err := New(defs)
	assert.ErrorContains(t, err, "unregistered event")
}

func TestProjectionWithoutSubscriptionsFails(t *testing.T) {
	defs := validDefs()
	defs.Projections = append(defs.Projections, ProjectionDef{ProjectionName: "empty", Category: ProjectionLogic})
	_, err := New(defs)
	assert.ErrorContains(t, err, "no event subscriptions")
}

func TestTimeTriggeredPMRequiresCron(t *testing.T) {
	defs := validDefs()
	defs.PMs = append(defs.PMs, PMDef{PMName: "nightlySweep", Trigger: TriggerTime})
	_, err := New(defs)
	assert.ErrorContains(t, err, "cronConfig")
}

func TestQueryRequiresClientExposedProjection(t *testing.T) {
	defs := validDefs()
	defs.Queries = append(defs.Queries, QueryDef{QueryName: "getAudit", Projection: "productAudit"})
	_, err := New(defs)
	assert.ErrorContains(t, err, "not client-exposed")
}

func TestInvalidPayloadSchemaFailsAtBuild(t *testing.T) {
	defs := validDefs()
	defs.Commands[0].PayloadSchema = map[string]any{"type": 42}
	_, err := New(defs)
	assert.Error(t, err)
}

func TestValidatePayload(t *testing.T) {
	r, err := New(validDefs())
	require.NoError(t, err)

	assert.NoError(t, r.ValidatePayload("createProduct", map[string]any{"sku": "SKU-1", "price": 10}))

	// Missing required field.
	assert.Error(t, r.ValidatePayload("createProduct", map[string]any{"price": 10}))

	// Unknown fields are rejected.
	assert.Error(t, r.ValidatePayload("createProduct", map[string]any{"sku": "SKU-1", "color": "red"}))

	// Commands without a schema accept anything.
	defs := validDefs()
	defs.Commands[0].PayloadSchema = nil
	r, err = New(defs)
	require.NoError(t, err)
	assert.NoError(t, r.ValidatePayload("createProduct", map[string]any{"anything": true}))
}
