package workpool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryResolvesByKind(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterMutation("proj.order", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, nil
	}))
	require.NoError(t, r.RegisterAction("notify.send", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, nil
	}))
	require.NoError(t, r.RegisterCompletion("notify.onComplete", func(ctx context.Context, outcome Outcome, d Delivery) error {
		return nil
	}))

	_, ok := r.Mutation("proj.order")
	assert.True(t, ok)
	_, ok = r.Action("proj.order")
	assert.False(t, ok)
	_, ok = r.Action("notify.send")
	assert.True(t, ok)
	_, ok = r.Completion("notify.onComplete")
	assert.True(t, ok)
}

func TestRegistryRejectsDuplicateRefsAcrossKinds(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterMutation("x", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, nil
	}))

	err := r.RegisterAction("x", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, nil
	})
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistryValidate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.RegisterMutation("known", func(ctx context.Context, args map[string]any, d Delivery) (map[string]any, error) {
		return nil, nil
	}))

	assert.NoError(t, r.Validate("known"))
	assert.NoError(t, r.Validate("")) // empty refs are skipped (optional onComplete)
	assert.ErrorContains(t, r.Validate("known", "missing"), `"missing"`)
}
