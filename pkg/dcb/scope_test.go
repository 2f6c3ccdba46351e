package dcb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScopeKey(t *testing.T) {
	key, kerr := ParseScopeKey("tenant:acme:order:o-1")
	require.Nil(t, kerr)
	assert.Equal(t, "acme", key.TenantID)
	assert.Equal(t, "order", key.ScopeType)
	assert.Equal(t, "o-1", key.ScopeID)
	assert.Equal(t, "tenant:acme:order:o-1", key.String())
}

func TestParseScopeKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		code string
	}{
		{"empty", "", CodeScopeKeyEmpty},
		{"wrong prefix", "org:acme:order:o-1", CodeInvalidScopeKeyFormat},
		{"too few parts", "tenant:acme:order", CodeInvalidScopeKeyFormat},
		{"too many parts", "tenant:acme:order:o-1:extra", CodeInvalidScopeKeyFormat},
		{"empty tenant", "tenant::order:o-1", CodeTenantIDRequired},
		{"empty scope type", "tenant:acme::o-1", CodeInvalidScopeKeyFormat},
		{"empty scope id", "tenant:acme:order:", CodeInvalidScopeKeyFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, kerr := ParseScopeKey(tt.key)
			require.NotNil(t, kerr)
			assert.Equal(t, tt.code, kerr.Code)
			assert.NotEmpty(t, kerr.Error())
		})
	}
}
