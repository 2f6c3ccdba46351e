package dcb

import (
	"fmt"
	"strings"
)

// Stable scope key error codes.
const (
	CodeInvalidScopeKeyFormat = "INVALID_SCOPE_KEY_FORMAT"
	CodeTenantIDRequired      = "TENANT_ID_REQUIRED"
	CodeScopeKeyEmpty         = "SCOPE_KEY_EMPTY"
)

// ScopeKey is a parsed consistency-boundary key of the form
// tenant:{tenantId}:{scopeType}:{scopeId}.
type ScopeKey struct {
	TenantID  string
	ScopeType string
	ScopeID   string
}

// String renders the canonical key.
func (k ScopeKey) String() string {
	return fmt.Sprintf("tenant:%s:%s:%s", k.TenantID, k.ScopeType, k.ScopeID)
}

// KeyError is a scope key validation failure with a stable code.
type KeyError struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseScopeKey validates and parses a scope key.
func ParseScopeKey(key string) (ScopeKey, *KeyError) {
	if key == "" {
		return ScopeKey{}, &KeyError{Code: CodeScopeKeyEmpty, Message: "scope key is empty"}
	}
	parts := strings.Split(key, ":")
	if len(parts) != 4 || parts[0] != "tenant" {
		return ScopeKey{}, &KeyError{
			Code:    CodeInvalidScopeKeyFormat,
			Message: fmt.Sprintf("scope key %q must be tenant:{tenantId}:{scopeType}:{scopeId}", key),
		}
	}
	if parts[1] == "" {
		return ScopeKey{}, &KeyError{Code: CodeTenantIDRequired, Message: "scope key has empty tenantId"}
	}
	if parts[2] == "" || parts[3] == "" {
		return ScopeKey{}, &KeyError{
			Code:    CodeInvalidScopeKeyFormat,
			Message: fmt.Sprintf("scope key %q has empty scopeType or scopeId", key),
		}
	}
	return ScopeKey{TenantID: parts[1], ScopeType: parts[2], ScopeID: parts[3]}, nil
}
