package decider

// Stable error codes surfaced by rejected and failed decisions. Downstream
// callers (UI collaborators, process managers) branch on these; the strings
// never change.
const (
	CodeProductNotFound            = "PRODUCT_NOT_FOUND"
	CodeReservationNotFound        = "RESERVATION_NOT_FOUND"
	CodeSKUAlreadyExists           = "SKU_ALREADY_EXISTS"
	CodeInvalidLifecycleTransition = "INVALID_LIFECYCLE_TRANSITION"
	CodeAgentNotFound              = "AGENT_NOT_FOUND"
	CodeInvalidScopeKeyFormat      = "INVALID_SCOPE_KEY_FORMAT"
	CodeTenantIDRequired           = "TENANT_ID_REQUIRED"
	CodeScopeKeyEmpty              = "SCOPE_KEY_EMPTY"
	CodeEntitiesNotFound           = "ENTITIES_NOT_FOUND"
	CodeDCBMaxRetriesExceeded      = "DCB_MAX_RETRIES_EXCEEDED"
	CodeQueueOverflow              = "QUEUE_OVERFLOW"
	CodeBudgetExceeded             = "BUDGET_EXCEEDED"
	CodeInvalidRateLimitConfig     = "INVALID_RATE_LIMIT_CONFIG"
	CodeReasonRequired             = "REASON_REQUIRED"
)
