package shared

// Identity stamped on mutations when no authenticated user is present
// (worker jobs, seed data, unauthenticated internal callers).
const SystemIdentity = "system@b2b-showcase.com"

// Context keys set by middleware.
const (
	CtxUserEmail = "userEmail"
	CtxRequestID = "request_id"
)

// ========================================
// ASYNQ TASK TYPES & QUEUES
// ========================================

const (
	// TypeCatalogCacheMirror rewrites the local product mirror from the
	// remote catalog store.
	TypeCatalogCacheMirror = "catalog:cache_mirror"
)

const (
	QueueCatalog = "catalog"
)
