package utils

const (
	// Payment statuses
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusPending = "Pending"

	// User roles
	RoleAdmin  = "admin"
	RoleMember = "member"

	// Normalization defaults
	DefaultStartDate = "2025-12-25"
	DefaultNotes     = "No notes"

	// Fetch retry policy
	FetchMaxAttempts = 3

	// HTTP status messages
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidCredentials   = "Invalid name or password"
	ErrSessionRequired      = "Session token required"
	ErrSessionInvalid       = "Session expired or invalid"
	ErrAdminOnly            = "Admin role required"
	ErrDashboardUnavailable = "Dashboard data failed to load"
	ErrFailedToStoreSession = "Failed to store session"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
