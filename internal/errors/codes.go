package errors

// Error codes returned in ErrorResponse.Error
// Format: CATEGORY_SPECIFIC_DETAIL

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // malformed body or parameter
	ValidationRequired     = "VALIDATION_REQUIRED"      // required field missing

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND" // product lookup miss

	// ==================== Session (SESSION_) ====================
	SessionMissing = "SESSION_MISSING" // handler reached without session middleware

	// ==================== Rate limit (RATE_) ====================
	RateLimited = "RATE_LIMITED" // too many requests from one client

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"  // unexpected failure
	InternalSessionStore = "INTERNAL_SESSION_STORE" // session store unreachable
	InternalExportFailed = "INTERNAL_EXPORT_FAILED" // spreadsheet rendering failed
)
