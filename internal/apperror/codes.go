package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	// General validation
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	// Configuration
	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	// External service errors
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"

	// System errors
	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// Analytics-specific error codes
const (
	// Marketplace statistics API errors
	CodeStatsAPIUnauthorized Code = "STATS_API_UNAUTHORIZED"
	CodeStatsAPIForbidden    Code = "STATS_API_FORBIDDEN"
	CodeStatsAPIRateLimited  Code = "STATS_API_RATE_LIMITED"
	CodeStatsAPIError        Code = "STATS_API_ERROR"
	CodeReportFetchFailed    Code = "REPORT_FETCH_FAILED"
	CodeUnknownReport        Code = "UNKNOWN_REPORT"

	// Ingestion errors
	CodeParseError        Code = "PARSE_ERROR"
	CodeFileUnreadable    Code = "FILE_UNREADABLE"
	CodeMissingColumn     Code = "MISSING_COLUMN"
	CodeAggregationError  Code = "AGGREGATION_ERROR"
	CodeEmptyReport       Code = "EMPTY_REPORT"
	CodeManualDataInvalid Code = "MANUAL_DATA_INVALID"

	// Reconciliation errors
	CodeComparisonFailed Code = "COMPARISON_FAILED"

	// Export errors
	CodeExportFailed Code = "EXPORT_FAILED"

	// Circuit breaker errors
	CodeCircuitOpen Code = "CIRCUIT_OPEN"
)
