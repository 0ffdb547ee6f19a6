package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	// General validation
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	// Configuration
	CodeConfigurationError: "Configuration error",

	// External service errors
	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",

	// System errors
	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	// Marketplace statistics API errors
	CodeStatsAPIUnauthorized: "Statistics API rejected the API key",
	CodeStatsAPIForbidden:    "Statistics API denied access to this report",
	CodeStatsAPIRateLimited:  "Statistics API rate limit exceeded",
	CodeStatsAPIError:        "Statistics API error",
	CodeReportFetchFailed:    "Failed to fetch report",
	CodeUnknownReport:        "Unknown report type",

	// Ingestion errors
	CodeParseError:        "Failed to parse input data",
	CodeFileUnreadable:    "Input file is unreadable",
	CodeMissingColumn:     "Expected column is missing",
	CodeAggregationError:  "Failed to aggregate report records",
	CodeEmptyReport:       "Report contains no usable records",
	CodeManualDataInvalid: "Manual input data is invalid",

	// Reconciliation errors
	CodeComparisonFailed: "Failed to compare aggregates",

	// Export errors
	CodeExportFailed: "Failed to export results",

	// Circuit breaker errors
	CodeCircuitOpen: "Circuit breaker is open",
}
