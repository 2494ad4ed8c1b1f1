package errors

// ErrorCategory represents the broad category of an error for classification and routing.
type ErrorCategory string

const (
	// CategoryConfig represents configuration loading and layering errors.
	CategoryConfig ErrorCategory = "config"
	// CategoryValidation represents user-facing input errors (bad flags, arguments).
	CategoryValidation ErrorCategory = "validation"
	// CategoryAuth represents rejected credentials at the metrics gateway.
	CategoryAuth ErrorCategory = "auth"
	// CategoryNetwork represents transport-level failures (dial, TLS, DNS).
	CategoryNetwork ErrorCategory = "network"
	// CategoryTelemetry represents gateway-side rejection of an otherwise delivered payload.
	CategoryTelemetry ErrorCategory = "telemetry"
	// CategoryInternal represents programming errors and unclassified failures.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// RetryStrategy indicates how an error should be handled by the invoking pipeline.
// metricpush itself never retries; the metadata tells the caller whether a
// re-run of the stage could succeed.
type RetryStrategy string

const (
	RetryNever      RetryStrategy = "never"   // Permanent failure, re-running won't help
	RetryBackoff    RetryStrategy = "backoff" // Transient: a later pipeline retry may succeed
	RetryUserAction RetryStrategy = "user"    // Requires operator intervention (e.g. credentials)
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}
