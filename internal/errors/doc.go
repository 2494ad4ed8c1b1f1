// Package errors provides classified error primitives used across metricpush.
//
// It contains a structured error type carrying category, severity, and retry
// metadata, a fluent builder for constructing it, and a CLI adapter that maps
// categories to process exit codes.
//
// Example usage:
//
//	err := errors.NetworkError("request failed").
//		WithCause(originalErr).
//		WithContext("url", endpoint).
//		Build()
package errors
