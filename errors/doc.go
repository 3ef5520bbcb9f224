// Package errors provides structured error types for the valuekit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: node path, type descriptor, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindNotUniformRun).
//		Path("left", "right").
//		Detail("illegal left value: %s", v).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidLength(errors.PhaseConstruct, 3)
//	err := errors.OutOfBits("2^32")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
