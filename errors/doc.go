// Package errors provides structured error types for spirv-reflect.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the byte offset, opcode and result ID involved, plus a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTruncatedInstruction).
//		Offset(120).
//		Opcode(71).
//		Detail("word count 4 exceeds 2 remaining words").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Truncated(errors.PhaseRead, 16, 4, 2)
//	err := errors.Load(path, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is compares Phase and Kind; a target built with Sentinel matches on Kind only.
package errors
