package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead     Phase = "read"     // word reader
	PhaseHeader   Phase = "header"   // module header
	PhaseDecode   Phase = "decode"   // instruction stream
	PhaseValidate Phase = "validate" // ID bounds and uniqueness
	PhaseResolve  Phase = "resolve"  // vertex input query
	PhaseLoad     Phase = "load"     // file loading
	PhaseConfig   Phase = "config"   // configuration
)

// Kind categorizes the error
type Kind string

const (
	KindTruncated                Kind = "truncated"
	KindInvalidMagic             Kind = "invalid_magic"
	KindInvalidVersion           Kind = "invalid_version"
	KindInvalidReserved          Kind = "invalid_reserved"
	KindMalformedInstruction     Kind = "malformed_instruction"
	KindTruncatedInstruction     Kind = "truncated_instruction"
	KindInvalidUTF8              Kind = "invalid_utf8"
	KindMissingEntryPoint        Kind = "missing_entry_point"
	KindAmbiguousEntryPoint      Kind = "ambiguous_entry_point"
	KindNoLocationDecoration     Kind = "no_location_decoration"
	KindUnsupportedAttributeType Kind = "unsupported_attribute_type"
	KindUnresolvedID             Kind = "unresolved_id"
	KindIDOutOfBounds            Kind = "id_out_of_bounds"
	KindDuplicateID              Kind = "duplicate_id"
	KindNotFound                 Kind = "not_found"
	KindInvalidInput             Kind = "invalid_input"
)

// NoOffset marks an error that is not tied to a byte position.
const NoOffset = -1

// Error is the structured error type used throughout the module
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Detail    string
	Offset    int
	Opcode    uint16
	ID        uint32
	HasOpcode bool
	HasID     bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.HasOpcode {
		fmt.Fprintf(&b, " (opcode %d)", e.Opcode)
	}
	if e.HasID {
		fmt.Fprintf(&b, " (id %%%d)", e.ID)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty
// Phase matches on Kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && t.Phase != e.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: NoOffset,
		},
	}
}

// Offset sets the byte offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Opcode sets the opcode of the instruction being processed
func (b *Builder) Opcode(op uint16) *Builder {
	b.err.Opcode = op
	b.err.HasOpcode = true
	return b
}

// ID sets the offending result ID
func (b *Builder) ID(id uint32) *Builder {
	b.err.ID = id
	b.err.HasID = true
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Sentinel returns a Kind-only error for use as an errors.Is target.
func Sentinel(kind Kind) *Error {
	return &Error{Kind: kind, Offset: NoOffset}
}

// Convenience constructors for common error patterns

// Truncated creates a buffer underrun error
func Truncated(phase Phase, offset, want, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Offset: offset,
		Detail: fmt.Sprintf("need %d bytes, %d remaining", want, have),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(offset int, opcode uint16, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:     PhaseDecode,
		Kind:      KindInvalidUTF8,
		Offset:    offset,
		Opcode:    opcode,
		HasOpcode: true,
		Detail:    fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: NoOffset,
		Detail: detail,
	}
}

// Load creates a module loading error. A cause that is not fs.ErrNotExist
// is reported as invalid input.
func Load(path string, cause error) *Error {
	kind := KindNotFound
	if !errors.Is(cause, fs.ErrNotExist) {
		kind = KindInvalidInput
	}
	return &Error{
		Phase:  PhaseLoad,
		Kind:   kind,
		Offset: NoOffset,
		Detail: fmt.Sprintf("read %s", path),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: NoOffset,
		Detail: detail,
		Cause:  cause,
	}
}
