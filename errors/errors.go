package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseConstruct Phase = "construct" // building runs from raw sequences
	PhaseConvert   Phase = "convert"   // generic value to compacted form
	PhaseDecode    Phase = "decode"    // type-directed bit stream decoding
	PhaseParse     Phase = "parse"     // type expression parsing
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidLength    Kind = "invalid_length"    // run length not a power of two
	KindMisalignedLength Kind = "misaligned_length" // bit count not a multiple of 8
	KindNotUniformRun    Kind = "not_uniform_run"   // value shape is not a pure run
	KindOutOfBits        Kind = "out_of_bits"       // bit stream exhausted mid-decode
	KindSyntax           Kind = "syntax"            // malformed type expression
	KindInvalidInput     Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Type != "" {
		b.WriteString(": type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the node path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Type sets the type descriptor rendering
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// Convenience constructors for common error patterns

// InvalidLength creates an error for a run length that is not a power of two
func InvalidLength(phase Phase, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidLength,
		Detail: fmt.Sprintf("length %d is not a power of two", length),
		Value:  length,
	}
}

// MisalignedLength creates an error for a bit count that is not byte-aligned
func MisalignedLength(phase Phase, bits int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMisalignedLength,
		Detail: fmt.Sprintf("bit count %d is not divisible by 8", bits),
		Value:  bits,
	}
}

// NotUniformRun creates an error for a value whose shape is not a pure run
func NotUniformRun(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotUniformRun,
		Detail: detail,
	}
}

// OutOfBits creates an error for a bit stream that ended mid-decode
func OutOfBits(typeRepr string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOutOfBits,
		Type:   typeRepr,
		Detail: "bit stream exhausted before the type was fully decoded",
	}
}

// Syntax creates a type expression syntax error
func Syntax(pos int, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindSyntax,
		Detail: fmt.Sprintf("at offset %d: %s", pos, detail),
		Value:  pos,
	}
}
