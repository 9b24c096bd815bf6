package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingVar    = errors.New("missing variable")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindInvalidInput  ErrorKind = "invalid_input"
	KindMissingVar    ErrorKind = "missing_variable"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Line int    // Optional: 1-based line number in Path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	switch {
	case e.Path != "" && e.Line > 0:
		base += fmt.Sprintf(" (path=%s, line=%d)", e.Path, e.Line)
	case e.Path != "":
		base += fmt.Sprintf(" (path=%s)", e.Path)
	case e.Line > 0:
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of e's kind, so errors.Is(err, ErrExecution)
// holds for any execution OpError whatever it wraps.
func (e *OpError) Is(target error) bool {
	if e == nil {
		return false
	}
	return target == kindSentinel(e.Kind)
}

func kindSentinel(k ErrorKind) error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInvalidConfig:
		return ErrInvalidConfig
	case KindInvalidInput:
		return ErrInvalidInput
	case KindMissingVar:
		return ErrMissingVar
	case KindExecution:
		return ErrExecution
	default:
		return nil
	}
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// InvalidLine reports a malformed input line. Path is filled in by the
// caller that knows which file the lines came from.
func InvalidLine(op string, line int, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidInput,
		Line: line,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidInput),
	}
}

// WithPath returns err with Path set when err is an *OpError that has none.
func WithPath(err error, path string) error {
	var oe *OpError
	if !errors.As(err, &oe) || oe.Path != "" {
		return err
	}
	cp := *oe
	cp.Path = path
	return &cp
}
