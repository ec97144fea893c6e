package checker

import "fmt"

// Kind categorizes validation failures so callers can map them to
// transport-specific responses (HTTP status codes, RPC codes, ...).
type Kind string

const (
	// KindMissing indicates a mandatory field was absent in non-partial mode.
	KindMissing Kind = "missing"

	// KindInvalid indicates a present value failed a shape, constraint,
	// pattern or checksum check.
	KindInvalid Kind = "invalid"

	// KindInvalidSchema indicates a malformed schema definition. This is a
	// programmer error raised when the schema is built, never during a check.
	KindInvalidSchema Kind = "invalidSchema"

	// KindAssertion indicates misuse of a checker factory or of Extend
	// (wrong option types, unknown base type, missing check hook). Also a
	// programmer error, raised at construction time.
	KindAssertion Kind = "assertion"
)

// Error is the failure type shared by checkers and the schema engine.
// It carries the dotted path of the offending field so consumers can point
// users at the exact location inside a nested value.
type Error struct {
	Kind    Kind   `json:"kind"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewMissing reports a mandatory field absent at path.
func NewMissing(path string) *Error {
	return &Error{
		Kind:    KindMissing,
		Path:    path,
		Message: subject(path) + " is missing",
	}
}

// NewInvalid reports a value that failed validation at path.
func NewInvalid(path string) *Error {
	return &Error{
		Kind:    KindInvalid,
		Path:    path,
		Message: subject(path) + " is invalid",
	}
}

// NewInvalidSchema reports a malformed schema node at path.
func NewInvalidSchema(path string) *Error {
	return &Error{
		Kind:    KindInvalidSchema,
		Path:    path,
		Message: subject(path) + " is not a checker or a field mapping",
	}
}

// NewAssertion reports a construction-time misuse of the package.
func NewAssertion(format string, args ...any) *Error {
	return &Error{
		Kind:    KindAssertion,
		Message: fmt.Sprintf(format, args...),
	}
}

// subject names the failing location in error messages. The root of a
// validation pass has an empty path.
func subject(path string) string {
	if path == "" {
		return "value"
	}
	return path
}
