// Package wire holds the primitive, profile-agnostic value types shared by
// the FIT stream decoder and the message-profile catalog: the base-type
// registry, field definitions, and the raw developer/undocumented field
// carriers. Nothing in this package depends on the decoder or the profile,
// so both can depend on it without an import cycle.
package wire

import "fmt"

// DecodingError is returned by Decode when the byte slice handed to a
// base-type decoder is not a positive multiple of that type's width.
type DecodingError struct {
	Reason           string
	ExpectedMultiple int
	Actual           int
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: expected a positive multiple of %d bytes, got %d",
		e.Reason, e.ExpectedMultiple, e.Actual)
}

// ContentError is returned when the input violates the FIT format itself,
// or when a tolerable inconsistency has been promoted to fatal by one of
// the resolver's Options toggles (spec.md §7). It lives in wire, rather
// than the root package, so that the profile catalog's generated-style
// constructors can return it without creating an import cycle with the
// root decoder package, which re-exports it as ContentError.
type ContentError struct {
	Message string
}

func (e *ContentError) Error() string {
	return e.Message
}

// NewContentError formats a ContentError the way the teacher formats its
// sentinel errors in helper.go: a short, lowercase, unpunctuated reason.
func NewContentError(format string, args ...interface{}) *ContentError {
	return &ContentError{Message: fmt.Sprintf(format, args...)}
}
