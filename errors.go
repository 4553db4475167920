package fit

import "github.com/gofitkit/fit/wire"

// ContentError and DecodingError are defined in wire rather than here so
// that profile's enum-validation code (which must be able to construct a
// fatal error on a strict cast failure) never has to import this package,
// which itself imports profile. Re-exporting them here keeps fit's public
// error surface self-contained for callers who never need to look at
// wire directly. Grounded on the teacher's helper.go error-variable block.
type ContentError = wire.ContentError

type DecodingError = wire.DecodingError

// NewContentError builds a ContentError the same way the wire package
// does internally.
func NewContentError(format string, args ...interface{}) *ContentError {
	return wire.NewContentError(format, args...)
}
