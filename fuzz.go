//go:build gofuzz

package fit

// Fuzz drives the full decode pipeline for go-fuzz, mirroring the
// teacher's fuzz.go, which fed raw bytes straight into the PE parser
// looking for panics and slice-bounds violations. A ContentError or
// DecodingError is an expected outcome for malformed input; only a panic
// or unbounded read is a bug this is meant to surface.
func Fuzz(data []byte) int {
	messages, _, err := DecodeMessages(data, Options{})
	if err != nil {
		return 0
	}
	if len(messages) == 0 {
		return 0
	}
	return 1
}
