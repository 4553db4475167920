package fit

import (
	"fmt"

	"github.com/gofitkit/fit/log"
)

// Options controls component C6's tolerance for content that is malformed
// in ways the format allows a lenient reader to shrug off (spec.md §4.5,
// §9 "three tolerance toggles"). Grounded on the teacher's anomaly.go,
// which similarly distinguishes anomalies a caller may want to treat as
// fatal from ones worth only a log line.
type Options struct {
	// ErrorOnInvalidEnumValue promotes an out-of-range enum value on a
	// documented field from a silent Invalid-sentinel substitution to a
	// fatal ContentError.
	ErrorOnInvalidEnumValue bool

	// ErrorOnUnknownGlobalMessage promotes a global message number that
	// is neither a documented kind nor in the manufacturer-specific range
	// from a warning to a fatal ContentError.
	ErrorOnUnknownGlobalMessage bool

	// ErrorOnUndocumentedField promotes a field definition present on a
	// documented message but outside that kind's expected field numbers
	// from a warning to a fatal ContentError.
	ErrorOnUndocumentedField bool

	// Logger receives every warning as it is produced, in addition to the
	// deduplicated slice DecodeMessages returns. A nil Logger discards
	// them.
	Logger log.Logger
}

// warningSink accumulates warning text in first-seen order, deduplicating
// identical messages, and forwards every warning, duplicates included, to a
// logger (spec.md §4.7, component C7).
type warningSink struct {
	seen    map[string]bool
	ordered []string
	helper  *log.Helper
}

func newWarningSink(logger log.Logger) *warningSink {
	var helper *log.Helper
	if logger != nil {
		helper = log.NewHelper(logger)
	}
	return &warningSink{seen: make(map[string]bool), helper: helper}
}

func (s *warningSink) warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if s.helper != nil {
		s.helper.Warn(msg)
	}
	if s.seen[msg] {
		return
	}
	s.seen[msg] = true
	s.ordered = append(s.ordered, msg)
}

func (s *warningSink) messages() []string {
	return s.ordered
}
