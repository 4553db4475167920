package fit

import (
	"github.com/gofitkit/fit/profile"
	"github.com/gofitkit/fit/wire"
)

// MessageVariant tags which arm of the TypedMessage sum type a given
// message occupies (spec.md §9 "Design Notes").
type MessageVariant int

const (
	// Documented means GlobalMessageNumber matched a known profile.Kind
	// and Mesg holds the typed result of that kind's constructor.
	Documented MessageVariant = iota
	// ManufacturerSpecific means GlobalMessageNumber fell in the
	// manufacturer-reserved range (0xFF00-0xFFFE); Mesg is nil.
	ManufacturerSpecific
	// Undocumented means GlobalMessageNumber named neither a known kind
	// nor the manufacturer range; Mesg is nil.
	Undocumented
)

func (v MessageVariant) String() string {
	switch v {
	case Documented:
		return "documented"
	case ManufacturerSpecific:
		return "manufacturer_specific"
	case Undocumented:
		return "undocumented"
	default:
		return "unknown"
	}
}

// CompressedTimestamp records a compressed-timestamp header's raw offset
// alongside the reference the resolver held at the moment it was seen.
// Resolving the two into an absolute timestamp is left to the caller
// (DESIGN.md, open-question decision (a)).
type CompressedTimestamp struct {
	Offset       uint8
	Reference    uint32
	HasReference bool
}

// TypedMessage is the output of component C6: one fully classified
// message, with its documented fields (if any) resolved into a typed
// struct and its developer and undocumented fields carried alongside it
// rather than folded into the per-kind struct (spec.md §9 "Design Notes":
// "each carrying common developer-field and undocumented-field lists").
type TypedMessage struct {
	Variant             MessageVariant
	GlobalMessageNumber uint16
	Mesg                profile.Mesg
	DeveloperFields     []wire.DeveloperMessageField
	UndocumentedFields  []wire.UndocumentedMessageField
	CompressedTimestamp *CompressedTimestamp
}
