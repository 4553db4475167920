package fit

// File header layout constants (spec.md §4.3, component C4). Grounded on
// the teacher's pe.go, which centralizes the PE file's own magic numbers
// and fixed offsets in one place.
const (
	headerSizeMinimum = 12
	headerSizeWithCRC = 14

	// dataTypeMagic is the 4-byte ASCII signature ".FIT" every well-formed
	// file header carries at offset 8.
	dataTypeMagic = ".FIT"

	trailingCRCSize = 2
)

// Record header bit layout (spec.md §4.4.3).
const (
	recordHeaderDefinitionBit     = 0x40
	recordHeaderDeveloperDataBit  = 0x20
	recordHeaderReservedBitNormal = 0x10
	recordHeaderCompressedBit     = 0x80
	recordHeaderLocalTypeMaskNorm = 0x0F
	recordHeaderLocalTypeMaskComp = 0x60
	recordHeaderTimeOffsetMask    = 0x1F
)

// Field definition type-byte layout (spec.md §4.4.4).
const (
	fieldDefEndianAbilityBit = 0x80
	fieldDefReservedBitsMask = 0x60
	fieldDefBaseTypeMask     = 0x1F
)

// localMessageTypeCountNormal is the number of distinct local message
// types a normal record header can address (4 bits).
const localMessageTypeCountNormal = 16

// localMessageTypeCountCompressed is the number of distinct local message
// types a compressed-timestamp header can address (2 bits), per spec.md
// §4.4.3.
const localMessageTypeCountCompressed = 4
