package fit

import "github.com/gofitkit/fit/wire"

// RecordHeader is the one-byte tag that precedes every record in the
// stream and tells the decoder how to interpret what follows (spec.md
// §4.4.3). Grounded on the teacher's ntheader.go, which decodes a small
// bitfield-packed header ahead of a variable-shaped body in the same way.
type RecordHeader struct {
	IsDefinition     bool
	HasDeveloperData bool
	Compressed       bool

	// LocalMessageType is 0-15 for a normal header, 0-3 for a compressed
	// one (spec.md §4.4.3).
	LocalMessageType uint8

	// TimeOffset is only meaningful when Compressed is true.
	TimeOffset uint8
}

// decodeRecordHeader classifies a single header byte. It never resolves a
// compressed header's time offset against a reference timestamp; that is
// the resolver's job (spec.md §9 "Design Notes", compressed timestamps),
// since the byte-level decoder never looks at field values.
func decodeRecordHeader(b byte) (RecordHeader, error) {
	if b&recordHeaderCompressedBit != 0 {
		return RecordHeader{
			Compressed:       true,
			LocalMessageType: (b & recordHeaderLocalTypeMaskComp) >> 5,
			TimeOffset:       b & recordHeaderTimeOffsetMask,
		}, nil
	}

	if b&recordHeaderReservedBitNormal != 0 {
		return RecordHeader{}, wire.NewContentError("record header %08b: reserved bit 4 is set", b)
	}

	return RecordHeader{
		IsDefinition:     b&recordHeaderDefinitionBit != 0,
		HasDeveloperData: b&recordHeaderDeveloperDataBit != 0,
		LocalMessageType: b & recordHeaderLocalTypeMaskNorm,
	}, nil
}
