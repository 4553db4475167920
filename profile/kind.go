package profile

import "github.com/gofitkit/fit/wire"

// Mesg is implemented by every concrete, generated-style message type in
// this catalog (spec.md §3 "Typed message", Documented variant payload).
type Mesg interface {
	MesgNum() MesgNum
}

// Kind is the per-message descriptor the resolver consults (spec.md §4.6,
// component C5, points 3-4).
type Kind struct {
	Num MesgNum

	// ExpectedFieldNumbers lists, in the catalog's canonical order, the
	// field numbers this kind extracts into its typed struct. Any field
	// definition whose number is absent from this list is reported as an
	// UndocumentedMessageField (spec.md §4.5 "Partitioning").
	ExpectedFieldNumbers []uint8

	// New builds the typed message from the fields the resolver has
	// already decoded and partitioned. extracted is keyed by field number
	// and restricted to ExpectedFieldNumbers; a number with no matching
	// field definition in the wire message is simply absent from the map.
	// errorOnInvalidEnum controls how this kind's own enum-valued fields
	// react to a raw value outside their documented value set (spec.md
	// §4.5 "Enum validation").
	New func(extracted map[uint8]wire.Value, developer []wire.DeveloperMessageField, undocumented []wire.UndocumentedMessageField, errorOnInvalidEnum bool) (Mesg, error)
}

// KindFor returns the descriptor for a documented global message number.
func KindFor(num uint16) (Kind, bool) {
	k, ok := catalog[MesgNum(num)]
	return k, ok
}

var catalog = map[MesgNum]Kind{
	MesgNumFileId:           fileIdKind,
	MesgNumDeviceInfo:       deviceInfoKind,
	MesgNumEvent:            eventKind,
	MesgNumRecord:           recordKind,
	MesgNumLap:              lapKind,
	MesgNumSession:          sessionKind,
	MesgNumActivity:         activityKind,
	MesgNumFileCreator:      fileCreatorKind,
	MesgNumFieldDescription: inertKind(MesgNumFieldDescription),
	MesgNumDeveloperDataId:  inertKind(MesgNumDeveloperDataId),
}

// genericMesg backs the two developer-data description messages
// (SPEC_FULL.md §6.3): documented enough not to be misreported as
// undocumented or manufacturer-specific, but with no extracted fields of
// their own, so every field they carry surfaces as an
// UndocumentedMessageField.
type genericMesg struct {
	num MesgNum
}

func (m genericMesg) MesgNum() MesgNum { return m.num }

func inertKind(num MesgNum) Kind {
	return Kind{
		Num:                  num,
		ExpectedFieldNumbers: nil,
		New: func(map[uint8]wire.Value, []wire.DeveloperMessageField, []wire.UndocumentedMessageField, bool) (Mesg, error) {
			return genericMesg{num: num}, nil
		},
	}
}

// castEnum looks raw up in valid; on failure it either returns invalid
// (tolerant mode) or a ContentError naming field (strict mode), per
// spec.md §4.5 "Enum validation".
func castEnum(field string, raw uint8, valid func(uint8) bool, invalid uint8, strict bool) (uint8, error) {
	if valid(raw) {
		return raw, nil
	}
	if strict {
		return 0, wire.NewContentError("field %s: value %d is not a documented enum value", field, raw)
	}
	return invalid, nil
}

// u8 extracts a uint8 scalar from a decoded field value, returning 0 and
// false when the field is absent, is an array, or is not a uint8.
func u8(fields map[uint8]wire.Value, num uint8) (uint8, bool) {
	v, ok := fields[num]
	if !ok || v.IsArray {
		return 0, false
	}
	scalar, ok := v.Scalar.(uint8)
	return scalar, ok
}

func u16(fields map[uint8]wire.Value, num uint8) (uint16, bool) {
	v, ok := fields[num]
	if !ok || v.IsArray {
		return 0, false
	}
	scalar, ok := v.Scalar.(uint16)
	return scalar, ok
}

func u32(fields map[uint8]wire.Value, num uint8) (uint32, bool) {
	v, ok := fields[num]
	if !ok || v.IsArray {
		return 0, false
	}
	scalar, ok := v.Scalar.(uint32)
	return scalar, ok
}

func i32(fields map[uint8]wire.Value, num uint8) (int32, bool) {
	v, ok := fields[num]
	if !ok || v.IsArray {
		return 0, false
	}
	scalar, ok := v.Scalar.(int32)
	return scalar, ok
}

func str(fields map[uint8]wire.Value, num uint8) (string, bool) {
	v, ok := fields[num]
	if !ok {
		return "", false
	}
	return v.Text, true
}
