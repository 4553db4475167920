package fit

import (
	"github.com/gofitkit/fit/profile"
	"github.com/gofitkit/fit/wire"
)

// Field numbers 253 (timestamp), 254 (message_index) and 250 (part_index)
// carry a fixed base type on every documented message that uses them,
// regardless of which message it is (spec.md §4.5 "special-field typing").
const (
	fieldNumTimestamp    = 253
	fieldNumMessageIndex = 254
	fieldNumPartIndex    = 250

	wireBaseTypeUint16 = 4
	wireBaseTypeUint32 = 6
)

// DecodeMessages runs both passes of the decoder: component C4's
// byte-level stream decode, followed by component C6's classification of
// every data record into a TypedMessage. It returns the deduplicated,
// first-seen-order warning text alongside the messages (spec.md §4.5-4.7).
// Grounded on the teacher's symbol.go, which resolves a raw table of
// entries (COFF symbols) into a richer per-entry classification in a
// second pass over data a first pass already extracted.
func DecodeMessages(data []byte, opts Options) ([]TypedMessage, []string, error) {
	raw, err := DecodeFile(data)
	if err != nil {
		return nil, nil, err
	}

	sink := newWarningSink(opts.Logger)
	var (
		messages            []TypedMessage
		mostRecentTimestamp *uint32
	)

	for _, rec := range raw.Records {
		if rec.Header.IsDefinition {
			if rec.Definition != nil {
				if err := reportGlobalMessageNumber(rec.Definition.GlobalMessageNumber, opts, sink); err != nil {
					return nil, nil, err
				}
			}
			continue
		}
		if rec.Content == nil {
			continue
		}
		def := rec.Content.Definition

		if err := checkSpecialFieldTypes(def); err != nil {
			return nil, nil, err
		}

		decoded := make(map[uint8]wire.Value, len(def.Fields))
		for i, fd := range def.Fields {
			v, err := wire.Decode(fd.BaseType, rec.Content.FieldData[i], def.Architecture)
			if err != nil {
				return nil, nil, err
			}
			decoded[fd.Number] = v
		}

		var devFields []wire.DeveloperMessageField
		for i, fd := range def.DeveloperFields {
			devFields = append(devFields, wire.DeveloperMessageField{
				Definition: fd,
				RawBytes:   rec.Content.DeveloperFieldData[i],
			})
		}

		tm, err := classify(def, decoded, devFields, opts, sink)
		if err != nil {
			return nil, nil, err
		}

		if rec.Header.Compressed {
			ct := &CompressedTimestamp{Offset: rec.Header.TimeOffset}
			if mostRecentTimestamp != nil {
				ct.Reference = *mostRecentTimestamp
				ct.HasReference = true
			}
			tm.CompressedTimestamp = ct
		}

		if ts, ok := decoded[fieldNumTimestamp]; ok && !ts.IsArray {
			if v, ok := ts.Scalar.(uint32); ok {
				t := v
				mostRecentTimestamp = &t
			}
		}

		messages = append(messages, tm)
	}

	return messages, sink.messages(), nil
}

// reportGlobalMessageNumber classifies a definition's global message number
// as documented, manufacturer-specific, or unknown, and reports the latter
// two through the warning channel (or promotes the unknown case to a fatal
// ContentError under Options.ErrorOnUnknownGlobalMessage). It runs once per
// definition record, independent of whether any data record ever
// references that definition's local message type (spec.md §4.5
// "Definition record").
func reportGlobalMessageNumber(global uint16, opts Options, sink *warningSink) error {
	if profile.IsManufacturerSpecific(global) {
		sink.warnf("global message %d is in the manufacturer-specific range", global)
		return nil
	}
	if _, ok := profile.KindFor(global); !ok {
		if opts.ErrorOnUnknownGlobalMessage {
			return wire.NewContentError("global message %d is not a documented message number", global)
		}
		sink.warnf("global message %d is not a documented message number", global)
	}
	return nil
}

// checkSpecialFieldTypes enforces spec.md §4.5's fixed typing for field
// numbers 253, 254 and 250, wherever they occur.
func checkSpecialFieldTypes(def MessageDefinition) error {
	for _, fd := range def.Fields {
		var want uint8
		switch fd.Number {
		case fieldNumTimestamp, fieldNumPartIndex:
			want = wireBaseTypeUint32
		case fieldNumMessageIndex:
			want = wireBaseTypeUint16
		default:
			continue
		}
		if fd.BaseType != want {
			return wire.NewContentError("field %d: base type %d does not match its fixed type %d", fd.Number, fd.BaseType, want)
		}
	}
	return nil
}

// classify builds the TypedMessage for one data record. The global message
// number's documented/manufacturer-specific/unknown status has already
// been reported through the warning channel when its definition record was
// parsed (reportGlobalMessageNumber); this only needs to pick the right
// variant and, for documented messages, construct the typed payload.
func classify(def MessageDefinition, decoded map[uint8]wire.Value, devFields []wire.DeveloperMessageField, opts Options, sink *warningSink) (TypedMessage, error) {
	global := def.GlobalMessageNumber

	if profile.IsManufacturerSpecific(global) {
		return TypedMessage{
			Variant:             ManufacturerSpecific,
			GlobalMessageNumber: global,
			DeveloperFields:     devFields,
			UndocumentedFields:  toUndocumented(def, decoded, nil),
		}, nil
	}

	kind, ok := profile.KindFor(global)
	if !ok {
		return TypedMessage{
			Variant:             Undocumented,
			GlobalMessageNumber: global,
			DeveloperFields:     devFields,
			UndocumentedFields:  toUndocumented(def, decoded, nil),
		}, nil
	}

	expected := make(map[uint8]bool, len(kind.ExpectedFieldNumbers))
	for _, n := range kind.ExpectedFieldNumbers {
		expected[n] = true
	}
	extracted := make(map[uint8]wire.Value)
	var leftover []uint8
	for _, fd := range def.Fields {
		if expected[fd.Number] {
			extracted[fd.Number] = decoded[fd.Number]
		} else {
			leftover = append(leftover, fd.Number)
		}
	}
	if len(leftover) > 0 {
		if opts.ErrorOnUndocumentedField {
			return TypedMessage{}, wire.NewContentError("message %d: field(s) %v are not documented for this message", global, leftover)
		}
		sink.warnf("message %d: field(s) %v are not documented for this message", global, leftover)
	}

	mesg, err := kind.New(extracted, devFields, toUndocumented(def, decoded, leftover), opts.ErrorOnInvalidEnumValue)
	if err != nil {
		return TypedMessage{}, err
	}

	return TypedMessage{
		Variant:             Documented,
		GlobalMessageNumber: global,
		Mesg:                mesg,
		DeveloperFields:     devFields,
		UndocumentedFields:  toUndocumented(def, decoded, leftover),
	}, nil
}

// toUndocumented builds the wire-level undocumented field list for a
// record. When only is nil, every field definition on the message is
// undocumented (manufacturer-specific and unrecognized messages); when
// only is non-nil, just the numbers it names are (documented messages
// with leftover fields).
func toUndocumented(def MessageDefinition, decoded map[uint8]wire.Value, only []uint8) []wire.UndocumentedMessageField {
	var numbers map[uint8]bool
	if only != nil {
		numbers = make(map[uint8]bool, len(only))
		for _, n := range only {
			numbers[n] = true
		}
	}

	var out []wire.UndocumentedMessageField
	for _, fd := range def.Fields {
		if only != nil && !numbers[fd.Number] {
			continue
		}
		out = append(out, wire.UndocumentedMessageField{
			Definition: fd,
			Value:      decoded[fd.Number],
		})
	}
	return out
}
