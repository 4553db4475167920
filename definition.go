package fit

import "github.com/gofitkit/fit/wire"

// MessageDefinition captures a definition record in full: the byte order
// and global message number it binds its local type to, and the ordered
// field layouts that every following data record of that local type must
// match (spec.md §4.4.4-4.4.5). Grounded on the teacher's ntheader.go,
// which similarly decodes a header describing the shape of records that
// follow it.
type MessageDefinition struct {
	Architecture        wire.Architecture
	GlobalMessageNumber uint16
	Fields              []wire.FieldDefinition
	DeveloperFields     []wire.DeveloperFieldDefinition
}

func decodeMessageDefinition(r *reader, hasDeveloperData bool) (MessageDefinition, error) {
	reserved, err := r.readByte()
	if err != nil {
		return MessageDefinition{}, err
	}
	if reserved != 0 {
		return MessageDefinition{}, wire.NewContentError("message definition: reserved byte is %d, want 0", reserved)
	}
	archByte, err := r.readByte()
	if err != nil {
		return MessageDefinition{}, err
	}
	if archByte != uint8(wire.LittleEndian) && archByte != uint8(wire.BigEndian) {
		return MessageDefinition{}, wire.NewContentError("message definition: unknown architecture byte %d", archByte)
	}
	arch := wire.Architecture(archByte)

	globalNum, err := r.readU16Arch(arch)
	if err != nil {
		return MessageDefinition{}, err
	}

	numFields, err := r.readByte()
	if err != nil {
		return MessageDefinition{}, err
	}
	fields := make([]wire.FieldDefinition, 0, numFields)
	for i := uint8(0); i < numFields; i++ {
		fd, err := decodeFieldDefinition(r)
		if err != nil {
			return MessageDefinition{}, err
		}
		fields = append(fields, fd)
	}

	var devFields []wire.DeveloperFieldDefinition
	if hasDeveloperData {
		numDev, err := r.readByte()
		if err != nil {
			return MessageDefinition{}, err
		}
		devFields = make([]wire.DeveloperFieldDefinition, 0, numDev)
		for i := uint8(0); i < numDev; i++ {
			num, err := r.readByte()
			if err != nil {
				return MessageDefinition{}, err
			}
			size, err := r.readByte()
			if err != nil {
				return MessageDefinition{}, err
			}
			idx, err := r.readByte()
			if err != nil {
				return MessageDefinition{}, err
			}
			devFields = append(devFields, wire.DeveloperFieldDefinition{
				FieldNumber:        num,
				SizeBytes:          size,
				DeveloperDataIndex: idx,
			})
		}
	}

	return MessageDefinition{
		Architecture:        arch,
		GlobalMessageNumber: globalNum,
		Fields:              fields,
		DeveloperFields:     devFields,
	}, nil
}

func decodeFieldDefinition(r *reader) (wire.FieldDefinition, error) {
	num, err := r.readByte()
	if err != nil {
		return wire.FieldDefinition{}, err
	}
	size, err := r.readByte()
	if err != nil {
		return wire.FieldDefinition{}, err
	}
	typeByte, err := r.readByte()
	if err != nil {
		return wire.FieldDefinition{}, err
	}
	if typeByte&fieldDefReservedBitsMask != 0 {
		return wire.FieldDefinition{}, wire.NewContentError("field definition for field %d: reserved bits set in type byte %08b", num, typeByte)
	}
	return wire.FieldDefinition{
		Number:        num,
		SizeBytes:     size,
		BaseType:      typeByte & fieldDefBaseTypeMask,
		EndianAbility: typeByte&fieldDefEndianAbilityBit != 0,
	}, nil
}

// recordDataSizeBytes is the total byte width of a data record matching
// this definition: the sum of its field and developer-field widths.
func (d MessageDefinition) recordDataSizeBytes() int {
	n := 0
	for _, f := range d.Fields {
		n += int(f.SizeBytes)
	}
	for _, f := range d.DeveloperFields {
		n += int(f.SizeBytes)
	}
	return n
}
