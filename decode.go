package fit

import "github.com/gofitkit/fit/wire"

// MessageContent is a data record's raw, still-undecoded payload: one byte
// slice per field definition and developer field definition in effect for
// its local message type at the time it was read (spec.md §4.4.6 — the
// byte-level decoder stops short of mapping these to field numbers or base
// types; that is the resolver's job).
type MessageContent struct {
	Definition         MessageDefinition
	FieldData          [][]byte
	DeveloperFieldData [][]byte
}

// Record is one definition or data record from the stream, tagged by its
// header.
type Record struct {
	Header     RecordHeader
	Definition *MessageDefinition
	Content    *MessageContent
}

// RawFile is the byte-level result of component C4: a parsed header and the
// ordered record stream that followed it, with the trailing CRC already
// verified. Grounded on the teacher's imports.go, whose top-level Parse
// walks a directory's entries into a flat decoded slice the same way this
// walks the record stream.
type RawFile struct {
	Header  FileHeader
	Records []Record
	CRC     uint16
}

// localTable tracks each local message type's most recent definition, as
// spec.md §4.4.1 describes: a table of size 16, read and overwritten by
// local message type as definitions and data records stream past.
type localTable map[uint8]MessageDefinition

// DefinitionAt returns the last definition bound to localID over the
// course of decoding, mirroring the rebinding table's final state
// (SPEC_FULL.md §6.1). It replays the record stream rather than keeping a
// second live table, since RawFile already retains every record.
func (f *RawFile) DefinitionAt(localID uint8) (MessageDefinition, bool) {
	var (
		def   MessageDefinition
		found bool
	)
	for _, rec := range f.Records {
		if rec.Header.Compressed || rec.Header.LocalMessageType != localID {
			continue
		}
		if rec.Header.IsDefinition && rec.Definition != nil {
			def = *rec.Definition
			found = true
		}
	}
	return def, found
}

// DecodeFile runs the byte-level stream decoder (component C4) over a
// complete in-memory FIT file: file header, record stream, trailing CRC.
func DecodeFile(data []byte) (*RawFile, error) {
	crc := NewCRC()
	r := newReader(data, crc)

	header, err := decodeFileHeader(r)
	if err != nil {
		return nil, err
	}

	bodyStart := r.pos
	table := make(localTable)
	var records []Record

	for r.pos-bodyStart < int(header.DataSize) {
		rec, err := decodeRecord(r, table)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if r.pos-bodyStart != int(header.DataSize) {
		return nil, wire.NewContentError("record stream overran declared data size: consumed %d bytes, header declared %d", r.pos-bodyStart, header.DataSize)
	}

	expected := r.crc.Current()
	stored, err := r.readU16LE()
	if err != nil {
		return nil, err
	}
	if stored != expected {
		return nil, wire.NewContentError("file CRC mismatch: stored %04x, computed %04x", stored, expected)
	}
	r.crc.Reset()

	return &RawFile{Header: header, Records: records, CRC: stored}, nil
}

func decodeRecord(r *reader, table localTable) (Record, error) {
	b, err := r.readByte()
	if err != nil {
		return Record{}, err
	}
	hdr, err := decodeRecordHeader(b)
	if err != nil {
		return Record{}, err
	}

	if hdr.IsDefinition {
		def, err := decodeMessageDefinition(r, hdr.HasDeveloperData)
		if err != nil {
			return Record{}, err
		}
		table[hdr.LocalMessageType] = def
		return Record{Header: hdr, Definition: &def}, nil
	}

	def, ok := table[hdr.LocalMessageType]
	if !ok {
		return Record{}, wire.NewContentError("data record references undefined local message type %d", hdr.LocalMessageType)
	}

	fieldData := make([][]byte, len(def.Fields))
	for i, fd := range def.Fields {
		b, err := r.readBytes(int(fd.SizeBytes))
		if err != nil {
			return Record{}, err
		}
		fieldData[i] = b
	}
	devData := make([][]byte, len(def.DeveloperFields))
	for i, fd := range def.DeveloperFields {
		b, err := r.readBytes(int(fd.SizeBytes))
		if err != nil {
			return Record{}, err
		}
		devData[i] = b
	}

	return Record{
		Header: hdr,
		Content: &MessageContent{
			Definition:         def,
			FieldData:          fieldData,
			DeveloperFieldData: devData,
		},
	}, nil
}
