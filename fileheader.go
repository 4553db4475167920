package fit

import "github.com/gofitkit/fit/wire"

// FileHeader is the fixed-format preamble every FIT file opens with
// (spec.md §4.3). Grounded on the teacher's dosheader.go, which decodes PE's
// own small fixed-layout preamble ahead of the variable-length body.
type FileHeader struct {
	Size            uint8
	ProtocolVersion uint8
	ProfileVersion  uint16
	DataSize        uint32
	DataType        string
	HasCRC          bool
	CRC             uint16
}

// decodeFileHeader reads either the 12-byte or 14-byte form of the file
// header and validates the ".FIT" signature (spec.md §4.3, edge cases).
func decodeFileHeader(r *reader) (FileHeader, error) {
	size, err := r.readByte()
	if err != nil {
		return FileHeader{}, err
	}
	if size != headerSizeMinimum && size != headerSizeWithCRC {
		return FileHeader{}, wire.NewContentError("unsupported file header size %d: want %d or %d", size, headerSizeMinimum, headerSizeWithCRC)
	}

	protocolVersion, err := r.readByte()
	if err != nil {
		return FileHeader{}, err
	}
	profileVersion, err := r.readU16LE()
	if err != nil {
		return FileHeader{}, err
	}
	dataSize, err := r.readU32LE()
	if err != nil {
		return FileHeader{}, err
	}
	magic, err := r.readBytes(4)
	if err != nil {
		return FileHeader{}, err
	}
	if string(magic) != dataTypeMagic {
		return FileHeader{}, wire.NewContentError("bad file header signature %q: want %q", magic, dataTypeMagic)
	}

	h := FileHeader{
		Size:            size,
		ProtocolVersion: protocolVersion,
		ProfileVersion:  profileVersion,
		DataSize:        dataSize,
		DataType:        string(magic),
	}

	if size == headerSizeWithCRC {
		// The header CRC covers exactly the 12 bytes read above; snapshot
		// the running checksum before consuming the CRC field itself so
		// the comparison excludes the field it verifies (spec.md §4.2,
		// the same "snapshot before read" discipline the trailing file
		// CRC uses).
		expected := r.crc.Current()
		stored, err := r.readU16LE()
		if err != nil {
			return FileHeader{}, err
		}
		// A stored value of zero means the writer declined to compute one;
		// spec.md §4.3 edge cases accept this without comparison.
		if stored != 0 && stored != expected {
			return FileHeader{}, wire.NewContentError("file header CRC mismatch: stored %04x, computed %04x", stored, expected)
		}
		h.HasCRC = true
		h.CRC = stored
	}

	return h, nil
}
