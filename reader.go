package fit

import (
	"encoding/binary"

	"github.com/gofitkit/fit/wire"
)

// reader is the position-tracked byte cursor component C3 describes: every
// byte it hands back has already been folded into the running CRC, and it
// reports out-of-bounds reads as a *wire.ContentError rather than panicking.
// Grounded on the teacher's helper.go, whose ReadUint16/ReadUint32/
// ReadUint64 helpers bounds-check a byte slice against a moving offset
// before decoding each field.
type reader struct {
	data []byte
	pos  int
	crc  *CRC
}

func newReader(data []byte, crc *CRC) *reader {
	return &reader{data: data, crc: crc}
}

func (r *reader) bytesLeft() int {
	return len(r.data) - r.pos
}

func (r *reader) readByte() (byte, error) {
	if r.bytesLeft() < 1 {
		return 0, wire.NewContentError("unexpected end of file at offset %d: need 1 byte, have 0", r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	r.crc.Update(b)
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, wire.NewContentError("negative read length %d at offset %d", n, r.pos)
	}
	if r.bytesLeft() < n {
		return nil, wire.NewContentError("unexpected end of file at offset %d: need %d bytes, have %d", r.pos, n, r.bytesLeft())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	for _, c := range b {
		r.crc.Update(c)
	}
	return b, nil
}

func (r *reader) readU16LE() (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) readU32LE() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readU16Arch reads a 16-bit field whose byte order is given by a message
// definition's architecture byte (spec.md §4.4.5, the global message
// number field).
func (r *reader) readU16Arch(arch wire.Architecture) (uint16, error) {
	b, err := r.readBytes(2)
	if err != nil {
		return 0, err
	}
	if arch == wire.BigEndian {
		return binary.BigEndian.Uint16(b), nil
	}
	return binary.LittleEndian.Uint16(b), nil
}
