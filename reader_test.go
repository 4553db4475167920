package fit

import (
	"errors"
	"testing"

	"github.com/gofitkit/fit/wire"
)

func TestReaderFeedsEveryByteToCRC(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	crc := NewCRC()
	r := newReader(data, crc)

	if _, err := r.readByte(); err != nil {
		t.Fatalf("readByte: %v", err)
	}
	if _, err := r.readBytes(2); err != nil {
		t.Fatalf("readBytes: %v", err)
	}

	want := NewCRC()
	want.Update(0x01)
	want.Update(0x02)
	want.Update(0x03)
	if crc.Current() != want.Current() {
		t.Fatalf("expected CRC %04x, got %04x", want.Current(), crc.Current())
	}
}

func TestReaderOutOfBoundsReportsContentError(t *testing.T) {
	r := newReader([]byte{0x01}, NewCRC())
	_, err := r.readBytes(5)
	if err == nil {
		t.Fatal("expected an error reading past the end of the buffer")
	}
	var contentErr *wire.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("expected a *wire.ContentError, got %T: %v", err, err)
	}
}

func TestReaderU16ArchBigEndian(t *testing.T) {
	data := []byte{0x00, 0x14} // 20 big-endian, 0x1400 little-endian
	r := newReader(data, NewCRC())
	v, err := r.readU16Arch(wire.BigEndian)
	if err != nil {
		t.Fatalf("readU16Arch: %v", err)
	}
	if v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
}
