package fit

import (
	"errors"
	"testing"

	"github.com/gofitkit/fit/wire"
)

func TestDecodeMessageDefinitionNoDeveloperFields(t *testing.T) {
	data := fileIdDefinition()[1:] // strip the record header byte
	r := newReader(data, NewCRC())

	def, err := decodeMessageDefinition(r, false)
	if err != nil {
		t.Fatalf("decodeMessageDefinition: %v", err)
	}
	if def.Architecture != wire.LittleEndian {
		t.Fatalf("expected little-endian architecture, got %v", def.Architecture)
	}
	if def.GlobalMessageNumber != 0 {
		t.Fatalf("expected global message number 0, got %d", def.GlobalMessageNumber)
	}
	if len(def.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(def.Fields))
	}
	if def.Fields[1].BaseType != 4 {
		t.Fatalf("expected field 1 base type 4 (uint16), got %d", def.Fields[1].BaseType)
	}
	if def.recordDataSizeBytes() != 3 {
		t.Fatalf("expected data record size 3, got %d", def.recordDataSizeBytes())
	}
}

func TestDecodeMessageDefinitionWithDeveloperFields(t *testing.T) {
	data := []byte{
		0x00,       // reserved
		0x00,       // little-endian
		0x14, 0x00, // record
		0x00, // 0 regular fields
		0x01, // 1 developer field
		0x00, 0x02, 0x00,
	}
	r := newReader(data, NewCRC())
	def, err := decodeMessageDefinition(r, true)
	if err != nil {
		t.Fatalf("decodeMessageDefinition: %v", err)
	}
	if len(def.DeveloperFields) != 1 {
		t.Fatalf("expected 1 developer field, got %d", len(def.DeveloperFields))
	}
	if def.DeveloperFields[0].SizeBytes != 2 {
		t.Fatalf("expected size 2, got %d", def.DeveloperFields[0].SizeBytes)
	}
}

func TestDecodeFieldDefinitionRejectsReservedBits(t *testing.T) {
	data := []byte{0x00, 0x01, 0x20} // reserved bits set in type byte
	r := newReader(data, NewCRC())
	if _, err := decodeFieldDefinition(r); err == nil {
		t.Fatal("expected an error for reserved bits set in a field definition type byte")
	}
}

func TestDecodeMessageDefinitionRejectsNonzeroReservedByte(t *testing.T) {
	data := []byte{
		0x01,       // reserved byte, should be 0
		0x00,       // little-endian
		0x00, 0x00, // record
		0x00, // 0 fields
	}
	r := newReader(data, NewCRC())
	_, err := decodeMessageDefinition(r, false)
	if err == nil {
		t.Fatal("expected an error for a nonzero message definition reserved byte")
	}
	var contentErr *wire.ContentError
	if !errors.As(err, &contentErr) {
		t.Fatalf("expected a *wire.ContentError, got %T: %v", err, err)
	}
}
