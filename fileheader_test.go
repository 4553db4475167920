package fit

import "testing"

func TestDecodeFileHeaderTwelveByteForm(t *testing.T) {
	data := wrapWithHeaderAndCRC(fileIdDefinition())
	crc := NewCRC()
	r := newReader(data, crc)

	h, err := decodeFileHeader(r)
	if err != nil {
		t.Fatalf("decodeFileHeader: %v", err)
	}
	if h.Size != headerSizeMinimum {
		t.Fatalf("expected size %d, got %d", headerSizeMinimum, h.Size)
	}
	if h.HasCRC {
		t.Fatal("expected HasCRC false for a 12-byte header")
	}
	if h.DataType != dataTypeMagic {
		t.Fatalf("expected data type %q, got %q", dataTypeMagic, h.DataType)
	}
}

func TestDecodeFileHeaderRejectsUnsupportedSize(t *testing.T) {
	data := append([]byte{13, 0x10, 0, 0, 0, 0, 0, 0}, []byte(dataTypeMagic)...)
	r := newReader(data, NewCRC())

	if _, err := decodeFileHeader(r); err == nil {
		t.Fatal("expected an error for an unsupported header size")
	}
}

func TestDecodeFileHeaderRejectsMismatchedCRC(t *testing.T) {
	header := make([]byte, 14)
	header[0] = headerSizeWithCRC
	copy(header[8:12], dataTypeMagic)
	header[12], header[13] = 0xAB, 0xCD // a nonzero, wrong CRC

	r := newReader(header, NewCRC())
	if _, err := decodeFileHeader(r); err == nil {
		t.Fatal("expected an error for a nonzero, incorrect header CRC")
	}
}
