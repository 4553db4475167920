package fit

import "testing"

func TestDecodeFileMinimalWellFormed(t *testing.T) {
	body := append(fileIdDefinition(), fileIdData()...)
	data := wrapWithHeaderAndCRC(body)

	raw, err := DecodeFile(data)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if raw.Header.Size != headerSizeMinimum {
		t.Fatalf("expected 12-byte header, got size %d", raw.Header.Size)
	}
	if len(raw.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raw.Records))
	}
	if !raw.Records[0].Header.IsDefinition {
		t.Fatal("expected first record to be a definition")
	}
	if raw.Records[1].Content == nil {
		t.Fatal("expected second record to carry content")
	}
}

func TestDecodeFileHeaderCRCZeroIsAccepted(t *testing.T) {
	body := append(fileIdDefinition(), fileIdData()...)

	header := make([]byte, 14)
	header[0] = headerSizeWithCRC
	header[1] = 0x10
	header[4] = byte(len(body))
	copy(header[8:12], dataTypeMagic)
	// header[12:14] left as zero: the allow-zero concession.

	full := append(header, body...)
	crc := NewCRC()
	for _, b := range full {
		crc.Update(b)
	}
	crcLE := crc.Current()
	full = append(full, byte(crcLE), byte(crcLE>>8))

	raw, err := DecodeFile(full)
	if err != nil {
		t.Fatalf("DecodeFile with zero header CRC: %v", err)
	}
	if !raw.Header.HasCRC {
		t.Fatal("expected HasCRC true for a 14-byte header")
	}
}

func TestDecodeFileBadMagicRejected(t *testing.T) {
	body := fileIdDefinition()
	data := wrapWithHeaderAndCRC(body)
	// Corrupt the ".FIT" signature at offset 8.
	data[8] = 'X'

	if _, err := DecodeFile(data); err == nil {
		t.Fatal("expected an error for a corrupted file signature")
	}
}

func TestDecodeFileCRCMismatchRejected(t *testing.T) {
	body := append(fileIdDefinition(), fileIdData()...)
	data := wrapWithHeaderAndCRC(body)
	data[len(data)-1] ^= 0xFF

	if _, err := DecodeFile(data); err == nil {
		t.Fatal("expected an error for a mismatched trailing CRC")
	}
}

func TestDecodeFileUndefinedLocalTypeRejected(t *testing.T) {
	// A data record for local type 0 with no preceding definition.
	body := fileIdData()
	data := wrapWithHeaderAndCRC(body)

	if _, err := DecodeFile(data); err == nil {
		t.Fatal("expected an error for a data record with no matching definition")
	}
}

func TestDecodeFileRedefinitionRebindsLocalType(t *testing.T) {
	body := append(fileIdDefinition(), fileIdDefinition()...)
	body = append(body, fileIdData()...)
	data := wrapWithHeaderAndCRC(body)

	raw, err := DecodeFile(data)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if len(raw.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(raw.Records))
	}
	def, ok := raw.DefinitionAt(0)
	if !ok {
		t.Fatal("expected a definition bound to local type 0")
	}
	if def.GlobalMessageNumber != 0 {
		t.Fatalf("expected global message number 0, got %d", def.GlobalMessageNumber)
	}
}

func TestDecodeFileReservedBitSetRejected(t *testing.T) {
	body := []byte{0x10} // bit 4 set on what would be a normal header
	data := wrapWithHeaderAndCRC(body)

	if _, err := DecodeFile(data); err == nil {
		t.Fatal("expected an error for a record header with the reserved bit set")
	}
}
