package fit

import "testing"

func TestFileNewBytesDecode(t *testing.T) {
	body := append(fileIdDefinition(), fileIdData()...)
	data := wrapWithHeaderAndCRC(body)

	f, err := NewBytes(data, Options{})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	defer f.Close()

	messages, _, err := f.Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if len(f.Messages) != 1 {
		t.Fatal("expected Decode to store its result on the File")
	}
}

func TestFileDecodeRaw(t *testing.T) {
	body := append(fileIdDefinition(), fileIdData()...)
	data := wrapWithHeaderAndCRC(body)

	f, err := NewBytes(data, Options{})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	defer f.Close()

	raw, err := f.DecodeRaw()
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if len(raw.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(raw.Records))
	}
}

func TestFileCloseWithoutMappingIsNoop(t *testing.T) {
	f, err := NewBytes([]byte{}, Options{})
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
