package fit

import "testing"

func TestCRCSelfTest(t *testing.T) {
	c := NewCRC()
	if !c.SelfTest() {
		t.Fatal("CRC self-test failed: crcTable does not match the expected checksum of \"123456789\"")
	}
}

func TestCRCResetZeroesState(t *testing.T) {
	c := NewCRC()
	c.Update(0xAB)
	if c.Current() == 0 {
		t.Fatal("expected non-zero CRC state after Update")
	}
	c.Reset()
	if c.Current() != 0 {
		t.Fatalf("expected CRC state 0 after Reset, got %04x", c.Current())
	}
}

func TestCRCDeterministic(t *testing.T) {
	data := []byte{0x0E, 0x10, 0x43, 0x08, 0x01, 0x00, 0x00, 0x00, '.', 'F', 'I', 'T'}
	a, b := NewCRC(), NewCRC()
	for _, c := range data {
		a.Update(c)
		b.Update(c)
	}
	if a.Current() != b.Current() {
		t.Fatalf("identical byte streams produced different CRCs: %04x vs %04x", a.Current(), b.Current())
	}
}
