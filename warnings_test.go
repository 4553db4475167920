package fit

import "testing"

func TestWarningSinkDeduplicatesInFirstSeenOrder(t *testing.T) {
	s := newWarningSink(nil)
	s.warnf("global message %d is undocumented", 2002)
	s.warnf("global message %d is undocumented", 9999)
	s.warnf("global message %d is undocumented", 2002) // duplicate, dropped

	got := s.messages()
	if len(got) != 2 {
		t.Fatalf("expected 2 unique warnings, got %d: %v", len(got), got)
	}
	if got[0] != "global message 2002 is undocumented" {
		t.Fatalf("expected first warning to mention 2002, got %q", got[0])
	}
}

func TestWarningSinkNilLoggerDoesNotPanic(t *testing.T) {
	s := newWarningSink(nil)
	s.warnf("no logger attached")
	if len(s.messages()) != 1 {
		t.Fatal("expected the warning to still be recorded")
	}
}
