package fit

import "testing"

func TestMessageVariantString(t *testing.T) {
	cases := map[MessageVariant]string{
		Documented:           "documented",
		ManufacturerSpecific: "manufacturer_specific",
		Undocumented:         "undocumented",
		MessageVariant(99):   "unknown",
	}
	for variant, want := range cases {
		if got := variant.String(); got != want {
			t.Errorf("variant %d: got %q, want %q", variant, got, want)
		}
	}
}
