package status

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := New(DRNGError, "rng not initialized")
	if e.Error() != "DRNG_ERROR: rng not initialized" {
		t.Fatalf("unexpected message: %s", e.Error())
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	e := Wrap(BinaryFileIOError, "writing dump", cause)
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause to be unwrappable")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		err  error
		pred func(error) bool
		want bool
	}{
		{New(DRNGError, "x"), IsDRNGError, true},
		{New(NTAG21xUIDError, "x"), IsDRNGError, false},
		{New(NTAG21xUIDError, "x"), IsUIDError, true},
		{New(NTAG21xFixedBytesError, "x"), IsFixedBytesError, true},
		{New(MFCAccessBitsError, "x"), IsAccessBitsError, true},
		{New(AmiiboHMACValidationError, "x"), IsHMACValidationError, true},
		{errors.New("plain"), IsDRNGError, false},
	}
	for i, tt := range tests {
		if got := tt.pred(tt.err); got != tt.want {
			t.Fatalf("case %d: got %v, want %v", i, got, tt.want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 999
	if k.String() != "UNKNOWN_ENUM_ERROR" {
		t.Fatalf("unexpected string for unknown kind: %s", k.String())
	}
}
