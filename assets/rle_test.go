package assets

import (
	"reflect"
	"testing"
)

func TestDecodeRLELiteral(t *testing.T) {
	got, err := DecodeRLE([]byte{0x01, 0x02, 0x00, 0x03})
	if err != nil {
		t.Fatalf("DecodeRLE() error = %v", err)
	}
	want := []byte{0x01, 0x02, 0x00, 0x03}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRLE() = %v, want %v", got, want)
	}
}

func TestDecodeRLEIncrementingRun(t *testing.T) {
	// 0xFF, 0x43, 0x10 -> emit 0x10, 0x11, 0x12 (n=3)
	got, err := DecodeRLE([]byte{0xFF, 0x43, 0x10})
	if err != nil {
		t.Fatalf("DecodeRLE() error = %v", err)
	}
	want := []byte{0x10, 0x11, 0x12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRLE() = %v, want %v", got, want)
	}
}

func TestDecodeRLERepeatRun(t *testing.T) {
	// 0xFF, 0x83, 0x20 -> emit 0x20 three times (r&0x7F = 3)
	got, err := DecodeRLE([]byte{0xFF, 0x83, 0x20})
	if err != nil {
		t.Fatalf("DecodeRLE() error = %v", err)
	}
	want := []byte{0x20, 0x20, 0x20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRLE() = %v, want %v", got, want)
	}
}

func TestDecodeRLEEscapedFF(t *testing.T) {
	got, err := DecodeRLE([]byte{0xFF, 0xFF})
	if err != nil {
		t.Fatalf("DecodeRLE() error = %v", err)
	}
	want := []byte{0xFF}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRLE() = %v, want %v", got, want)
	}
}

func TestDecodeRLETransparentZeroPassesThrough(t *testing.T) {
	got, err := DecodeRLE([]byte{0x00, 0x00})
	if err != nil {
		t.Fatalf("DecodeRLE() error = %v", err)
	}
	want := []byte{0x00, 0x00}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeRLE() = %v, want %v", got, want)
	}
}

func TestDecodeRLETruncated(t *testing.T) {
	if _, err := DecodeRLE([]byte{0xFF}); err == nil {
		t.Errorf("DecodeRLE() expected error for truncated escape")
	}
	if _, err := DecodeRLE([]byte{0xFF, 0x43}); err == nil {
		t.Errorf("DecodeRLE() expected error for truncated run")
	}
}

func TestDecodeRLEInvalidControl(t *testing.T) {
	if _, err := DecodeRLE([]byte{0xFF, 0x50, 0x00}); err == nil {
		t.Errorf("DecodeRLE() expected error for control byte 0x50")
	}
}
