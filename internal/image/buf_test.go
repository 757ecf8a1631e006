package image

import (
	"errors"
	"testing"
)

func TestNewImageBuf(t *testing.T) {
	buf, err := NewImageBuf(4, 3, FormatRGBA8)
	if err != nil {
		t.Fatalf("NewImageBuf() error = %v", err)
	}
	if buf.Width() != 4 || buf.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", buf.Width(), buf.Height())
	}
	if buf.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", buf.Stride())
	}
	if len(buf.Data()) != 48 {
		t.Errorf("len(Data()) = %d, want 48", len(buf.Data()))
	}

	if _, err := NewImageBuf(0, 3, FormatRGBA8); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewImageBuf(1, 1, formatCount); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("bad format error = %v, want ErrInvalidFormat", err)
	}
}

func TestFromRaw(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	buf, err := FromRaw(data, 3, 2, FormatR8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if got := buf.PixelBytes(2, 1); len(got) != 1 || got[0] != 6 {
		t.Errorf("PixelBytes(2, 1) = %v, want [6]", got)
	}
	if buf.PixelBytes(3, 0) != nil {
		t.Error("PixelBytes out of bounds should be nil")
	}

	if _, err := FromRaw(data, 4, 2, FormatR8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}
