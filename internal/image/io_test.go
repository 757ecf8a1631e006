package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeFile(t *testing.T, name string, encode func(*bytes.Buffer) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadFormats(t *testing.T) {
	src := solid(3, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	tests := []struct {
		name   string
		file   string
		encode func(*bytes.Buffer) error
	}{
		{"png", "a.png", func(b *bytes.Buffer) error { return png.Encode(b, src) }},
		{"bmp", "a.bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", "a.tif", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.encode)
			img, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Fatalf("size = %v, want 3x2", img.Bounds())
			}
			if got := img.NRGBAAt(2, 1); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 255}) {
				t.Errorf("pixel = %v, want {200 100 50 255}", got)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}

	path := filepath.Join(t.TempDir(), "junk.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, image.ErrFormat) {
		t.Errorf("junk file error = %v, want image.ErrFormat", err)
	}

	if _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("empty data error = %v, want ErrEmptyData", err)
	}
}

func TestToNRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(1, 1, 3, 3))
	gray.SetGray(1, 1, color.Gray{Y: 128})

	got := ToNRGBA(gray)
	if got.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds = %v, want (0,0)-(2,2)", got.Bounds())
	}
	if c := got.NRGBAAt(0, 0); c != (color.NRGBA{R: 128, G: 128, B: 128, A: 255}) {
		t.Errorf("pixel = %v, want gray 128", c)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	if ToNRGBA(nrgba) != nrgba {
		t.Error("zero-origin NRGBA should be returned as is")
	}
}
