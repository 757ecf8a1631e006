package image

import (
	"encoding/binary"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestPack(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	tests := []struct {
		name   string
		format Format
		want   [2][]byte
	}{
		{"rgba8", FormatRGBA8, [2][]byte{{255, 0, 0, 255}, {10, 20, 30, 40}}},
		{"bgra8", FormatBGRA8, [2][]byte{{0, 0, 255, 255}, {30, 20, 10, 40}}},
		{"r8", FormatR8, [2][]byte{{76}, {18}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Pack(src, tt.format)
			if err != nil {
				t.Fatalf("Pack() error = %v", err)
			}
			for x, want := range tt.want {
				got := buf.PixelBytes(x, 0)
				if string(got) != string(want) {
					t.Errorf("texel %d = %v, want %v", x, got, want)
				}
			}
		})
	}
}

func TestPackFloat(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 51, A: 255})

	buf, err := Pack(src, FormatRGBA32F)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	texel := buf.PixelBytes(0, 0)
	want := []float32{1, 0, 0.2, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(texel[i*4:]))
		if math.Abs(float64(got-w)) > 1e-6 {
			t.Errorf("channel %d = %v, want %v", i, got, w)
		}
	}
}

func TestPackSubImage(t *testing.T) {
	full := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	full.SetNRGBA(2, 2, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	sub := full.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)

	buf, err := Pack(sub, FormatRGBA8)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}
	if buf.Width() != 2 || buf.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", buf.Width(), buf.Height())
	}
	if got := buf.PixelBytes(0, 0); string(got) != string([]byte{9, 8, 7, 6}) {
		t.Errorf("texel (0,0) = %v, want [9 8 7 6]", got)
	}
}
