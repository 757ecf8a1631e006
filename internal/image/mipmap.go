package image

import (
	"image"
	"math/bits"

	"golang.org/x/image/draw"
)

// MipLevelCount returns the length of a full mip chain for a width x height
// image: 1 + floor(log2(max(width, height))). Non-positive sizes yield 0.
func MipLevelCount(width, height int) int {
	m := max(width, height)
	if m <= 0 {
		return 0
	}
	return bits.Len(uint(m))
}

// GenerateMipmaps builds the full mip chain of src. Level 0 is src itself;
// each following level halves both dimensions (rounding down, never below
// one texel) and is resampled from the previous level with scaler.
func GenerateMipmaps(src *image.NRGBA, scaler draw.Scaler) []*image.NRGBA {
	b := src.Bounds()
	n := MipLevelCount(b.Dx(), b.Dy())
	if n == 0 {
		return nil
	}

	levels := make([]*image.NRGBA, n)
	levels[0] = src
	for i := 1; i < n; i++ {
		prev := levels[i-1]
		pb := prev.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, max(1, pb.Dx()/2), max(1, pb.Dy()/2)))
		scaler.Scale(dst, dst.Bounds(), prev, pb, draw.Src, nil)
		levels[i] = dst
	}
	return levels
}

// LevelSize returns the dimensions of mip level n of a width x height image.
func LevelSize(width, height, n int) (int, int) {
	return max(1, width>>n), max(1, height>>n)
}
