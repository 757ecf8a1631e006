package gfxutil

import (
	stdimage "image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/gfxutil/internal/image"
)

// ErrUnsupportedFormat is returned when FileDecoder has no texel packing
// for the requested texture format.
var ErrUnsupportedFormat = image.ErrUnsupportedFormat

// DecodedImage is one decoded image file with every mip level packed for
// upload.
type DecodedImage struct {
	Width  int
	Height int
	Format gputypes.TextureFormat

	// Levels holds tightly packed texels per mip level, level 0 first.
	Levels [][]byte
}

// MipLevels returns the number of mip levels.
func (d *DecodedImage) MipLevels() int {
	return len(d.Levels)
}

// LevelSize returns the dimensions of mip level n.
func (d *DecodedImage) LevelSize(n int) (width, height uint32) {
	w, h := image.LevelSize(d.Width, d.Height, n)
	return uint32(w), uint32(h) //nolint:gosec // image dimensions fit in uint32
}

// Decoder turns an image file into upload-ready texels.
type Decoder interface {
	Decode(path string) (*DecodedImage, error)
}

// FileDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP files.
//
// A MipFilter other than MipmapFilterModeUndefined generates the full mip
// chain, resampling each level from the previous one with Filter
// (nearest-neighbor or bilinear). Otherwise only the file's own image
// becomes level 0.
type FileDecoder struct {
	Format    gputypes.TextureFormat
	Filter    gputypes.FilterMode
	MipFilter gputypes.MipmapFilterMode
}

// Decode implements Decoder.
func (d FileDecoder) Decode(path string) (*DecodedImage, error) {
	packing, err := image.ForTexture(d.Format)
	if err != nil {
		return nil, err
	}

	src, err := image.Load(path)
	if err != nil {
		return nil, err
	}

	chain := []*stdimage.NRGBA{src}
	if d.MipFilter != gputypes.MipmapFilterModeUndefined {
		chain = image.GenerateMipmaps(src, scalerFor(d.Filter))
	}

	levels := make([][]byte, len(chain))
	for i, lvl := range chain {
		buf, err := image.Pack(lvl, packing)
		if err != nil {
			return nil, err
		}
		levels[i] = buf.Data()
	}

	return &DecodedImage{
		Width:  src.Bounds().Dx(),
		Height: src.Bounds().Dy(),
		Format: d.Format,
		Levels: levels,
	}, nil
}

// scalerFor maps a sampler filter to the resampler used for mip generation.
func scalerFor(f gputypes.FilterMode) draw.Scaler {
	if f == gputypes.FilterModeLinear {
		return draw.BiLinear
	}
	return draw.NearestNeighbor
}
