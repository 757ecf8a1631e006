package image

import "errors"

// Common errors for image buffers.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// ImageBuf holds tightly packed texels of one mip level, ready to be
// written into a texture subresource.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &ImageBuf{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing tightly packed data without copying.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if len(data) < format.ImageBytes(width, height) {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{data: data, width: width, height: height, format: format}, nil
}

// Width returns the buffer width in texels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the buffer height in texels.
func (b *ImageBuf) Height() int { return b.height }

// Format returns the texel packing.
func (b *ImageBuf) Format() Format { return b.format }

// Stride returns the number of bytes per row. Rows are tightly packed.
func (b *ImageBuf) Stride() int { return b.format.RowBytes(b.width) }

// Data returns the underlying texel bytes.
func (b *ImageBuf) Data() []byte { return b.data }

// PixelBytes returns the bytes of the texel at (x, y), or nil when the
// coordinates are out of bounds.
func (b *ImageBuf) PixelBytes(x, y int) []byte {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	bpp := b.format.BytesPerPixel()
	off := y*b.Stride() + x*bpp
	return b.data[off : off+bpp]
}
