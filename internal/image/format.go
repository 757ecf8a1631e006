// Package image decodes image files and prepares them for GPU upload:
// texel packing per texture format and mip-chain generation.
package image

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnsupportedFormat is returned for texture formats that have no packing.
var ErrUnsupportedFormat = errors.New("image: unsupported texture format")

// Format represents a texel packing used for staging uploads.
type Format uint8

const (
	// FormatRGBA8 is 32-bit RGBA, one byte per channel, non-premultiplied.
	FormatRGBA8 Format = iota

	// FormatBGRA8 is 32-bit BGRA, one byte per channel, non-premultiplied.
	FormatBGRA8

	// FormatR8 is 8-bit luminance.
	FormatR8

	// FormatRGBA32F is 128-bit RGBA, little-endian float32 per channel in [0, 1].
	FormatRGBA32F

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a texel packing.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per texel.
	BytesPerPixel int

	// Channels is the number of color channels.
	Channels int

	// IsFloat indicates channels are stored as float32.
	IsFloat bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatRGBA8:   {BytesPerPixel: 4, Channels: 4},
	FormatBGRA8:   {BytesPerPixel: 4, Channels: 4},
	FormatR8:      {BytesPerPixel: 1, Channels: 1},
	FormatRGBA32F: {BytesPerPixel: 16, Channels: 4, IsFloat: true},
}

// ForTexture returns the packing for a GPU texture format.
// sRGB variants share the packing of their linear counterparts; the
// encoding is a property of the texture, not of the bytes.
func ForTexture(tf gputypes.TextureFormat) (Format, error) {
	switch tf {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
		return FormatRGBA8, nil
	case gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatBGRA8UnormSrgb:
		return FormatBGRA8, nil
	case gputypes.TextureFormatR8Unorm:
		return FormatR8, nil
	case gputypes.TextureFormatRGBA32Float:
		return FormatRGBA32F, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnsupportedFormat, tf)
	}
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per texel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatR8:
		return "R8"
	case FormatRGBA32F:
		return "RGBA32F"
	default:
		return "Unknown"
	}
}
