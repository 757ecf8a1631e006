package image

import (
	"encoding/binary"
	"image"
	"math"
)

// Pack converts a decoded image into texels of the given format.
func Pack(img *image.NRGBA, format Format) (*ImageBuf, error) {
	b := img.Bounds()
	buf, err := NewImageBuf(b.Dx(), b.Dy(), format)
	if err != nil {
		return nil, err
	}

	dst := buf.Data()
	stride := buf.Stride()
	for y := range b.Dy() {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		row := dst[y*stride : (y+1)*stride]
		packRow(row, src[:b.Dx()*4], format)
	}
	return buf, nil
}

// packRow converts one row of NRGBA texels.
func packRow(dst, src []byte, format Format) {
	n := len(src) / 4
	switch format {
	case FormatRGBA8:
		copy(dst, src)
	case FormatBGRA8:
		for i := range n {
			s := src[i*4 : i*4+4]
			d := dst[i*4 : i*4+4]
			d[0], d[1], d[2], d[3] = s[2], s[1], s[0], s[3]
		}
	case FormatR8:
		for i := range n {
			s := src[i*4 : i*4+4]
			// Same weights as color.GrayModel, applied to straight alpha.
			y := (19595*uint32(s[0]) + 38470*uint32(s[1]) + 7471*uint32(s[2]) + 1<<15) >> 16
			dst[i] = uint8(y) //nolint:gosec // y <= 255 by construction
		}
	case FormatRGBA32F:
		for i := range n * 4 {
			v := float32(src[i]) / 255
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
		}
	}
}
