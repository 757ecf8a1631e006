package gfxutil

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// staging holds one uploaded, non shader-visible texture per array slice.
// The first image added fixes the shape every later image must match.
type staging struct {
	alloc    Allocator
	label    string
	textures []hal.Texture

	width     uint32
	height    uint32
	mipLevels uint32
	format    gputypes.TextureFormat
}

// add validates img against the staged shape, creates its staging texture
// and uploads every mip level.
func (s *staging) add(img *DecodedImage) error {
	if err := s.accept(img); err != nil {
		return err
	}

	slice := len(s.textures)
	label := ""
	if s.label != "" {
		label = fmt.Sprintf("%s/staging/%d", s.label, slice)
	}
	tex, err := s.alloc.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: s.width, Height: s.height, DepthOrArrayLayers: 1},
		MipLevelCount: s.mipLevels,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        s.format,
		Usage:         gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst,
	})
	if err = check("create staging texture", err); err != nil {
		return err
	}
	s.textures = append(s.textures, tex)

	for m, level := range img.Levels {
		w, h := img.LevelSize(m)
		err := s.alloc.WriteTexture(
			&hal.ImageCopyTexture{
				Texture:  tex,
				MipLevel: uint32(m), //nolint:gosec // mip count fits in uint32
				Aspect:   gputypes.TextureAspectAll,
			},
			level,
			&hal.ImageDataLayout{
				BytesPerRow:  uint32(len(level)) / h, //nolint:gosec // level size fits in uint32
				RowsPerImage: h,
			},
			&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		)
		if err = check("upload staging level", err); err != nil {
			return err
		}
	}
	return nil
}

// accept checks img against the shape of the first staged image, taking
// the shape from img when nothing is staged yet.
func (s *staging) accept(img *DecodedImage) error {
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Levels) == 0 {
		return ErrEmptyLevel
	}
	for _, level := range img.Levels {
		if len(level) == 0 {
			return ErrEmptyLevel
		}
	}

	w := uint32(img.Width)       //nolint:gosec // checked positive
	h := uint32(img.Height)      //nolint:gosec // checked positive
	k := uint32(img.MipLevels()) //nolint:gosec // mip count fits in uint32
	if len(s.textures) == 0 {
		s.width, s.height, s.mipLevels, s.format = w, h, k, img.Format
		return nil
	}
	if w != s.width || h != s.height || k != s.mipLevels || img.Format != s.format {
		return fmt.Errorf("%w: got %dx%d, %d mips, %s; want %dx%d, %d mips, %s",
			ErrSliceMismatch, w, h, k, img.Format, s.width, s.height, s.mipLevels, s.format)
	}
	return nil
}

// copyRegions returns one copy per (slice, mip) pair from the staging
// textures into dst, ordered by subresource index.
func (s *staging) copyRegions(dst hal.Texture) []hal.TextureCopy {
	regions := make([]hal.TextureCopy, 0, len(s.textures)*int(s.mipLevels))
	for slice, src := range s.textures {
		for mip := uint32(0); mip < s.mipLevels; mip++ {
			w := max(1, s.width>>mip)
			h := max(1, s.height>>mip)
			Logger().Debug("gfxutil: copy subresource",
				"slice", slice,
				"mip", mip,
				"subresource", CalcSubresource(mip, uint32(slice), s.mipLevels)) //nolint:gosec // slice count fits in uint32
			regions = append(regions, hal.TextureCopy{
				SrcBase: hal.ImageCopyTexture{
					Texture:  src,
					MipLevel: mip,
					Aspect:   gputypes.TextureAspectAll,
				},
				DstBase: hal.ImageCopyTexture{
					Texture:  dst,
					MipLevel: mip,
					Origin:   hal.Origin3D{Z: uint32(slice)}, //nolint:gosec // slice count fits in uint32
					Aspect:   gputypes.TextureAspectAll,
				},
				Size: hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
			})
		}
	}
	return regions
}

// release destroys every staging texture.
func (s *staging) release() {
	for _, tex := range s.textures {
		s.alloc.DestroyTexture(tex)
	}
	s.textures = nil
}
