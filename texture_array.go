package gfxutil

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// TextureArray is a 2D-array texture built from a list of image files,
// together with a view over all of its slices and mip levels.
//
// The array texture is owned by the caller: a view does not keep its
// texture alive, so Release must run once the view is no longer bound.
type TextureArray struct {
	Texture hal.Texture
	View    hal.TextureView
	// Sampler is nil when the array was built WithoutSampler.
	Sampler hal.Sampler

	Width     uint32
	Height    uint32
	Layers    uint32
	MipLevels uint32
	Format    gputypes.TextureFormat

	alloc Allocator
}

// Release destroys the sampler, the view and the array texture, in that
// order. It is safe to call more than once.
func (a *TextureArray) Release() {
	if a == nil || a.alloc == nil {
		return
	}
	if a.Sampler != nil {
		a.alloc.DestroySampler(a.Sampler)
		a.Sampler = nil
	}
	if a.View != nil {
		a.alloc.DestroyTextureView(a.View)
		a.View = nil
	}
	if a.Texture != nil {
		a.alloc.DestroyTexture(a.Texture)
		a.Texture = nil
	}
	a.alloc = nil
}

// BuildTextureArray loads every file in images, in order, and assembles
// them into one 2D-array texture. Slice i of the array holds images[i]
// with all of its mip levels.
//
// All images must share the first image's width, height, mip count and
// format; a mismatch fails with ErrSliceMismatch. filter selects the
// sampler's min/mag filter and the resampler used for mip generation.
// mipFilter selects the sampler's mip filter; MipmapFilterModeUndefined
// builds a single-level array.
//
// The returned array is fully populated and staging resources are already
// released. On error every resource created by the call has been
// destroyed. An empty list fails with ErrNoImages before any allocator
// call.
func BuildTextureArray(
	alloc Allocator,
	images []string,
	format gputypes.TextureFormat,
	filter gputypes.FilterMode,
	mipFilter gputypes.MipmapFilterMode,
	opts ...Option,
) (*TextureArray, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	if alloc == nil {
		return nil, ErrNilAllocator
	}

	o := applyOptions(opts)
	dec := o.decoder
	if dec == nil {
		dec = FileDecoder{Format: format, Filter: filter, MipFilter: mipFilter}
	}

	st := &staging{alloc: alloc, label: o.label}
	defer st.release()

	for i, path := range images {
		img, err := dec.Decode(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
		}
		if err := st.add(img); err != nil {
			return nil, fmt.Errorf("gfxutil: image %d (%s): %w", i, path, err)
		}
	}

	arr := &TextureArray{
		Width:     st.width,
		Height:    st.height,
		Layers:    uint32(len(st.textures)), //nolint:gosec // bounded by len(images)
		MipLevels: st.mipLevels,
		Format:    st.format,
		alloc:     alloc,
	}
	if err := buildArray(arr, st, filter, mipFilter, o); err != nil {
		arr.Release()
		return nil, err
	}

	Logger().Debug("gfxutil: texture array built",
		"label", o.label,
		"width", arr.Width,
		"height", arr.Height,
		"layers", arr.Layers,
		"mips", arr.MipLevels,
		"format", arr.Format.String())
	return arr, nil
}

// buildArray creates the array texture, copies every staged subresource
// into it and creates the view and sampler. Partially created resources
// are left on arr for the caller to release.
func buildArray(arr *TextureArray, st *staging, filter gputypes.FilterMode, mipFilter gputypes.MipmapFilterMode, o options) error {
	var err error
	arr.Texture, err = st.alloc.CreateTexture(&hal.TextureDescriptor{
		Label: o.label,
		Size: hal.Extent3D{
			Width:              arr.Width,
			Height:             arr.Height,
			DepthOrArrayLayers: arr.Layers,
		},
		MipLevelCount: arr.MipLevels,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        arr.Format,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err = check("create texture array", err); err != nil {
		return err
	}

	if err = check("copy subresources", st.alloc.CopyTextures(st.copyRegions(arr.Texture))); err != nil {
		return err
	}

	arr.View, err = st.alloc.CreateTextureView(arr.Texture, &hal.TextureViewDescriptor{
		Label:           o.label,
		Format:          arr.Format,
		Dimension:       gputypes.TextureViewDimension2DArray,
		Aspect:          gputypes.TextureAspectAll,
		BaseMipLevel:    0,
		MipLevelCount:   arr.MipLevels,
		BaseArrayLayer:  0,
		ArrayLayerCount: arr.Layers,
	})
	if err = check("create texture array view", err); err != nil {
		return err
	}

	if o.noSampler {
		return nil
	}
	arr.Sampler, err = st.alloc.CreateSampler(samplerDescriptor(o.label, filter, mipFilter, arr.MipLevels))
	return check("create sampler", err)
}

// samplerDescriptor returns a clamp-to-edge sampler for an array with
// mipLevels levels.
func samplerDescriptor(label string, filter gputypes.FilterMode, mipFilter gputypes.MipmapFilterMode, mipLevels uint32) *hal.SamplerDescriptor {
	if filter == gputypes.FilterModeUndefined {
		filter = gputypes.FilterModeNearest
	}
	mip := gputypes.FilterModeNearest
	if mipFilter == gputypes.MipmapFilterModeLinear {
		mip = gputypes.FilterModeLinear
	}
	return &hal.SamplerDescriptor{
		Label:        label,
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: mip,
		LodMinClamp:  0,
		LodMaxClamp:  float32(mipLevels),
		Anisotropy:   1,
	}
}
