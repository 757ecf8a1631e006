package gfxutil

import "github.com/gogpu/wgpu/hal"

// Allocator is the GPU capability the builders run against: resource
// creation, uploads, subresource copies and view creation on one device.
//
// backend/native provides the implementation over hal.Device and
// hal.Queue. Implementations are not required to be safe for concurrent
// use; callers sharing a device across goroutines synchronize externally.
type Allocator interface {
	// CreateTexture creates a texture. The contents are undefined until
	// written or copied into.
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)

	// DestroyTexture releases a texture created by CreateTexture.
	DestroyTexture(texture hal.Texture)

	// WriteTexture uploads CPU data into one subresource region.
	WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error

	// CopyTextures records every region as a texture-to-texture copy,
	// submits them as one batch and blocks until the GPU has finished, so
	// the source textures may be destroyed as soon as it returns.
	CopyTextures(regions []hal.TextureCopy) error

	// CreateTextureView creates a shader-visible view of a texture.
	CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error)

	// DestroyTextureView releases a view created by CreateTextureView.
	DestroyTextureView(view hal.TextureView)

	// CreateSampler creates a texture sampler.
	CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error)

	// DestroySampler releases a sampler created by CreateSampler.
	DestroySampler(sampler hal.Sampler)
}

// CalcSubresource returns the flat subresource index of (mipLevel,
// arraySlice) in a texture with mipLevels levels per slice. Slices are
// laid out contiguously, each holding all of its mip levels.
func CalcSubresource(mipLevel, arraySlice, mipLevels uint32) uint32 {
	return mipLevel + arraySlice*mipLevels
}
