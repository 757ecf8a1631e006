// Package native implements gfxutil.Allocator on a gogpu/wgpu HAL device.
package native

import (
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfxutil"
)

// Allocator is a gfxutil.Allocator over a hal.Device and its hal.Queue.
//
// Thread Safety:
// Allocator serializes its own calls, so one Allocator may be shared by
// goroutines. Other code using the same device and queue must synchronize
// with it externally.
type Allocator struct {
	mu     sync.Mutex
	device hal.Device
	queue  hal.Queue
}

var _ gfxutil.Allocator = (*Allocator)(nil)

// New returns an Allocator for device and queue.
func New(device hal.Device, queue hal.Queue) (*Allocator, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, ErrNilHALQueue
	}
	return &Allocator{device: device, queue: queue}, nil
}

// Device returns the underlying HAL device.
func (a *Allocator) Device() hal.Device {
	return a.device
}

// Queue returns the underlying HAL queue.
func (a *Allocator) Queue() hal.Queue {
	return a.queue
}

// CreateTexture implements gfxutil.Allocator.
func (a *Allocator) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 || desc.Size.DepthOrArrayLayers == 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidTextureSize,
			desc.Size.Width, desc.Size.Height, desc.Size.DepthOrArrayLayers)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	tex, err := a.device.CreateTexture(desc)
	if err != nil {
		return nil, fmt.Errorf("native: create texture %q: %w", desc.Label, err)
	}
	gfxutil.Logger().Debug("native: texture created",
		"label", desc.Label,
		"size", fmt.Sprintf("%dx%dx%d", desc.Size.Width, desc.Size.Height, desc.Size.DepthOrArrayLayers),
		"mips", desc.MipLevelCount,
		"format", desc.Format.String())
	return tex, nil
}

// DestroyTexture implements gfxutil.Allocator.
func (a *Allocator) DestroyTexture(texture hal.Texture) {
	if texture == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.device.DestroyTexture(texture)
}

// WriteTexture implements gfxutil.Allocator.
func (a *Allocator) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	if dst == nil || dst.Texture == nil {
		return ErrNilHALTexture
	}
	if layout == nil || size == nil {
		return ErrNilDescriptor
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.queue.WriteTexture(dst, data, layout, size); err != nil {
		return fmt.Errorf("native: write texture mip %d: %w", dst.MipLevel, err)
	}
	return nil
}

// CopyTextures implements gfxutil.Allocator. The regions are recorded on
// one command encoder, submitted together and waited on before returning.
func (a *Allocator) CopyTextures(regions []hal.TextureCopy) error {
	if len(regions) == 0 {
		return nil
	}
	for i := range regions {
		if regions[i].SrcBase.Texture == nil || regions[i].DstBase.Texture == nil {
			return fmt.Errorf("%w: copy region %d", ErrNilHALTexture, i)
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfxutil-copy"})
	if err != nil {
		return fmt.Errorf("native: create command encoder: %w", err)
	}
	defer encoder.Destroy()

	if err := encoder.BeginEncoding("gfxutil-copy"); err != nil {
		return fmt.Errorf("native: begin encoding: %w", err)
	}
	for _, r := range regions {
		encoder.CopyTextureToTexture(r.SrcBase.Texture, r.DstBase.Texture, []hal.TextureCopy{r})
	}
	cmd, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		return fmt.Errorf("native: end encoding: %w", err)
	}
	defer a.device.FreeCommandBuffer(cmd)

	if _, err := a.queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		return fmt.Errorf("native: submit copies: %w", err)
	}
	if err := a.device.WaitIdle(); err != nil {
		return fmt.Errorf("native: wait for copies: %w", err)
	}

	gfxutil.Logger().Debug("native: copies submitted", "regions", len(regions))
	return nil
}

// CreateTextureView implements gfxutil.Allocator.
func (a *Allocator) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	if texture == nil {
		return nil, ErrNilHALTexture
	}
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	view, err := a.device.CreateTextureView(texture, desc)
	if err != nil {
		return nil, fmt.Errorf("native: create texture view %q: %w", desc.Label, err)
	}
	return view, nil
}

// DestroyTextureView implements gfxutil.Allocator.
func (a *Allocator) DestroyTextureView(view hal.TextureView) {
	if view == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.device.DestroyTextureView(view)
}

// CreateSampler implements gfxutil.Allocator.
func (a *Allocator) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	if desc == nil {
		return nil, ErrNilDescriptor
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.device.CreateSampler(desc)
	if err != nil {
		return nil, fmt.Errorf("native: create sampler %q: %w", desc.Label, err)
	}
	return s, nil
}

// DestroySampler implements gfxutil.Allocator.
func (a *Allocator) DestroySampler(sampler hal.Sampler) {
	if sampler == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.device.DestroySampler(sampler)
}
