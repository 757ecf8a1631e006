package native

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// halProvider is implemented by providers that expose HAL handles
// alongside their public device types.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromProvider returns an Allocator for the device and queue of a
// gpucontext.DeviceProvider. Providers exposing HalDevice/HalQueue are
// preferred; otherwise Device and Queue must already be HAL types.
func FromProvider(provider gpucontext.DeviceProvider) (*Allocator, error) {
	if provider == nil {
		return nil, ErrNoHALProvider
	}

	var dev, queue any
	if hp, ok := provider.(halProvider); ok {
		dev, queue = hp.HalDevice(), hp.HalQueue()
	} else {
		dev, queue = provider.Device(), provider.Queue()
	}

	device, ok := dev.(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: device is %T", ErrNoHALProvider, dev)
	}
	q, ok := queue.(hal.Queue)
	if !ok || q == nil {
		return nil, fmt.Errorf("%w: queue is %T", ErrNoHALProvider, queue)
	}
	return New(device, q)
}

// Device is an opened HAL device together with the instance that owns it.
type Device struct {
	*Allocator

	instance hal.Instance
	device   hal.Device
}

// Open opens the first adapter exposed by backend with default limits
// and returns an allocator on it. Close releases the device.
func Open(backend hal.Backend) (*Device, error) {
	instance, err := backend.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("native: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("native: open adapter %q: %w", adapters[0].Info.Name, err)
	}

	alloc, err := New(open.Device, open.Queue)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	return &Device{Allocator: alloc, instance: instance, device: open.Device}, nil
}

// Close waits for the device to go idle and destroys it and its instance.
func (d *Device) Close() {
	if d == nil || d.device == nil {
		return
	}
	_ = d.device.WaitIdle()
	d.device.Destroy()
	d.instance.Destroy()
	d.device = nil
}
