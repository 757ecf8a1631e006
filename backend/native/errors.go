package native

import "errors"

// Package errors.
var (
	// ErrNilHALDevice is returned when an allocator is created without a device.
	ErrNilHALDevice = errors.New("native: HAL device is nil")

	// ErrNilHALQueue is returned when an allocator is created without a queue.
	ErrNilHALQueue = errors.New("native: HAL queue is nil")

	// ErrNilHALTexture is returned when an operation is given a nil texture.
	ErrNilHALTexture = errors.New("native: HAL texture is nil")

	// ErrNilDescriptor is returned when a required descriptor is nil.
	ErrNilDescriptor = errors.New("native: descriptor is nil")

	// ErrInvalidTextureSize is returned when texture dimensions are invalid.
	ErrInvalidTextureSize = errors.New("native: invalid texture size")

	// ErrNoAdapter is returned when a backend exposes no adapter.
	ErrNoAdapter = errors.New("native: no adapter available")

	// ErrNoHALProvider is returned when a device provider does not expose
	// HAL device and queue handles.
	ErrNoHALProvider = errors.New("native: provider does not expose HAL types")
)
