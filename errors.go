package gfxutil

import (
	"errors"
	"fmt"
)

// Package errors.
var (
	// ErrNoImages is returned when a texture array is requested from an
	// empty image list.
	ErrNoImages = errors.New("gfxutil: no images")

	// ErrNilAllocator is returned when a builder is called without an allocator.
	ErrNilAllocator = errors.New("gfxutil: nil allocator")

	// ErrSliceMismatch is returned when an image does not share the width,
	// height, mip count or format of the first image in the list.
	ErrSliceMismatch = errors.New("gfxutil: texture array slice mismatch")

	// ErrDecode wraps any failure to read or decode an image file.
	ErrDecode = errors.New("gfxutil: decode failed")

	// ErrEmptyLevel is returned when a decoder produces a mip level without texels.
	ErrEmptyLevel = errors.New("gfxutil: decoded mip level is empty")
)

// check is the shared check-and-report step for every driver call. A
// non-nil err is logged at warn level and returned wrapped with op.
func check(op string, err error) error {
	if err == nil {
		return nil
	}
	Logger().Warn("gfxutil: driver call failed", "op", op, "error", err)
	return fmt.Errorf("gfxutil: %s: %w", op, err)
}
