// Package gfxutil provides resource helpers for real-time 3D rendering on
// the gogpu WebGPU HAL.
//
// # Overview
//
// gfxutil covers three small jobs that every renderer repeats:
//
//   - BuildTextureArray loads same-format 2D images and assembles them into
//     one 2D-array texture with a view over all slices and mip levels.
//   - BuildRandomTexture1D creates an immutable 1D texture of random values
//     in [-1, 1] for shader-side randomness.
//   - ExtractFrustumPlanes derives the six normalized clipping planes of a
//     view-projection matrix, and Frustum tests bounding volumes against
//     them.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gfxutil"
//	    "github.com/gogpu/gfxutil/backend/native"
//	)
//
//	alloc, err := native.New(device, queue)
//	if err != nil {
//	    return err
//	}
//	arr, err := gfxutil.BuildTextureArray(alloc,
//	    []string{"grass.png", "dirt.png", "rock.png"},
//	    gputypes.TextureFormatRGBA8UnormSrgb,
//	    gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear)
//	if err != nil {
//	    return err
//	}
//	defer arr.Release()
//
// # Allocators
//
// The builders run against the Allocator interface rather than a concrete
// device. backend/native implements it on a hal.Device and hal.Queue; tests
// use a recording fake.
//
// # Logging
//
// gfxutil is silent by default. Call SetLogger to receive debug records for
// created resources and copies, and warnings for failed driver calls.
//
// # Thread Safety
//
// Builders are synchronous and may block until GPU copies complete. They
// are safe to call concurrently only with an Allocator that is; the
// frustum functions are pure.
package gfxutil
