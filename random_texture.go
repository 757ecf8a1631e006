package gfxutil

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// RandomTextureSize is the width in texels of a random 1D texture.
const RandomTextureSize = 1024

// randomTexelBytes is the size of one RGBA32Float texel.
const randomTexelBytes = 16

// seedStream separates default sources created within one clock tick.
var seedStream atomic.Uint64

// RandomTexture is an immutable 1D RGBA32Float texture of uniformly
// distributed values in [-1, 1], used as a shader-side random source.
type RandomTexture struct {
	Texture hal.Texture
	View    hal.TextureView

	// Samples holds the uploaded texel values.
	Samples [RandomTextureSize][4]float32

	alloc Allocator
}

// Release destroys the view and the texture. It is safe to call more than
// once.
func (r *RandomTexture) Release() {
	if r == nil || r.alloc == nil {
		return
	}
	if r.View != nil {
		r.alloc.DestroyTextureView(r.View)
		r.View = nil
	}
	if r.Texture != nil {
		r.alloc.DestroyTexture(r.Texture)
		r.Texture = nil
	}
	r.alloc = nil
}

// RandomSamples draws RandomTextureSize texels from rng, each component
// uniform in [-1, 1].
func RandomSamples(rng *rand.Rand) [RandomTextureSize][4]float32 {
	var out [RandomTextureSize][4]float32
	for i := range out {
		for c := range out[i] {
			out[i][c] = randomFloat(rng, -1, 1)
		}
	}
	return out
}

func randomFloat(rng *rand.Rand, lo, hi float32) float32 {
	return lo + (hi-lo)*rng.Float32()
}

// BuildRandomTexture1D creates a 1024-texel RGBA32Float 1D texture filled
// with random values and a view over it. The data is written once at
// creation. Use WithRand for a reproducible texture; by default every call
// draws from a fresh time-seeded source.
func BuildRandomTexture1D(alloc Allocator, opts ...Option) (*RandomTexture, error) {
	if alloc == nil {
		return nil, ErrNilAllocator
	}

	o := applyOptions(opts)
	rng := o.rng
	if rng == nil {
		seed := uint64(time.Now().UnixNano()) //nolint:gosec // seed only
		rng = rand.New(rand.NewPCG(seed, seedStream.Add(1)))
	}

	rt := &RandomTexture{Samples: RandomSamples(rng), alloc: alloc}

	var err error
	rt.Texture, err = alloc.CreateTexture(&hal.TextureDescriptor{
		Label:         o.label,
		Size:          hal.Extent3D{Width: RandomTextureSize, Height: 1, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension1D,
		Format:        gputypes.TextureFormatRGBA32Float,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err = check("create random texture", err); err != nil {
		return nil, err
	}

	data := encodeSamples(&rt.Samples)
	err = alloc.WriteTexture(
		&hal.ImageCopyTexture{Texture: rt.Texture, Aspect: gputypes.TextureAspectAll},
		data,
		&hal.ImageDataLayout{BytesPerRow: RandomTextureSize * randomTexelBytes, RowsPerImage: 1},
		&hal.Extent3D{Width: RandomTextureSize, Height: 1, DepthOrArrayLayers: 1},
	)
	if err = check("upload random texture", err); err != nil {
		rt.Release()
		return nil, err
	}

	rt.View, err = alloc.CreateTextureView(rt.Texture, &hal.TextureViewDescriptor{
		Label:           o.label,
		Format:          gputypes.TextureFormatRGBA32Float,
		Dimension:       gputypes.TextureViewDimension1D,
		Aspect:          gputypes.TextureAspectAll,
		MipLevelCount:   1,
		ArrayLayerCount: 1,
	})
	if err = check("create random texture view", err); err != nil {
		rt.Release()
		return nil, err
	}

	Logger().Debug("gfxutil: random texture built", "label", o.label, "texels", RandomTextureSize)
	return rt, nil
}

// encodeSamples lays texels out as little-endian float32 RGBA.
func encodeSamples(s *[RandomTextureSize][4]float32) []byte {
	buf := make([]byte, 0, RandomTextureSize*randomTexelBytes)
	for _, texel := range s {
		for _, v := range texel {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
	}
	return buf
}
