package gfxutil

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

var errInjected = errors.New("injected driver failure")

const testFormat = gputypes.TextureFormatRGBA8Unorm

// fakeTexture carries an id so distinct textures never compare equal.
type fakeTexture struct {
	noop.Texture
	id   int
	desc hal.TextureDescriptor
}

type fakeView struct {
	noop.Resource
	id   int
	desc hal.TextureViewDescriptor
}

type fakeSampler struct {
	noop.Resource
	id   int
	desc hal.SamplerDescriptor
}

type fakeWrite struct {
	dst    hal.ImageCopyTexture
	data   []byte
	layout hal.ImageDataLayout
	size   hal.Extent3D
}

// fakeAllocator records every call and tracks live resources. Setting
// failOp and failAt makes the failAt-th call (1-based) of failOp fail.
type fakeAllocator struct {
	nextID int
	calls  int
	counts map[string]int
	live   map[any]bool

	textures []*fakeTexture
	writes   []fakeWrite
	copies   [][]hal.TextureCopy
	views    []*fakeView
	samplers []*fakeSampler

	// problems collects misuse such as double destroys.
	problems []string

	failOp string
	failAt int
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{counts: map[string]int{}, live: map[any]bool{}}
}

func (f *fakeAllocator) failing(failOp string, failAt int) *fakeAllocator {
	f.failOp, f.failAt = failOp, failAt
	return f
}

func (f *fakeAllocator) enter(op string) error {
	f.calls++
	f.counts[op]++
	if op == f.failOp && f.counts[op] == f.failAt {
		return fmt.Errorf("%s: %w", op, errInjected)
	}
	return nil
}

func (f *fakeAllocator) destroy(op string, r any) {
	f.calls++
	f.counts[op]++
	if !f.live[r] {
		f.problems = append(f.problems, fmt.Sprintf("%s of a resource that is not live", op))
		return
	}
	delete(f.live, r)
}

func (f *fakeAllocator) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if err := f.enter("CreateTexture"); err != nil {
		return nil, err
	}
	f.nextID++
	tex := &fakeTexture{id: f.nextID, desc: *desc}
	f.textures = append(f.textures, tex)
	f.live[tex] = true
	return tex, nil
}

func (f *fakeAllocator) DestroyTexture(texture hal.Texture) {
	f.destroy("DestroyTexture", texture)
}

func (f *fakeAllocator) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	if err := f.enter("WriteTexture"); err != nil {
		return err
	}
	if !f.live[dst.Texture] {
		f.problems = append(f.problems, "WriteTexture into a texture that is not live")
	}
	f.writes = append(f.writes, fakeWrite{dst: *dst, data: data, layout: *layout, size: *size})
	return nil
}

func (f *fakeAllocator) CopyTextures(regions []hal.TextureCopy) error {
	if err := f.enter("CopyTextures"); err != nil {
		return err
	}
	f.copies = append(f.copies, regions)
	return nil
}

func (f *fakeAllocator) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	if err := f.enter("CreateTextureView"); err != nil {
		return nil, err
	}
	if !f.live[texture] {
		f.problems = append(f.problems, "CreateTextureView of a texture that is not live")
	}
	f.nextID++
	v := &fakeView{id: f.nextID, desc: *desc}
	f.views = append(f.views, v)
	f.live[v] = true
	return v, nil
}

func (f *fakeAllocator) DestroyTextureView(view hal.TextureView) {
	f.destroy("DestroyTextureView", view)
}

func (f *fakeAllocator) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	if err := f.enter("CreateSampler"); err != nil {
		return nil, err
	}
	f.nextID++
	s := &fakeSampler{id: f.nextID, desc: *desc}
	f.samplers = append(f.samplers, s)
	f.live[s] = true
	return s, nil
}

func (f *fakeAllocator) DestroySampler(sampler hal.Sampler) {
	f.destroy("DestroySampler", sampler)
}

// fakeDecoder serves DecodedImages from memory. Paths in errs fail.
type fakeDecoder struct {
	images  map[string]*DecodedImage
	errs    map[string]error
	decoded []string
}

func (d *fakeDecoder) Decode(path string) (*DecodedImage, error) {
	d.decoded = append(d.decoded, path)
	if err, ok := d.errs[path]; ok {
		return nil, err
	}
	img, ok := d.images[path]
	if !ok {
		return nil, fmt.Errorf("no such image %q", path)
	}
	return img, nil
}

// solidImage returns an RGBA8 DecodedImage of w x h with mips levels, each
// texel filled with fill.
func solidImage(w, h, mips int, fill byte) *DecodedImage {
	img := &DecodedImage{Width: w, Height: h, Format: testFormat}
	for m := 0; m < mips; m++ {
		lw, lh := max(1, w>>m), max(1, h>>m)
		level := make([]byte, lw*lh*4)
		for i := range level {
			level[i] = fill
		}
		img.Levels = append(img.Levels, level)
	}
	return img
}
