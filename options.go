package gfxutil

import "math/rand/v2"

// Option configures a builder call.
//
// Example:
//
//	arr, err := gfxutil.BuildTextureArray(alloc, files,
//	    gputypes.TextureFormatRGBA8UnormSrgb,
//	    gputypes.FilterModeLinear, gputypes.MipmapFilterModeLinear,
//	    gfxutil.WithLabel("terrain"))
type Option func(*options)

// options holds optional configuration for builder calls.
type options struct {
	decoder   Decoder
	label     string
	noSampler bool
	rng       *rand.Rand
}

// defaultOptions returns the default builder options.
func defaultOptions() options {
	return options{
		decoder: nil, // FileDecoder built from the call's format and filters
		rng:     nil, // seeded per call
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDecoder replaces the file decoder used by BuildTextureArray.
func WithDecoder(d Decoder) Option {
	return func(o *options) {
		o.decoder = d
	}
}

// WithLabel sets the debug label of created resources. Staging textures
// get the label with a "/staging/<slice>" suffix.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithoutSampler skips sampler creation in BuildTextureArray.
func WithoutSampler() Option {
	return func(o *options) {
		o.noSampler = true
	}
}

// WithRand sets the random source of BuildRandomTexture1D. Use a seeded
// source for reproducible textures.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}
