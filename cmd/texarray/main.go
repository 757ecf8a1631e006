// Command texarray builds a 2D texture array from image files on a headless
// HAL backend and reports its layout.
//
// Usage:
//
//	texarray [flags] image1.png image2.png ...
//	texarray -frustum -fov 60 -aspect 1.78 -near 0.1 -far 100
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/gogpu/wgpu/hal/software"

	"github.com/gogpu/gfxutil"
	"github.com/gogpu/gfxutil/backend/native"
)

var formats = map[string]gputypes.TextureFormat{
	"rgba8":      gputypes.TextureFormatRGBA8Unorm,
	"rgba8-srgb": gputypes.TextureFormatRGBA8UnormSrgb,
	"bgra8":      gputypes.TextureFormatBGRA8Unorm,
	"bgra8-srgb": gputypes.TextureFormatBGRA8UnormSrgb,
	"r8":         gputypes.TextureFormatR8Unorm,
	"rgba32f":    gputypes.TextureFormatRGBA32Float,
}

var filters = map[string]gputypes.FilterMode{
	"nearest": gputypes.FilterModeNearest,
	"linear":  gputypes.FilterModeLinear,
}

var mipFilters = map[string]gputypes.MipmapFilterMode{
	"none":    gputypes.MipmapFilterModeUndefined,
	"nearest": gputypes.MipmapFilterModeNearest,
	"linear":  gputypes.MipmapFilterModeLinear,
}

func main() {
	var (
		backend   = flag.String("backend", "software", "HAL backend: noop or software")
		format    = flag.String("format", "rgba8-srgb", "texture format: "+keys(formats))
		filter    = flag.String("filter", "linear", "min/mag filter: nearest or linear")
		mipFilter = flag.String("mips", "linear", "mip filter: none, nearest or linear")
		label     = flag.String("label", "texarray", "debug label")
		random    = flag.Bool("random", false, "also build a random 1D texture")
		frustum   = flag.Bool("frustum", false, "print the frustum planes of a perspective camera and exit")
		fov       = flag.Float64("fov", 60, "vertical field of view in degrees (-frustum)")
		aspect    = flag.Float64("aspect", 16.0/9.0, "aspect ratio (-frustum)")
		near      = flag.Float64("near", 0.1, "near plane distance (-frustum)")
		far       = flag.Float64("far", 100, "far plane distance (-frustum)")
		verbose   = flag.Bool("v", false, "log driver calls")
	)
	flag.Parse()

	if *verbose {
		gfxutil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *frustum {
		printFrustum(float32(*fov), float32(*aspect), float32(*near), float32(*far))
		return
	}

	tf, ok := formats[*format]
	if !ok {
		log.Fatalf("unknown format %q (want %s)", *format, keys(formats))
	}
	ff, ok := filters[*filter]
	if !ok {
		log.Fatalf("unknown filter %q", *filter)
	}
	mf, ok := mipFilters[*mipFilter]
	if !ok {
		log.Fatalf("unknown mip filter %q", *mipFilter)
	}

	if err := run(*backend, *label, tf, ff, mf, *random); err != nil {
		log.Fatal(err)
	}
}

func run(backend, label string, tf gputypes.TextureFormat, ff gputypes.FilterMode, mf gputypes.MipmapFilterMode, random bool) error {
	dev, err := openBackend(backend)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}
	defer dev.Close()

	files := flag.Args()
	arr, err := gfxutil.BuildTextureArray(dev, files, tf, ff, mf, gfxutil.WithLabel(label))
	if err != nil {
		return fmt.Errorf("build texture array: %w", err)
	}
	defer arr.Release()

	fmt.Printf("texture array %q: %dx%d, %d layers, %d mip levels, %s\n",
		label, arr.Width, arr.Height, arr.Layers, arr.MipLevels, arr.Format)
	for i, path := range files {
		layer := uint32(i) //nolint:gosec // layer count fits in uint32
		first := gfxutil.CalcSubresource(0, layer, arr.MipLevels)
		last := gfxutil.CalcSubresource(arr.MipLevels-1, layer, arr.MipLevels)
		fmt.Printf("  layer %d: %s (subresources %d..%d)\n", i, path, first, last)
	}

	if !random {
		return nil
	}
	rt, err := gfxutil.BuildRandomTexture1D(dev, gfxutil.WithLabel(label+"-random"))
	if err != nil {
		return fmt.Errorf("build random texture: %w", err)
	}
	defer rt.Release()
	fmt.Printf("random texture: %d texels, first %v\n", gfxutil.RandomTextureSize, rt.Samples[0])
	return nil
}

func openBackend(name string) (*native.Device, error) {
	var b hal.Backend
	switch name {
	case "noop":
		b = noop.API{}
	case "software":
		b = software.API{}
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
	return native.Open(b)
}

func printFrustum(fov, aspect, near, far float32) {
	proj := mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
	planes := gfxutil.ExtractFrustumPlanesDepth(proj, gfxutil.DepthMinusOneToOne)
	names := [...]string{"left", "right", "bottom", "top", "near", "far"}
	for i, p := range planes {
		fmt.Printf("%-6s % .5f % .5f % .5f % .5f\n", names[i], p.A, p.B, p.C, p.D)
	}
}

func keys[V any](m map[string]V) string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return strings.Join(out, ", ")
}
