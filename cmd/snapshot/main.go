package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/iburimskiy/blxck-backdrop/internal/config"
	"github.com/iburimskiy/blxck-backdrop/internal/render"
	"github.com/iburimskiy/blxck-backdrop/internal/scene"
	"github.com/iburimskiy/blxck-backdrop/internal/viewstate"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	seed := flag.Uint64("seed", 0, "Particle seed (default: random)")
	count := flag.Int("count", 0, "Particle count (default: 500)")
	radial := flag.String("radial", "", "Radial distribution: linear or volumetric")
	themeName := flag.String("theme", "", "Theme: dark or light")
	frames := flag.Int("frames", 120, "Frames to simulate before capturing")
	mouseX := flag.Float64("mouse-x", 0, "Pointer x in [-1, 1]")
	mouseY := flag.Float64("mouse-y", 0, "Pointer y in [-1, 1]")
	scroll := flag.Float64("scroll", 0, "Scroll offset in pixels")
	width := flag.Int("width", 0, "Output width (default: snapshot_size)")
	height := flag.Int("height", 0, "Output height (default: width * 9 / 16)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	out := flag.String("out", "backdrop.png", "Output file (.png, .webp or .tga)")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Seed: *seed, Count: *count, Radial: *radial, Theme: *themeName})
	if *supersample > 0 {
		cfg.SnapshotSupersample = *supersample
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	if _, err := render.FormatOf(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := *width
	if w <= 0 {
		w = cfg.SnapshotSize
	}
	h := *height
	if h <= 0 {
		h = w * 9 / 16
	}

	start := time.Now()
	sc := scene.New(scene.ParamsFrom(cfg))
	sc.Mount()

	view := viewstate.NewView(*mouseX, *mouseY, *scroll)
	for i := 0; i < *frames; i++ {
		sc.Step(view)
	}

	sprites := sc.Project(w, h)
	img := render.Rasterize(sprites, w, h, cfg.ThemeValue().Palette(), cfg.SnapshotSupersample)
	if err := render.Save(*out, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	f := sc.Follower()
	fmt.Printf("Rendered %d sprites after %d frames (offset %.3f,%.3f rot %.4f camera z %.3f)\n",
		len(sprites), sc.Frames(), f.OffsetX, f.OffsetY, f.RotationY, sc.CameraZ())
	fmt.Printf("Wrote %s (%dx%d) in %v\n", *out, w, h, time.Since(start).Round(time.Millisecond))
}
