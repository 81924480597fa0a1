// Command render exports the walk cycle as image frames: one lossless WebP
// or TGA per frame, or a single looping animated WebP.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"skelwalk/internal/config"
	"skelwalk/internal/export"
	"skelwalk/internal/postprocess"
	"skelwalk/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("out", "", "Output directory (default: frames)")
	format := flag.String("format", "", "Frame format: webp or tga (default: webp)")
	size := flag.Int("size", 0, "Output frame size in pixels (default: 512)")
	fps := flag.Int("fps", 0, "Frames per second (default: 30)")
	frames := flag.Int("frames", 0, "Frame count (default: one walk period)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	anim := flag.Bool("anim", false, "Write one looping animated WebP instead of frame files")
	single := flag.Float64("t", -1, "Render a single frame at this time in seconds")
	yaw := flag.Float64("yaw", 0, "Camera yaw override in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch override in degrees")
	dist := flag.Float64("dist", 0, "Camera distance override")

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
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Format:    *format,
		Size:      *size,
		FPS:       *fps,
		Frames:    *frames,
		Workers:   *workers,
	})

	if cfg.Format != "webp" && cfg.Format != "tga" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want webp or tga)\n", cfg.Format)
		os.Exit(1)
	}
	if *anim && cfg.Format != "webp" {
		fmt.Fprintln(os.Stderr, "Error: -anim requires webp format")
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	newScene := func() *scene.Scene {
		sc := scene.New()
		sc.Stacks = cfg.Stacks
		sc.Slices = cfg.Slices
		if *yaw != 0 {
			sc.Cam.Yaw = float32(*yaw)
		}
		if *pitch != 0 {
			sc.Cam.Pitch = float32(*pitch)
		}
		if *dist > 0 {
			sc.Cam.Dist = float32(*dist)
		}
		return sc
	}

	renderAt := func(sc *scene.Scene, t float64) (*image.NRGBA, error) {
		sc.Advance(t)
		img, err := sc.Render(cfg.RenderSize*cfg.Supersample, cfg.RenderSize*cfg.Supersample)
		if err != nil {
			return nil, err
		}
		return postprocess.Downsample(img, cfg.RenderSize), nil
	}

	// Single-frame mode.
	if *single >= 0 {
		img, err := renderAt(newScene(), *single)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		out := filepath.Join(cfg.OutputDir, fmt.Sprintf("pose_%.3fs.%s", *single, cfg.Format))
		if err := writeFrame(cfg.Format, out, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", out)
		return
	}

	fmt.Printf("Skeleton walk → %s frames\n", cfg.Format)
	fmt.Printf("Frames: %d @ %d fps, Size: %d, Workers: %d\n", cfg.Frames, cfg.FPS, cfg.RenderSize, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)

	start := time.Now()
	rendered, errs := renderAll(cfg, newScene, renderAt)
	for _, err := range errs {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Rendered %d frames in %.1fs\n", len(rendered), time.Since(start).Seconds())

	if *anim {
		out := filepath.Join(cfg.OutputDir, "walk.webp")
		imgs := make([]image.Image, len(rendered))
		for i, img := range rendered {
			imgs[i] = img
		}
		if err := export.WriteAnimation(out, imgs, cfg.FPS); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", out)
		return
	}

	for i, img := range rendered {
		out := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%04d.%s", i, cfg.Format))
		if err := writeFrame(cfg.Format, out, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Wrote %d files\n", len(rendered))
}

// renderAll renders every frame of the sequence in a worker pool. Each
// worker owns its own scene; the pose function is deterministic in t, so
// frame order is free to scatter across workers.
func renderAll(
	cfg config.Config,
	newScene func() *scene.Scene,
	renderAt func(*scene.Scene, float64) (*image.NRGBA, error),
) ([]*image.NRGBA, []error) {
	total := cfg.Frames
	rendered := make([]*image.NRGBA, total)
	errs := make([]error, total)
	var processed atomic.Int64

	start := time.Now()
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sc := newScene()
			for i := range frameChan {
				t := float64(i) / float64(cfg.FPS)
				rendered[i], errs[i] = renderAt(sc, t)
				processed.Add(1)
			}
		}()
	}
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)
	wg.Wait()
	close(done)

	return rendered, errs
}

func writeFrame(format, path string, img *image.NRGBA) error {
	if format == "tga" {
		return export.WriteTGA(path, img)
	}
	return export.WriteWebP(path, img)
}
