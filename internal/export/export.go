// Package export encodes rendered frames to disk: lossless WebP stills,
// animated WebP loops, and TGA.
package export

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// WriteWebP encodes a single lossless WebP frame.
func WriteWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("export: webp encode %s: %w", path, err)
	}
	return nil
}

// WriteTGA encodes a single TGA frame.
func WriteTGA(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	if err := tga.Encode(f, img); err != nil {
		return fmt.Errorf("export: tga encode %s: %w", path, err)
	}
	return nil
}

// WriteAnimation encodes ordered frames as an endlessly looping animated
// WebP at the given frame rate.
func WriteAnimation(path string, frames []image.Image, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("export: no frames for %s", path)
	}
	if fps <= 0 {
		fps = 30
	}

	durations := make([]uint, len(frames))
	disposals := make([]uint, len(frames))
	frameMS := uint(1000 / fps)
	for i := range durations {
		durations[i] = frameMS
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	ani := nativewebp.Animation{
		Images:    frames,
		Durations: durations,
		Disposals: disposals,
		LoopCount: 0, // loop forever
	}
	if err := nativewebp.EncodeAll(f, &ani, nil); err != nil {
		return fmt.Errorf("export: animation encode %s: %w", path, err)
	}
	return nil
}
