// Package postprocess scales supersampled frames down to output size.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a fully opaque frame to target×target with CatmullRom
// filtering. Frames already at or below the target size pass through.
func Downsample(img *image.NRGBA, target int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= target && b.Dy() <= target {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, target, target))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
