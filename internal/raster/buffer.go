// Package raster is a z-buffered software rasterizer for the two vertex
// streams the geometry extractor emits: depth-tested lines and flat-shaded
// triangles, drawn into a flat RGBA framebuffer.
package raster

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // 1/w per pixel, larger is closer, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float32, n)
	for i := range depth {
		depth[i] = math32.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}

// Fill sets every pixel to an opaque color without touching depth.
func (fb *FrameBuffer) Fill(r, g, b uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = 0xFF
	}
}

// Image copies the color plane into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

// set writes one opaque pixel, clamping the color to [0,1].
func (fb *FrameBuffer) set(idx int, c mgl32.Vec3) {
	o := idx * 4
	fb.Color[o] = channel(c.X())
	fb.Color[o+1] = channel(c.Y())
	fb.Color[o+2] = channel(c.Z())
	fb.Color[o+3] = 0xFF
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
