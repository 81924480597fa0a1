package raster

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// LightConfig holds the flat-shading parameters for triangle fills:
// one directional key light plus an ambient floor.
type LightConfig struct {
	Dir     mgl32.Vec3 // normalized, pointing toward the light
	Ambient float32
	Direct  float32
}

// DefaultLightConfig returns a soft key light from above and in front.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Dir:     mgl32.Vec3{0.35, 0.8, 0.5}.Normalize(),
		Ambient: 0.45,
		Direct:  0.55,
	}
}

// shade returns the combined lighting scalar for a world-space face normal.
// Lambertian with abs so both faces light the same.
func (lc *LightConfig) shade(n mgl32.Vec3) float32 {
	return lc.Ambient + lc.Direct*math32.Abs(n.Dot(lc.Dir))
}

// DrawTriangles rasterizes an unindexed triangle list with depth testing and
// flat per-face shading. Vertices group as (0,1,2), (3,4,5), ...
func (fb *FrameBuffer) DrawTriangles(verts []ScreenVertex, lc *LightConfig) {
	for i := 0; i+2 < len(verts); i += 3 {
		a, b, c := verts[i], verts[i+1], verts[i+2]
		if !a.OK || !b.OK || !c.OK {
			continue
		}
		fb.triangle(a, b, c, lc)
	}
}

func (fb *FrameBuffer) triangle(v0, v1, v2 ScreenVertex, lc *LightConfig) {
	// Face normal in world space for flat shading.
	e1 := v1.World.Sub(v0.World)
	e2 := v2.World.Sub(v0.World)
	n := e1.Cross(e2)
	if n.Len() < 1e-12 {
		return
	}
	color := v0.Color.Mul(lc.shade(n.Normalize()))

	// Bounding box clipped to the framebuffer.
	minX := int(math32.Min(math32.Min(v0.X, v1.X), v2.X))
	maxX := int(math32.Max(math32.Max(v0.X, v1.X), v2.X)) + 1
	minY := int(math32.Min(math32.Min(v0.Y, v1.Y), v2.Y))
	maxY := int(math32.Max(math32.Max(v0.Y, v1.Y), v2.Y)) + 1
	if minX < 0 {
		minX = 0
	}
	if maxX > fb.Width-1 {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > fb.Height-1 {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup.
	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1 / det
	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		row := y * fb.Width
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			w0 := (dy12*(px-v2.X) + dx21*(py-v2.Y)) * invDet
			w1 := (dy20*(px-v2.X) + dx02*(py-v2.Y)) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			// 1/w interpolates linearly in screen space.
			depth := w0*v0.Depth + w1*v1.Depth + w2*v2.Depth
			idx := row + x
			if depth < fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = depth
			fb.set(idx, color)
		}
	}
}
