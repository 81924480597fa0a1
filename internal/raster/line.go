package raster

import "github.com/chewxy/math32"

// DrawLines rasterizes an unindexed line list with depth testing.
// Vertices pair up as (0,1), (2,3), ... and each pair shares one color.
func (fb *FrameBuffer) DrawLines(verts []ScreenVertex) {
	for i := 0; i+1 < len(verts); i += 2 {
		a, b := verts[i], verts[i+1]
		if !a.OK || !b.OK {
			continue
		}
		fb.line(a, b)
	}
}

func (fb *FrameBuffer) line(a, b ScreenVertex) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math32.Max(math32.Abs(dx), math32.Abs(dy))) + 1

	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x := int(a.X + dx*t)
		y := int(a.Y + dy*t)
		if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
			continue
		}
		depth := a.Depth + (b.Depth-a.Depth)*t
		idx := y*fb.Width + x
		if depth < fb.Depth[idx] {
			continue
		}
		fb.Depth[idx] = depth
		fb.set(idx, a.Color)
	}
}
