package raster

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"skelwalk/internal/geometry"
)

// MaxStreamBytes is the fixed upload capacity per vertex stream.
const MaxStreamBytes = 1 << 20

// vertexBytes is the wire size of one stream vertex: position + color, float32.
const vertexBytes = 24

// ErrStreamOverflow reports a vertex stream larger than the upload buffer.
var ErrStreamOverflow = errors.New("raster: vertex stream exceeds buffer capacity")

// CheckCapacity rejects streams that would overflow the upload buffer.
// Overflow is a hard error: truncating would silently drop geometry.
func CheckCapacity(vertices int) error {
	if n := vertices * vertexBytes; n > MaxStreamBytes {
		return fmt.Errorf("%w: %d vertices (%d bytes > %d)", ErrStreamOverflow, vertices, n, MaxStreamBytes)
	}
	return nil
}

// ScreenVertex is a stream vertex projected into pixel coordinates.
type ScreenVertex struct {
	X, Y  float32
	Depth float32 // 1/w, larger is closer
	World mgl32.Vec3
	Color mgl32.Vec3
	OK    bool // false when the vertex is behind the near plane
}

// Project maps world-space vertices through the combined view-projection
// matrix into screen pixels. Vertices behind the near plane are flagged
// rather than clipped; primitives touching them are skipped at draw time.
func Project(verts []geometry.Vertex, viewProj mgl32.Mat4, w, h int) []ScreenVertex {
	out := make([]ScreenVertex, len(verts))
	halfW := float32(w) / 2
	halfH := float32(h) / 2

	for i, v := range verts {
		clip := viewProj.Mul4x1(v.Pos.Vec4(1))
		if clip.W() <= 1e-6 {
			out[i] = ScreenVertex{World: v.Pos, Color: v.Color}
			continue
		}
		inv := 1 / clip.W()
		out[i] = ScreenVertex{
			X:     (clip.X()*inv + 1) * halfW,
			Y:     (1 - clip.Y()*inv) * halfH,
			Depth: inv,
			World: v.Pos,
			Color: v.Color,
			OK:    true,
		}
	}
	return out
}
