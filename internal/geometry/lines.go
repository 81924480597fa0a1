// Package geometry turns a posed skeleton into renderable vertex streams:
// an unindexed line list for bones and the ground grid, and an unindexed
// triangle list for the head sphere. Streams are rebuilt from scratch on
// every call and owned by the caller.
package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"skelwalk/internal/rig"
)

// Vertex is one element of a stream: world position plus RGB color.
type Vertex struct {
	Pos   mgl32.Vec3
	Color mgl32.Vec3
}

// Bones at or below this length render as nothing.
const lengthEpsilon = 1e-6

// Ground grid: 2·gridHalfLines+1 lines per axis, every 5th line brighter.
const (
	gridHalfLines = 20
	gridSpacing   = 0.1
	gridExtent    = 2.0
)

var boneColor = mgl32.Vec3{1.0, 0.9, 0.4}

// Lines returns the line-list stream for the posed skeleton followed by the
// ground grid. Each segment contributes two vertices sharing one color.
// Hidden, solid-rendered and near-zero-length bones are skipped.
func Lines(s *rig.Skeleton) []Vertex {
	v := make([]Vertex, 0, 2*len(s.Bones)+4*(2*gridHalfLines+1))

	for i := range s.Bones {
		b := &s.Bones[i]
		if b.Style != rig.StyleLine || b.Length <= lengthEpsilon {
			continue
		}
		v = appendSegment(v, b.JointPos(), b.EndpointPos(), boneColor)
	}

	for i := -gridHalfLines; i <= gridHalfLines; i++ {
		shade := float32(0.08)
		if i%5 == 0 {
			shade = 0.2
		}
		c := mgl32.Vec3{shade, shade, shade}
		x := float32(i) * gridSpacing
		v = appendSegment(v, mgl32.Vec3{x, 0, -gridExtent}, mgl32.Vec3{x, 0, gridExtent}, c)
		v = appendSegment(v, mgl32.Vec3{-gridExtent, 0, x}, mgl32.Vec3{gridExtent, 0, x}, c)
	}

	return v
}

func appendSegment(v []Vertex, a, b, c mgl32.Vec3) []Vertex {
	return append(v, Vertex{a, c}, Vertex{b, c})
}
