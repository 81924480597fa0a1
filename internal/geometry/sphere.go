package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"skelwalk/internal/rig"
)

// Default head tessellation.
const (
	DefaultStacks = 16
	DefaultSlices = 24
)

// Head sphere radius as a fraction of the head bone length.
const headRadiusRatio = 0.6

var headColor = mgl32.Vec3{0.95, 0.8, 0.65}

// HeadSphere returns a triangle-list stream for the head: a sphere whose
// bottom pole rests on the head joint, oriented by the head bone's world
// basis. Latitude rings run pole to pole; each lat/long cell emits two
// counter-clockwise triangles. An out-of-range head handle or a tessellation
// below 3×3 yields an empty stream rather than an error.
func HeadSphere(s *rig.Skeleton, head, stacks, slices int) []Vertex {
	if head < 0 || head >= len(s.Bones) {
		return nil
	}
	if stacks < 3 || slices < 3 {
		return nil
	}

	b := &s.Bones[head]
	radius := headRadiusRatio * b.Length

	// Rotation columns of the world transform give the bone's local basis.
	right := b.World.Col(0).Vec3()
	up := b.World.Col(1).Vec3()
	fwd := b.World.Col(2).Vec3()
	center := b.JointPos().Add(up.Mul(radius))

	point := func(stack, slice int) mgl32.Vec3 {
		lat := -math.Pi/2 + math.Pi*float64(stack)/float64(stacks)
		lon := 2 * math.Pi * float64(slice) / float64(slices)
		cl := math.Cos(lat)
		x := float32(cl * math.Cos(lon))
		y := float32(math.Sin(lat))
		z := float32(cl * math.Sin(lon))
		d := right.Mul(x).Add(up.Mul(y)).Add(fwd.Mul(z))
		return center.Add(d.Mul(radius))
	}

	v := make([]Vertex, 0, 6*stacks*slices)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			p00 := point(st, sl)
			p10 := point(st+1, sl)
			p01 := point(st, sl+1)
			p11 := point(st+1, sl+1)
			v = append(v,
				Vertex{p00, headColor}, Vertex{p10, headColor}, Vertex{p11, headColor},
				Vertex{p00, headColor}, Vertex{p11, headColor}, Vertex{p01, headColor},
			)
		}
	}
	return v
}
