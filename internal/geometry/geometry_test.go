package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skelwalk/internal/rig"
	"skelwalk/internal/walk"
)

// 13 line bones plus the 2·(2·20+1) grid segments give exactly 190 vertices.
func TestLines_VertexCount(t *testing.T) {
	h := rig.NewHuman()
	v := Lines(h.Skel)
	assert.Equal(t, 2*(13+82), len(v))
}

func TestLines_SegmentsShareColor(t *testing.T) {
	h := rig.NewHuman()
	walk.Animate(h, 0.7)
	v := Lines(h.Skel)

	require.Zero(t, len(v)%2)
	for i := 0; i+1 < len(v); i += 2 {
		assert.Equal(t, v[i].Color, v[i+1].Color, "segment %d", i/2)
	}
}

func TestLines_GridMajorDivisions(t *testing.T) {
	h := rig.NewHuman()
	v := Lines(h.Skel)

	grid := v[2*13:]
	bright, dim := 0, 0
	for i := 0; i < len(grid); i += 2 {
		switch grid[i].Color.X() {
		case 0.2:
			bright++
		case 0.08:
			dim++
		default:
			t.Fatalf("unexpected grid shade %v", grid[i].Color)
		}
	}
	// 9 of the 41 lines per axis are major divisions, 2 segments each.
	assert.Equal(t, 2*9, bright)
	assert.Equal(t, 2*32, dim)
}

func TestHeadSphere_VerticesOnRadius(t *testing.T) {
	tcs := []struct {
		name           string
		stacks, slices int
	}{
		{name: "minimal", stacks: 3, slices: 3},
		{name: "default", stacks: 16, slices: 24},
		{name: "odd", stacks: 7, slices: 5},
	}

	h := rig.NewHuman()
	walk.Animate(h, 1.3) // a nontrivial head orientation

	head := h.Joints.Head
	b := &h.Skel.Bones[head]
	radius := 0.6 * b.Length
	up := b.World.Col(1).Vec3()
	center := b.JointPos().Add(up.Mul(radius))

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			v := HeadSphere(h.Skel, head, tc.stacks, tc.slices)
			require.NotEmpty(t, v)
			require.Zero(t, len(v)%3)
			assert.Equal(t, 6*tc.stacks*tc.slices, len(v))

			for i, vert := range v {
				d := vert.Pos.Sub(center).Len()
				require.InDelta(t, radius, d, 1e-5, "vertex %d", i)
			}
		})
	}
}

func TestHeadSphere_BottomPoleTouchesJoint(t *testing.T) {
	h := rig.NewHuman()
	v := HeadSphere(h.Skel, h.Joints.Head, 4, 4)
	require.NotEmpty(t, v)

	joint := h.Skel.Bones[h.Joints.Head].JointPos()
	closest := float32(1e9)
	for _, vert := range v {
		if d := vert.Pos.Sub(joint).Len(); d < closest {
			closest = d
		}
	}
	assert.InDelta(t, 0, closest, 1e-5)
}

func TestHeadSphere_DegenerateInputsAreEmpty(t *testing.T) {
	h := rig.NewHuman()

	assert.Empty(t, HeadSphere(h.Skel, -1, 16, 24))
	assert.Empty(t, HeadSphere(h.Skel, len(h.Skel.Bones), 16, 24))
	assert.Empty(t, HeadSphere(h.Skel, h.Joints.Head, 2, 24))
	assert.Empty(t, HeadSphere(h.Skel, h.Joints.Head, 16, 2))

	// A skeleton with fewer bones than the expected slot renders nothing.
	small, err := rig.New([]rig.Bone{{Parent: -1, BindOffset: mgl32.Vec3{0, 1, 0}}})
	require.NoError(t, err)
	assert.Empty(t, HeadSphere(small, h.Joints.Head, 16, 24))
}
