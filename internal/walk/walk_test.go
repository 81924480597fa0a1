package walk

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skelwalk/internal/rig"
)

func rotations(h *rig.Human) [][3]float32 {
	out := make([][3]float32, len(h.Skel.Bones))
	for i, b := range h.Skel.Bones {
		out[i] = [3]float32{b.Rotation.X(), b.Rotation.Y(), b.Rotation.Z()}
	}
	return out
}

// The pose is a pure function of t: fresh rigs posed at the same time carry
// bit-identical rotations.
func TestAnimate_Deterministic(t *testing.T) {
	for _, tv := range []float64{0, 0.1, 1.2345, 17.77, 1e4} {
		a := rig.NewHuman()
		b := rig.NewHuman()
		Animate(a, tv)
		Animate(b, tv)
		require.Equal(t, rotations(a), rotations(b), "t=%v", tv)
	}
}

// One walk period later the pose repeats exactly. The test times are dyadic
// so t+Period is computed without rounding.
func TestAnimate_PeriodicExactly(t *testing.T) {
	for _, tv := range []float64{0, 0.25, 1.25, 3.5} {
		a := rig.NewHuman()
		b := rig.NewHuman()
		Animate(a, tv)
		Animate(b, tv+Period)
		require.Equal(t, rotations(a), rotations(b), "t=%v", tv)
	}
}

// Knees flex on a half-wave-rectified sine: zero while the driving sine is
// negative, never positive-signed.
func TestAnimate_KneesNeverHyperextend(t *testing.T) {
	h := rig.NewHuman()
	for i := 0; i < 200; i++ {
		tv := float64(i) * 0.013
		Animate(h, tv)

		kneeL := h.Skel.Bones[h.Joints.KneeL].Rotation.X()
		kneeR := h.Skel.Bones[h.Joints.KneeR].Rotation.X()
		assert.LessOrEqual(t, kneeL, float32(0), "t=%v", tv)
		assert.LessOrEqual(t, kneeR, float32(0), "t=%v", tv)

		phase := math.Mod(tv, Period) * StepsPerSecond * 2 * math.Pi
		if math.Sin(phase) < -1e-9 {
			assert.Zero(t, kneeL, "t=%v", tv)
		}
		if math.Sin(phase+math.Pi) < -1e-9 {
			assert.Zero(t, kneeR, "t=%v", tv)
		}
	}
}

func TestAnimate_LegsOpposeAndArmsCounterSwing(t *testing.T) {
	h := rig.NewHuman()
	Animate(h, 0.1) // early in the cycle, sin(phase) > 0

	bones := h.Skel.Bones
	j := h.Joints
	hipL := bones[j.HipL].Rotation.X()
	hipR := bones[j.HipR].Rotation.X()
	shL := bones[j.ShoulderL].Rotation.X()

	require.NotZero(t, hipL)
	assert.InDelta(t, -hipL, hipR, 1e-6)
	// Left arm swings against the left leg.
	assert.Less(t, shL*hipL, float32(0))
}

// Animate leaves world transforms current: re-running FK changes nothing.
func TestAnimate_WorldTransformsFresh(t *testing.T) {
	h := rig.NewHuman()
	Animate(h, 2.3)

	before := make([]mgl32.Mat4, len(h.Skel.Bones))
	for i, b := range h.Skel.Bones {
		before[i] = b.World
	}
	h.Skel.UpdateWorld()
	for i, b := range h.Skel.Bones {
		assert.Equal(t, before[i], b.World, "bone %d", i)
	}
}
