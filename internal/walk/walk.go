// Package walk poses the human rig with a closed-form walk cycle.
// The pose is a pure function of elapsed time: no state is carried
// between calls, so any time can be scrubbed to or replayed exactly.
package walk

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"skelwalk/internal/rig"
)

// StepsPerSecond is the walk cadence driving the cycle phase.
const StepsPerSecond = 1.6

// Period is the duration of one full step in seconds.
const Period = 1 / StepsPerSecond

// Joint motion amplitudes in degrees, phase offsets in radians.
const (
	pelvisRoll = 3
	spineTilt  = 5
	neckTilt   = 3
	headTilt   = 2
	hipSwing   = 30
	kneeFlex   = 25
	ankleRock  = 5
	armSwing   = 35
	elbowFlex  = 10
	wristRock  = 5
	anklePhase = 0.4
	wristPhase = 1.0
)

// Animate overwrites every posable bone's rotation for elapsed time t in
// seconds and refreshes world transforms, so callers never observe a pose
// with stale transforms. Legs swing in opposite phase, arms counter the
// legs, and knees/elbows flex on a half-wave-rectified sine so they only
// ever bend forward.
func Animate(h *rig.Human, t float64) {
	// Wrap into a single cycle before scaling to phase; this keeps the
	// pose bit-exactly periodic in Period and avoids precision loss for
	// large t.
	phase := math.Mod(t, Period) * StepsPerSecond * 2 * math.Pi

	bones := h.Skel.Bones
	j := h.Joints
	set := func(idx int, rx, ry, rz float64) {
		bones[idx].Rotation = mgl32.Vec3{float32(rx), float32(ry), float32(rz)}
	}

	// Pelvis roll with spine/neck/head counter-tilts for a subtle sway.
	set(j.Root, 0, 0, pelvisRoll*math.Sin(phase))
	set(j.Spine, spineTilt*math.Sin(phase), 0, 0)
	set(j.Neck, -neckTilt*math.Sin(phase), 0, 0)
	set(j.Head, headTilt*math.Sin(phase), 0, 0)

	// Legs: hips rotate about X, knees flex only while the leg swings forward.
	hip := hipSwing * math.Sin(phase)
	set(j.HipL, hip, 0, 0)
	set(j.KneeL, -kneeFlex*math.Max(0, math.Sin(phase)), 0, 0)
	set(j.AnkleL, ankleRock*math.Sin(phase+anklePhase), 0, 0)

	set(j.HipR, -hip, 0, 0)
	set(j.KneeR, -kneeFlex*math.Max(0, math.Sin(phase+math.Pi)), 0, 0)
	set(j.AnkleR, ankleRock*math.Sin(phase+math.Pi+anklePhase), 0, 0)

	// Arms swing opposite the legs; elbows flex near the extremes.
	arm := armSwing * math.Sin(phase+math.Pi)
	set(j.ShoulderL, arm, 0, 0)
	set(j.ElbowL, -elbowFlex*math.Max(0, math.Sin(phase+math.Pi)), 0, 0)
	set(j.WristL, wristRock*math.Sin(phase+wristPhase), 0, 0)

	set(j.ShoulderR, -arm, 0, 0)
	set(j.ElbowR, -elbowFlex*math.Max(0, math.Sin(phase)), 0, 0)
	set(j.WristR, wristRock*math.Sin(phase+math.Pi+wristPhase), 0, 0)

	h.Skel.UpdateWorld()
}
