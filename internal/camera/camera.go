// Package camera provides the orbit camera for the walker scene.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	dragScale  = 0.3 // degrees per pixel of pointer drag
	zoomScale  = 0.2 // distance per scroll notch
	pitchLimit = 85  // keeps the view away from the poles
	minDist    = 1.2
	maxDist    = 8.0
)

// Orbit is a yaw/pitch/distance camera around a fixed target. State is a
// direct function of accumulated input deltas; there is no interpolation.
type Orbit struct {
	Yaw    float32 // degrees
	Pitch  float32 // degrees, clamped to ±pitchLimit
	Dist   float32 // world units, clamped to [minDist, maxDist]
	Target mgl32.Vec3
}

// NewOrbit returns the default framing of the walker.
func NewOrbit() Orbit {
	return Orbit{Yaw: 30, Pitch: -15, Dist: 3, Target: mgl32.Vec3{0, 1, 0}}
}

// Drag applies a pointer delta in pixels.
func (c *Orbit) Drag(dx, dy float32) {
	c.Yaw += dx * dragScale
	c.Pitch = clamp(c.Pitch+dy*dragScale, -pitchLimit, pitchLimit)
}

// Zoom applies a scroll delta in notches.
func (c *Orbit) Zoom(dy float32) {
	c.Dist = clamp(c.Dist-dy*zoomScale, minDist, maxDist)
}

// View returns the look-at matrix for the current parameters.
func (c *Orbit) View() mgl32.Mat4 {
	cy := math32.Cos(mgl32.DegToRad(c.Yaw))
	sy := math32.Sin(mgl32.DegToRad(c.Yaw))
	cp := math32.Cos(mgl32.DegToRad(c.Pitch))
	sp := math32.Sin(mgl32.DegToRad(c.Pitch))

	dir := mgl32.Vec3{cy * cp, sp, sy * cp}
	eye := c.Target.Sub(dir.Mul(c.Dist))
	return mgl32.LookAtV(eye, c.Target, mgl32.Vec3{0, 1, 0})
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
