// Package scene orchestrates the per-frame pipeline: animate, evaluate
// forward kinematics, extract geometry, then rasterize. The phases run in
// that order on a single goroutine; the skeleton is the only shared state
// and is owned by the Scene.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"skelwalk/internal/camera"
	"skelwalk/internal/geometry"
	"skelwalk/internal/raster"
	"skelwalk/internal/rig"
	"skelwalk/internal/walk"
)

// Projection constants shared by every frame.
const (
	fovDegrees = 60
	nearPlane  = 0.05
	farPlane   = 50
)

var clearColor = [3]uint8{13, 15, 20}

// Scene owns the rig, camera and render parameters for one frame pipeline.
type Scene struct {
	Human  *rig.Human
	Cam    camera.Orbit
	Stacks int
	Slices int
	Light  raster.LightConfig
}

// New returns a scene with the human rig in bind pose and default framing.
func New() *Scene {
	return &Scene{
		Human:  rig.NewHuman(),
		Cam:    camera.NewOrbit(),
		Stacks: geometry.DefaultStacks,
		Slices: geometry.DefaultSlices,
		Light:  raster.DefaultLightConfig(),
	}
}

// Advance poses the skeleton for elapsed time t in seconds. World
// transforms are refreshed before it returns.
func (sc *Scene) Advance(t float64) {
	walk.Animate(sc.Human, t)
}

// Render draws the current pose into a fresh framebuffer image. Both vertex
// streams are rebuilt from scratch and capacity-checked before any drawing;
// a stream over the upload budget fails the frame rather than truncating.
func (sc *Scene) Render(width, height int) (*image.NRGBA, error) {
	lines := geometry.Lines(sc.Human.Skel)
	head := geometry.HeadSphere(sc.Human.Skel, sc.Human.Joints.Head, sc.Stacks, sc.Slices)

	if err := raster.CheckCapacity(len(lines)); err != nil {
		return nil, fmt.Errorf("scene: line stream: %w", err)
	}
	if err := raster.CheckCapacity(len(head)); err != nil {
		return nil, fmt.Errorf("scene: triangle stream: %w", err)
	}

	aspect := float32(width) / float32(height)
	proj := mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, nearPlane, farPlane)
	viewProj := proj.Mul4(sc.Cam.View())

	fb := raster.NewFrameBuffer(width, height)
	fb.Fill(clearColor[0], clearColor[1], clearColor[2])
	fb.DrawLines(raster.Project(lines, viewProj, width, height))
	fb.DrawTriangles(raster.Project(head, viewProj, width, height), &sc.Light)
	return fb.Image(), nil
}
