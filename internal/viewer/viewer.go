// Package viewer runs the real-time frame loop in an ebiten window.
// Per tick: pointer input mutates the orbit camera, the monotonic clock
// drives the animator, and the software-rendered frame is blitted to the
// screen. The loop ends only when the window closes.
package viewer

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"skelwalk/internal/scene"
)

// Game owns the scene and the input/clock state between ticks.
type Game struct {
	scene    *scene.Scene
	start    time.Time
	width    int
	height   int
	frame    *ebiten.Image
	dragging bool
	lastX    int
	lastY    int
	err      error
}

// New wraps a scene for display at the given window size.
func New(sc *scene.Scene, width, height int) *Game {
	return &Game{scene: sc, start: time.Now(), width: width, height: height}
}

// Update polls input and advances the walk cycle.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.scene.Cam.Drag(float32(x-g.lastX), float32(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scene.Cam.Zoom(float32(wy))
	}

	g.scene.Advance(time.Since(g.start).Seconds())
	return nil
}

// Draw renders the posed scene and blits it to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	img, err := g.scene.Render(g.width, g.height)
	if err != nil {
		g.err = err // surfaced by the next Update
		return
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.width, g.height)
	}
	// Frames are fully opaque, so NRGBA pixels are valid premultiplied RGBA.
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

// Layout fixes the logical resolution to the render size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(sc *scene.Scene, width, height int) error {
	ebiten.SetWindowTitle("Skeleton Walk")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(60)
	return ebiten.RunGame(New(sc, width, height))
}
