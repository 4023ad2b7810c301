// Package control maps pointer and key input onto the scene transform.
package control

import (
	"math"

	"github.com/chwjbn/line-viewer/viewer/scene"
)

type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyReset
	KeySnapshot
	KeyQuit
)

// Request is what the render loop must do after a key press.
type Request int

const (
	RequestNone Request = iota
	RequestSnapshot
	RequestQuit
)

type Controller struct {
	scene *scene.Engine

	// RotateSpeed is radians per pixel dragged.
	RotateSpeed float32
	// ScaleStep is the scale factor applied per scroll notch.
	ScaleStep float32
	// PanStep is the translation per arrow key press.
	PanStep float32

	dragging     bool
	lastX, lastY float64
}

func NewController(engine *scene.Engine) *Controller {
	return &Controller{
		scene:       engine,
		RotateSpeed: 0.01,
		ScaleStep:   1.1,
		PanStep:     0.1,
	}
}

func (c *Controller) Dragging() bool { return c.dragging }

// Press starts a rotate drag at the cursor position.
func (c *Controller) Press(x float64, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Controller) Release() {
	c.dragging = false
}

// Move rotates the object by the cursor delta while dragging.
func (c *Controller) Move(x float64, y float64) {
	if !c.dragging {
		return
	}
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y
	c.scene.Rotate(dx*c.RotateSpeed, dy*c.RotateSpeed)
}

// Scroll scales by ScaleStep per notch; positive offsets zoom in.
func (c *Controller) Scroll(offset float64) {
	if offset == 0 {
		return
	}
	c.scene.Scale(float32(math.Pow(float64(c.ScaleStep), offset)))
}

func (c *Controller) Key(key Key) Request {
	switch key {
	case KeyLeft:
		c.scene.Translate(-c.PanStep, 0)
	case KeyRight:
		c.scene.Translate(c.PanStep, 0)
	case KeyUp:
		c.scene.Translate(0, c.PanStep)
	case KeyDown:
		c.scene.Translate(0, -c.PanStep)
	case KeyReset:
		c.scene.Reset()
	case KeySnapshot:
		return RequestSnapshot
	case KeyQuit:
		return RequestQuit
	}
	return RequestNone
}
