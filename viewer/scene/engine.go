// Package scene keeps the camera and the object transform of the viewer
// and turns them into projection and model-view matrices.
package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrNoViewport = errors.New("viewport not set")

const (
	minScale = 0.05
	maxScale = 50
)

type Options struct {
	FovY     float32 // degrees
	Near     float32
	Far      float32
	Distance float32 // camera distance from the origin along +z
}

func DefaultOptions() Options {
	return Options{FovY: 45, Near: 0.1, Far: 100, Distance: 5}
}

// Engine is the scene state read by the line shader. It is owned by the
// render loop and is not safe for concurrent use.
type Engine struct {
	opts   Options
	width  int
	height int

	scale       float32
	translation mgl32.Vec3
	rotation    mgl32.Quat
}

func NewEngine(opts Options) (*Engine, error) {

	var xErr error

	if opts.FovY <= 0 || opts.FovY >= 180 {
		xErr = fmt.Errorf("invalid fov [%v]", opts.FovY)
		return nil, xErr
	}

	if opts.Near <= 0 || opts.Far <= opts.Near {
		xErr = fmt.Errorf("invalid clip planes near=[%v] far=[%v]", opts.Near, opts.Far)
		return nil, xErr
	}

	if opts.Distance <= 0 {
		xErr = fmt.Errorf("invalid camera distance [%v]", opts.Distance)
		return nil, xErr
	}

	e := &Engine{opts: opts}
	e.Reset()

	return e, xErr
}

// SetViewport records the framebuffer size used for the aspect ratio.
func (e *Engine) SetViewport(width int, height int) {
	e.width = width
	e.height = height
}

func (e *Engine) Viewport() (int, int) {
	return e.width, e.height
}

func (e *Engine) ready() error {
	if e.width <= 0 || e.height <= 0 {
		return ErrNoViewport
	}
	return nil
}

func (e *Engine) ProjectionMatrix() (mgl32.Mat4, error) {
	if err := e.ready(); err != nil {
		return mgl32.Mat4{}, err
	}
	aspect := float32(e.width) / float32(e.height)
	return mgl32.Perspective(mgl32.DegToRad(e.opts.FovY), aspect, e.opts.Near, e.opts.Far), nil
}

// ModelViewMatrix is camera × object, where the object transform applies
// scale, then rotation, then translation.
func (e *Engine) ModelViewMatrix() (mgl32.Mat4, error) {
	if err := e.ready(); err != nil {
		return mgl32.Mat4{}, err
	}
	return e.ViewMatrix().Mul4(e.ObjectMatrix()), nil
}

func (e *Engine) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{0, 0, e.opts.Distance}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

func (e *Engine) ObjectMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(e.translation[0], e.translation[1], e.translation[2])
	r := e.rotation.Mat4()
	s := mgl32.Scale3D(e.scale, e.scale, e.scale)
	return t.Mul4(r).Mul4(s)
}

// Rotate turns the object by yaw around the view's y axis and pitch around
// its x axis, both in radians.
func (e *Engine) Rotate(yaw float32, pitch float32) {
	qy := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 1, 0})
	qx := mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0})
	e.rotation = qx.Mul(qy).Mul(e.rotation).Normalize()
}

// Scale multiplies the object scale, clamped to a usable range.
func (e *Engine) Scale(factor float32) {
	if factor <= 0 {
		return
	}
	e.scale = mgl32.Clamp(e.scale*factor, minScale, maxScale)
}

func (e *Engine) Translate(dx float32, dy float32) {
	e.translation = e.translation.Add(mgl32.Vec3{dx, dy, 0})
}

func (e *Engine) Rotation() mgl32.Quat { return e.rotation }

func (e *Engine) ScaleFactor() float32 { return e.scale }

func (e *Engine) Translation() mgl32.Vec3 { return e.translation }

// Reset clears the object transform. The viewport is kept.
func (e *Engine) Reset() {
	e.scale = 1
	e.translation = mgl32.Vec3{}
	e.rotation = mgl32.QuatIdent()
}

// Fit moves the camera back far enough to see a box of the given bounds.
func (e *Engine) Fit(lo mgl32.Vec3, hi mgl32.Vec3) {
	radius := hi.Sub(lo).Len() / 2
	if radius <= 0 {
		return
	}
	distance := radius / float32(math.Sin(float64(mgl32.DegToRad(e.opts.FovY)/2)))
	e.opts.Distance = distance * 1.2
	if e.opts.Far < e.opts.Distance+radius {
		e.opts.Far = (e.opts.Distance + radius) * 2
	}
}
