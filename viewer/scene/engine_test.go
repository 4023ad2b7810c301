package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultOptions())
	require.NoError(t, err)
	return e
}

func TestMatricesNeedViewport(t *testing.T) {
	e := newEngine(t)

	_, err := e.ProjectionMatrix()
	assert.ErrorIs(t, err, ErrNoViewport)
	_, err = e.ModelViewMatrix()
	assert.ErrorIs(t, err, ErrNoViewport)

	e.SetViewport(800, 600)
	proj, err := e.ProjectionMatrix()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100), proj)
}

func TestModelViewComposition(t *testing.T) {
	e := newEngine(t)
	e.SetViewport(100, 100)

	mv, err := e.ModelViewMatrix()
	require.NoError(t, err)
	assert.Equal(t, e.ViewMatrix(), mv)

	// the camera sits on +z looking at the origin
	p := mv.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -5, p[2], 1e-5)

	e.Scale(2)
	e.Rotate(mgl32.DegToRad(90), 0)
	e.Translate(1, 0)

	// scale first, then rotate, then translate
	obj := e.ObjectMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, obj[0], 1e-5)
	assert.InDelta(t, 0, obj[1], 1e-5)
	assert.InDelta(t, -2, obj[2], 1e-5)

	mv, err = e.ModelViewMatrix()
	require.NoError(t, err)
	assert.True(t, mv.ApproxEqualThreshold(e.ViewMatrix().Mul4(e.ObjectMatrix()), 1e-6))
}

func TestScaleClamp(t *testing.T) {
	e := newEngine(t)

	e.Scale(1000)
	assert.Equal(t, float32(maxScale), e.ScaleFactor())

	e.Scale(1e-6)
	assert.Equal(t, float32(minScale), e.ScaleFactor())

	e.Scale(-1)
	assert.Equal(t, float32(minScale), e.ScaleFactor())
}

func TestReset(t *testing.T) {
	e := newEngine(t)
	e.SetViewport(10, 10)
	e.Rotate(1, 1)
	e.Translate(2, 3)
	e.Scale(3)

	e.Reset()

	assert.Equal(t, mgl32.QuatIdent(), e.Rotation())
	assert.Equal(t, mgl32.Vec3{}, e.Translation())
	assert.Equal(t, float32(1), e.ScaleFactor())
	assert.Equal(t, mgl32.Ident4(), e.ObjectMatrix())

	w, h := e.Viewport()
	assert.Equal(t, 10, w)
	assert.Equal(t, 10, h)
}

func TestFitMovesCamera(t *testing.T) {
	e := newEngine(t)
	before := e.ViewMatrix()

	e.Fit(mgl32.Vec3{-10, -10, -10}, mgl32.Vec3{10, 10, 10})
	p := e.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.Less(t, p[2], before.Mul4x1(mgl32.Vec4{0, 0, 0, 1})[2])
	assert.Greater(t, e.opts.Far, -p[2])
}

func TestNewEngineValidates(t *testing.T) {
	for _, opts := range []Options{
		{FovY: 0, Near: 0.1, Far: 10, Distance: 1},
		{FovY: 45, Near: 0, Far: 10, Distance: 1},
		{FovY: 45, Near: 1, Far: 1, Distance: 1},
		{FovY: 45, Near: 0.1, Far: 10, Distance: 0},
	} {
		_, err := NewEngine(opts)
		assert.Error(t, err)
	}
}
