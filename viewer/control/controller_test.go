package control

import (
	"testing"

	"github.com/chwjbn/line-viewer/viewer/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) (*scene.Engine, *Controller) {
	t.Helper()
	engine, err := scene.NewEngine(scene.DefaultOptions())
	require.NoError(t, err)
	return engine, NewController(engine)
}

func TestDragRotates(t *testing.T) {
	engine, c := newController(t)

	c.Move(50, 50)
	assert.Equal(t, mgl32.QuatIdent(), engine.Rotation())

	c.Press(10, 10)
	c.Move(10+157, 10)
	c.Release()
	c.Move(500, 500)

	// 157px at 0.01 rad/px is about a quarter turn around y
	p := engine.ObjectMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 0, p[0], 1e-2)
	assert.InDelta(t, -1, p[2], 1e-2)
	assert.False(t, c.Dragging())
}

func TestScrollScales(t *testing.T) {
	engine, c := newController(t)

	c.Scroll(2)
	assert.InDelta(t, 1.21, engine.ScaleFactor(), 1e-5)

	c.Scroll(-2)
	assert.InDelta(t, 1, engine.ScaleFactor(), 1e-5)

	c.Scroll(0)
	assert.InDelta(t, 1, engine.ScaleFactor(), 1e-5)
}

func TestKeys(t *testing.T) {
	engine, c := newController(t)

	assert.Equal(t, RequestNone, c.Key(KeyRight))
	assert.Equal(t, RequestNone, c.Key(KeyUp))
	assert.Equal(t, RequestNone, c.Key(KeyUp))
	assert.InDelta(t, 0.1, engine.Translation()[0], 1e-6)
	assert.InDelta(t, 0.2, engine.Translation()[1], 1e-6)

	assert.Equal(t, RequestNone, c.Key(KeyReset))
	assert.Equal(t, mgl32.Vec3{}, engine.Translation())

	assert.Equal(t, RequestSnapshot, c.Key(KeySnapshot))
	assert.Equal(t, RequestQuit, c.Key(KeyQuit))
	assert.Equal(t, RequestNone, c.Key(KeyNone))
}
