package render

import (
	"errors"
	"testing"
	"time"

	"github.com/chwjbn/line-viewer/glog"
	"github.com/chwjbn/line-viewer/glib"
	"github.com/chwjbn/line-viewer/viewer/gpu/gputest"
	"github.com/chwjbn/line-viewer/viewer/model"
	"github.com/chwjbn/line-viewer/viewer/scene"
	"github.com/chwjbn/line-viewer/viewer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testOptions(t *testing.T) Options {
	return Options{
		ClearColor:  [4]float32{0.1, 0.2, 0.3, 1},
		LineWidth:   2,
		Fit:         true,
		SnapshotDir: t.TempDir(),
	}
}

func newRenderer(t *testing.T, s Scene) (*gputest.Context, *Renderer) {
	t.Helper()
	ctx := gputest.New()
	lineShader, err := shader.NewDefaultLineShader(ctx)
	require.NoError(t, err)
	return ctx, NewRenderer(ctx, lineShader, s, testOptions(t))
}

func newEngine(t *testing.T) *scene.Engine {
	t.Helper()
	engine, err := scene.NewEngine(scene.DefaultOptions())
	require.NoError(t, err)
	return engine
}

func observeLog(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	glog.SetLogger(zap.New(core))
	t.Cleanup(func() { glog.SetLogger(nil) })
	return logs
}

func warnings(logs *observer.ObservedLogs) []observer.LoggedEntry {
	var warned []observer.LoggedEntry
	for _, entry := range logs.AllUntimed() {
		if entry.Level == zapcore.WarnLevel {
			warned = append(warned, entry)
		}
	}
	return warned
}

func loadScene(t *testing.T, r *Renderer) {
	t.Helper()
	shapes, err := model.Shapes("scene", 2)
	require.NoError(t, err)
	require.NoError(t, r.LoadShapes(shapes))
}

func TestFrameDrawsEveryModel(t *testing.T) {
	engine := newEngine(t)
	ctx, r := newRenderer(t, engine)
	loadScene(t, r)
	r.Resize(640, 480)

	ctx.Reset()
	assert.Equal(t, 5, r.Frame())

	require.Len(t, ctx.Draws, 5)
	for i, lineModel := range r.Models() {
		assert.Equal(t, lineModel.VertexBuffer(), ctx.Draws[i].Buffer)
		assert.Equal(t, lineModel.VertexCount(), ctx.Draws[i].Count)
	}

	names := ctx.CallNames()
	require.GreaterOrEqual(t, len(names), 3)
	assert.Equal(t, []string{"ClearColor", "Clear", "LineWidth"}, names[:3])
	assert.Equal(t, []interface{}{float32(0.1), float32(0.2), float32(0.3), float32(1)}, ctx.Calls[0].Args)
	assert.Equal(t, []interface{}{float32(2)}, ctx.Calls[2].Args)
}

func TestFrameSkipsZeroViewport(t *testing.T) {
	logs := observeLog(t)
	engine := newEngine(t)
	ctx, r := newRenderer(t, engine)
	loadScene(t, r)

	r.Resize(640, 480)
	r.Resize(0, 0)

	ctx.Reset()
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, r.Frame())
	}
	assert.Empty(t, ctx.Calls)
	assert.Empty(t, warnings(logs))

	r.Resize(640, 480)
	assert.Equal(t, 5, r.Frame())
}

type brokenScene struct {
	*scene.Engine
	err error
}

func (s *brokenScene) ProjectionMatrix() (mgl32.Mat4, error) {
	if s.err != nil {
		return mgl32.Mat4{}, s.err
	}
	return s.Engine.ProjectionMatrix()
}

func TestFrameSceneErrorLoggedOnce(t *testing.T) {
	logs := observeLog(t)
	broken := &brokenScene{Engine: newEngine(t), err: errors.New("camera lost")}
	ctx, r := newRenderer(t, broken)
	loadScene(t, r)
	r.Resize(640, 480)

	ctx.Reset()
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, r.Frame())
	}
	assert.Empty(t, ctx.Draws)

	warned := warnings(logs)
	require.Len(t, warned, 1)
	assert.Contains(t, warned[0].Message, "camera lost")

	broken.err = nil
	assert.Equal(t, 5, r.Frame())

	// a new failure after recovery is reported again
	broken.err = errors.New("camera lost")
	r.Frame()
	assert.Len(t, warnings(logs), 2)
}

func TestLoadShapesMergesBoundsAndFits(t *testing.T) {
	engine := newEngine(t)
	_, r := newRenderer(t, engine)
	before := engine.ViewMatrix()

	loadScene(t, r)

	lo, hi := r.Bounds()
	assert.Equal(t, mgl32.Vec3{-2, -1, -2}, lo)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, hi)
	assert.NotEqual(t, before, engine.ViewMatrix())
}

func TestLoadShapesWithoutFit(t *testing.T) {
	engine := newEngine(t)
	ctx := gputest.New()
	lineShader, err := shader.NewDefaultLineShader(ctx)
	require.NoError(t, err)

	opts := testOptions(t)
	opts.Fit = false
	r := NewRenderer(ctx, lineShader, engine, opts)
	before := engine.ViewMatrix()

	loadScene(t, r)
	assert.Equal(t, before, engine.ViewMatrix())
}

func TestLoadShapesRejectsBadShape(t *testing.T) {
	_, r := newRenderer(t, newEngine(t))

	err := r.LoadShapes([]model.Shape{{Name: "odd", Vertices: []mgl32.Vec3{{}, {}, {}}, Topology: model.Cube(1).Topology}})
	assert.ErrorContains(t, err, "upload model [odd]")
	assert.Empty(t, r.Models())
}

func TestSnapshotAndRelease(t *testing.T) {
	engine := newEngine(t)
	ctx, r := newRenderer(t, engine)
	loadScene(t, r)
	r.Resize(16, 8)

	file, err := r.Snapshot(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, glib.FileExists(file))

	r.Release()
	assert.Equal(t, 0, ctx.Live())
	assert.Empty(t, r.Models())
	r.Release()
}
