package model

import (
	"testing"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/chwjbn/line-viewer/viewer/gpu/gputest"
	"github.com/chwjbn/line-viewer/viewer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineModelUploads(t *testing.T) {
	ctx := gputest.New()

	m, err := NewLineModel(ctx, "segment", []mgl32.Vec3{{0, 0, 0}, {1, 1, 1}}, gpu.Lines)
	require.NoError(t, err)

	assert.NotZero(t, m.VertexBuffer())
	assert.Equal(t, int32(2), m.VertexCount())
	assert.Equal(t, int32(12), m.VertexStride())
	assert.Equal(t, uintptr(0), m.VertexOffset())
	assert.Equal(t, gpu.Lines, m.Topology())
	assert.Equal(t, []float32{0, 0, 0, 1, 1, 1}, ctx.BufferContents(m.VertexBuffer()))
	assert.Equal(t, gpu.Buffer(0), ctx.CurrentBuffer())

	lo, hi := m.Bounds()
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, lo)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, hi)

	m.Delete()
	assert.Equal(t, 0, ctx.Live())
	assert.Equal(t, int32(0), m.VertexCount())
}

func TestNewLineModelEmpty(t *testing.T) {
	ctx := gputest.New()

	m, err := NewLineModel(ctx, "empty", nil, gpu.LineStrip)
	require.NoError(t, err)
	assert.Equal(t, gpu.Buffer(0), m.VertexBuffer())
	assert.Equal(t, int32(0), m.VertexCount())
	assert.Empty(t, ctx.Calls)
}

func TestNewLineModelRejects(t *testing.T) {
	ctx := gputest.New()

	_, err := NewLineModel(ctx, "tri", []mgl32.Vec3{{}, {}, {}}, gpu.Primitive(0x0004))
	assert.Error(t, err)

	_, err = NewLineModel(ctx, "odd", []mgl32.Vec3{{}, {}, {}}, gpu.Lines)
	assert.Error(t, err)

	assert.Equal(t, 0, ctx.Live())
}

func TestShapes(t *testing.T) {
	cube := Cube(2)
	assert.Len(t, cube.Vertices, 24)
	assert.Equal(t, gpu.Lines, cube.Topology)
	for _, v := range cube.Vertices {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 1, abs(v[i]), 1e-6)
		}
	}

	axes := Axes(3)
	require.Len(t, axes, 3)
	assert.Equal(t, mgl32.Vec3{0, 3, 0}, axes[1].Vertices[1])
	assert.Equal(t, ColorBlue, axes[2].Color)

	grid := Grid(10, 5)
	assert.Len(t, grid.Vertices, 24)
	for _, v := range grid.Vertices {
		assert.Equal(t, float32(0), v[1])
	}

	circle := Circle(1, 2)
	assert.Len(t, circle.Vertices, 3)
	assert.Equal(t, gpu.LineLoop, circle.Topology)

	_, err := Shapes("teapot", 1)
	assert.Error(t, err)

	shapes, err := Shapes("scene", 1)
	require.NoError(t, err)
	assert.Len(t, shapes, 5)
}

func TestUploadedShapeRenders(t *testing.T) {
	ctx := gputest.New()
	s, err := shader.NewDefaultLineShader(ctx)
	require.NoError(t, err)

	m, err := Upload(ctx, Axes(1)[0])
	require.NoError(t, err)
	assert.Equal(t, ColorRed, m.Color())

	scene := staticScene{}
	ctx.Reset()
	require.NoError(t, s.RenderModel(m, scene))

	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, int32(2), ctx.Draws[0].Count)
	assert.Equal(t, m.VertexBuffer(), ctx.Draws[0].Buffer)
}

type staticScene struct{}

func (staticScene) ProjectionMatrix() (mgl32.Mat4, error) { return mgl32.Ident4(), nil }
func (staticScene) ModelViewMatrix() (mgl32.Mat4, error)  { return mgl32.Ident4(), nil }

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
