// Package model holds line geometry uploaded to GPU vertex buffers.
package model

import (
	"fmt"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// vertexStride is the byte size of one tightly packed xyz position.
const vertexStride = 3 * 4

type LineModel struct {
	ctx      gpu.Context
	name     string
	buffer   gpu.Buffer
	count    int32
	topology gpu.Primitive
	color    mgl32.Vec4
	lo, hi   mgl32.Vec3
}

// NewLineModel uploads vertices into a new static vertex buffer. An empty
// vertex list gives a model that draws nothing and owns no buffer.
func NewLineModel(ctx gpu.Context, name string, vertices []mgl32.Vec3, topology gpu.Primitive) (*LineModel, error) {

	var xErr error

	if !topology.IsLine() {
		xErr = fmt.Errorf("model [%s] topology [%v] is not a line topology", name, topology)
		return nil, xErr
	}

	if topology == gpu.Lines && len(vertices)%2 != 0 {
		xErr = fmt.Errorf("model [%s] has [%d] vertices, line lists need pairs", name, len(vertices))
		return nil, xErr
	}

	m := &LineModel{
		ctx:      ctx,
		name:     name,
		count:    int32(len(vertices)),
		topology: topology,
		color:    mgl32.Vec4{1, 1, 1, 1},
	}

	if len(vertices) == 0 {
		return m, xErr
	}

	m.lo, m.hi = bounds(vertices)

	data := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		data = append(data, v[0], v[1], v[2])
	}

	m.buffer = ctx.GenBuffer()
	ctx.BindBuffer(gpu.ARRAY_BUFFER, m.buffer)
	ctx.BufferData(gpu.ARRAY_BUFFER, data, gpu.STATIC_DRAW)
	ctx.BindBuffer(gpu.ARRAY_BUFFER, 0)

	return m, xErr
}

// Upload creates a model from a shape and applies its colour.
func Upload(ctx gpu.Context, shape Shape) (*LineModel, error) {
	m, err := NewLineModel(ctx, shape.Name, shape.Vertices, shape.Topology)
	if err != nil {
		return nil, err
	}
	if shape.Color != (mgl32.Vec4{}) {
		m.SetColor(shape.Color)
	}
	return m, nil
}

func (m *LineModel) Name() string { return m.name }

func (m *LineModel) VertexBuffer() gpu.Buffer { return m.buffer }

func (m *LineModel) VertexStride() int32 { return vertexStride }

func (m *LineModel) VertexOffset() uintptr { return 0 }

func (m *LineModel) VertexCount() int32 { return m.count }

func (m *LineModel) Topology() gpu.Primitive { return m.topology }

func (m *LineModel) Color() mgl32.Vec4 { return m.color }

func (m *LineModel) SetColor(color mgl32.Vec4) { m.color = color }

// Bounds returns the axis-aligned box around the vertices.
func (m *LineModel) Bounds() (mgl32.Vec3, mgl32.Vec3) { return m.lo, m.hi }

// Delete releases the vertex buffer. The model draws nothing afterwards.
func (m *LineModel) Delete() {
	if m.buffer != 0 {
		m.ctx.DeleteBuffer(m.buffer)
		m.buffer = 0
	}
	m.count = 0
}

func bounds(vertices []mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3) {
	lo, hi := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	return lo, hi
}
