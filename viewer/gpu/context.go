// Package gpu declares the slice of the OpenGL API the viewer issues.
//
// A Context is bound to the OS thread that made the GL context current.
// Every call must come from that thread; nothing here is safe for
// concurrent use.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// Enum values share their numbering with the OpenGL headers so an
// implementation can pass them through unchanged.
const (
	FALSE = 0
	TRUE  = 1

	FLOAT = 0x1406

	ARRAY_BUFFER = 0x8892
	STATIC_DRAW  = 0x88E4

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30

	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	RGBA          = 0x1908
	UNSIGNED_BYTE = 0x1401
)

// Primitive is a draw topology.
type Primitive uint32

const (
	Lines     Primitive = 0x0001
	LineLoop  Primitive = 0x0002
	LineStrip Primitive = 0x0003
)

// IsLine reports whether p is one of the line topologies.
func (p Primitive) IsLine() bool {
	switch p {
	case Lines, LineLoop, LineStrip:
		return true
	}
	return false
}

func (p Primitive) String() string {
	switch p {
	case Lines:
		return "lines"
	case LineLoop:
		return "line_loop"
	case LineStrip:
		return "line_strip"
	}
	return "unknown"
}

// Buffer names a GPU buffer object. Zero is "no buffer".
type Buffer uint32

// Context is the GL surface used by shaders, models and the viewer.
type Context interface {
	CreateShader(stage uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader uint32, pname uint32, params *int32)
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program uint32, shader uint32)
	DetachShader(program uint32, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program uint32, pname uint32, params *int32)
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
	UseProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, m mgl32.Mat4)
	Uniform4f(location int32, v mgl32.Vec4)

	GenBuffer() Buffer
	BindBuffer(target uint32, buffer Buffer)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer Buffer)

	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	DrawArrays(mode Primitive, first int32, count int32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear()
	LineWidth(width float32)
	ReadPixels(x, y, width, height int32, pix []uint8)
}
