// Package glcore implements gpu.Context on top of the OpenGL 3.3 core
// profile bindings.
package glcore

import (
	"fmt"
	"strings"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type Context struct{}

// New loads the GL function pointers for the context current on the
// calling thread.
func New() (*Context, error) {

	var xErr error

	glErr := gl.Init()
	if glErr != nil {
		xErr = fmt.Errorf("gl.Init error:[%v]", glErr.Error())
		return nil, xErr
	}

	return &Context{}, xErr
}

var _ gpu.Context = (*Context)(nil)

func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) CreateShader(stage uint32) uint32 {
	return gl.CreateShader(stage)
}

func (c *Context) ShaderSource(shader uint32, src string) {
	glSrc, freeFn := gl.Strs(src + "\x00")
	defer freeFn()
	gl.ShaderSource(shader, 1, glSrc, nil)
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) GetShaderiv(shader uint32, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	return readInfoLog(logLength, func(buf *uint8) {
		gl.GetShaderInfoLog(shader, logLength, nil, buf)
	})
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) DetachShader(program uint32, shader uint32) {
	gl.DetachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) GetProgramiv(program uint32, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return readInfoLog(logLength, func(buf *uint8) {
		gl.GetProgramInfoLog(program, logLength, nil, buf)
	})
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (c *Context) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (c *Context) GenBuffer() gpu.Buffer {
	var handle uint32
	gl.GenBuffers(1, &handle)
	return gpu.Buffer(handle)
}

func (c *Context) BindBuffer(target uint32, buffer gpu.Buffer) {
	gl.BindBuffer(target, uint32(buffer))
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (c *Context) DeleteBuffer(buffer gpu.Buffer) {
	handle := uint32(buffer)
	gl.DeleteBuffers(1, &handle)
}

func (c *Context) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (c *Context) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (c *Context) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (c *Context) DrawArrays(mode gpu.Primitive, first int32, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (c *Context) LineWidth(width float32) {
	gl.LineWidth(width)
}

func (c *Context) ReadPixels(x, y, width, height int32, pix []uint8) {
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
}

func readInfoLog(logLength int32, fetch func(buf *uint8)) string {

	logStr := strings.Repeat("\x00", int(logLength))

	if len(logStr) < 1 {
		logStr = "\x00"
	}

	log := gl.Str(logStr)
	fetch(log)

	return strings.TrimSpace(gl.GoStr(log))
}
