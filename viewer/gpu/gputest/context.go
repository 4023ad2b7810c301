// Package gputest provides a recording gpu.Context for tests that run
// without a GL driver.
package gputest

import (
	"fmt"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Call is one recorded GL command.
type Call struct {
	Name string
	Args []interface{}
}

// Draw is a recorded DrawArrays call together with the state bound at the
// time it was issued.
type Draw struct {
	Mode    gpu.Primitive
	First   int32
	Count   int32
	Program uint32
	Vao     uint32
	Buffer  gpu.Buffer
	Attribs map[uint32]Attrib
	// Uniforms holds the values of the bound program at draw time.
	Uniforms map[int32]mgl32.Mat4
}

// Attrib describes an enabled vertex attribute.
type Attrib struct {
	Buffer     gpu.Buffer
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
}

type program struct {
	shaders  []uint32
	uniforms map[int32]mgl32.Mat4
}

// Context records every call and keeps enough object state to answer
// queries the way a driver would.
type Context struct {
	// FailCompile makes CompileShader fail for the given stage.
	FailCompile map[uint32]string
	// FailLink makes LinkProgram fail with the given log.
	FailLink string
	// Attribs and Uniforms are the active names of every linked program.
	// Names missing here resolve to -1.
	Attribs  map[string]int32
	Uniforms map[string]int32

	Calls []Call
	Draws []Draw

	nextID   uint32
	shaders  map[uint32]uint32
	compiled map[uint32]bool
	programs map[uint32]*program
	linked   map[uint32]bool
	buffers  map[gpu.Buffer][]float32
	vaos     map[uint32]bool

	curProgram uint32
	curVao     uint32
	curBuffer  gpu.Buffer
	pointers   map[uint32]Attrib
	enabled    map[uint32]bool
}

var _ gpu.Context = (*Context)(nil)

// New returns a context whose linked programs expose the usual line
// shader inputs.
func New() *Context {
	return &Context{
		FailCompile: map[uint32]string{},
		Attribs:     map[string]int32{"aPosition": 0},
		Uniforms:    map[string]int32{"uProjectionMatrix": 0, "uModelViewMatrix": 1, "uColor": 2},
		shaders:     map[uint32]uint32{},
		compiled:    map[uint32]bool{},
		programs:    map[uint32]*program{},
		linked:      map[uint32]bool{},
		buffers:     map[gpu.Buffer][]float32{},
		vaos:        map[uint32]bool{},
		pointers:    map[uint32]Attrib{},
		enabled:     map[uint32]bool{},
	}
}

func (c *Context) record(name string, args ...interface{}) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

// Live reports how many shader, program, buffer and vertex array objects
// have been created and not deleted.
func (c *Context) Live() int {
	return len(c.shaders) + len(c.programs) + len(c.buffers) + len(c.vaos)
}

// CallNames lists the recorded command names in order.
func (c *Context) CallNames() []string {
	names := make([]string, 0, len(c.Calls))
	for _, call := range c.Calls {
		names = append(names, call.Name)
	}
	return names
}

// Reset drops recorded calls and draws but keeps object state.
func (c *Context) Reset() {
	c.Calls = nil
	c.Draws = nil
}

// CurrentProgram, CurrentVertexArray and CurrentBuffer expose bind state.
func (c *Context) CurrentProgram() uint32 { return c.curProgram }

func (c *Context) CurrentVertexArray() uint32 { return c.curVao }

func (c *Context) CurrentBuffer() gpu.Buffer { return c.curBuffer }

// AttribEnabled reports whether the attribute index is enabled.
func (c *Context) AttribEnabled(index uint32) bool { return c.enabled[index] }

// BufferContents returns the data last uploaded to buffer.
func (c *Context) BufferContents(buffer gpu.Buffer) []float32 { return c.buffers[buffer] }

func (c *Context) CreateShader(stage uint32) uint32 {
	handle := c.id()
	c.shaders[handle] = stage
	c.record("CreateShader", stage)
	return handle
}

func (c *Context) ShaderSource(shader uint32, src string) {
	c.record("ShaderSource", shader, src)
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader", shader)
	_, failed := c.FailCompile[c.shaders[shader]]
	c.compiled[shader] = !failed
}

func (c *Context) GetShaderiv(shader uint32, pname uint32, params *int32) {
	switch pname {
	case gpu.COMPILE_STATUS:
		*params = gpu.FALSE
		if c.compiled[shader] {
			*params = gpu.TRUE
		}
	case gpu.INFO_LOG_LENGTH:
		*params = int32(len(c.ShaderInfoLog(shader)) + 1)
	}
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	if c.compiled[shader] {
		return ""
	}
	return c.FailCompile[c.shaders[shader]]
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader", shader)
	delete(c.shaders, shader)
	delete(c.compiled, shader)
}

func (c *Context) CreateProgram() uint32 {
	handle := c.id()
	c.programs[handle] = &program{uniforms: map[int32]mgl32.Mat4{}}
	c.record("CreateProgram")
	return handle
}

func (c *Context) AttachShader(prog uint32, shader uint32) {
	c.record("AttachShader", prog, shader)
	if p, ok := c.programs[prog]; ok {
		p.shaders = append(p.shaders, shader)
	}
}

func (c *Context) DetachShader(prog uint32, shader uint32) {
	c.record("DetachShader", prog, shader)
}

func (c *Context) LinkProgram(prog uint32) {
	c.record("LinkProgram", prog)
	c.linked[prog] = c.FailLink == ""
}

func (c *Context) GetProgramiv(prog uint32, pname uint32, params *int32) {
	switch pname {
	case gpu.LINK_STATUS:
		*params = gpu.FALSE
		if c.linked[prog] {
			*params = gpu.TRUE
		}
	case gpu.INFO_LOG_LENGTH:
		*params = int32(len(c.ProgramInfoLog(prog)) + 1)
	}
}

func (c *Context) ProgramInfoLog(prog uint32) string {
	if c.linked[prog] {
		return ""
	}
	return c.FailLink
}

func (c *Context) DeleteProgram(prog uint32) {
	c.record("DeleteProgram", prog)
	delete(c.programs, prog)
	delete(c.linked, prog)
	if c.curProgram == prog {
		c.curProgram = 0
	}
}

func (c *Context) UseProgram(prog uint32) {
	c.record("UseProgram", prog)
	c.curProgram = prog
}

func (c *Context) GetAttribLocation(prog uint32, name string) int32 {
	c.record("GetAttribLocation", prog, name)
	if !c.linked[prog] {
		return -1
	}
	if loc, ok := c.Attribs[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) GetUniformLocation(prog uint32, name string) int32 {
	c.record("GetUniformLocation", prog, name)
	if !c.linked[prog] {
		return -1
	}
	if loc, ok := c.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	c.record("UniformMatrix4fv", location, m)
	if p, ok := c.programs[c.curProgram]; ok {
		p.uniforms[location] = m
	}
}

func (c *Context) Uniform4f(location int32, v mgl32.Vec4) {
	c.record("Uniform4f", location, v)
}

// UniformMatrix returns the matrix last uploaded to location of prog.
func (c *Context) UniformMatrix(prog uint32, location int32) (mgl32.Mat4, bool) {
	p, ok := c.programs[prog]
	if !ok {
		return mgl32.Mat4{}, false
	}
	m, ok := p.uniforms[location]
	return m, ok
}

func (c *Context) GenBuffer() gpu.Buffer {
	handle := gpu.Buffer(c.id())
	c.buffers[handle] = nil
	c.record("GenBuffer")
	return handle
}

func (c *Context) BindBuffer(target uint32, buffer gpu.Buffer) {
	c.record("BindBuffer", target, buffer)
	c.curBuffer = buffer
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	c.record("BufferData", target, len(data), usage)
	if _, ok := c.buffers[c.curBuffer]; ok {
		c.buffers[c.curBuffer] = append([]float32(nil), data...)
	}
}

func (c *Context) DeleteBuffer(buffer gpu.Buffer) {
	c.record("DeleteBuffer", buffer)
	delete(c.buffers, buffer)
}

func (c *Context) GenVertexArray() uint32 {
	handle := c.id()
	c.vaos[handle] = true
	c.record("GenVertexArray")
	return handle
}

func (c *Context) BindVertexArray(vao uint32) {
	c.record("BindVertexArray", vao)
	c.curVao = vao
}

func (c *Context) DeleteVertexArray(vao uint32) {
	c.record("DeleteVertexArray", vao)
	delete(c.vaos, vao)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray", index)
	c.enabled[index] = true
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.record("DisableVertexAttribArray", index)
	delete(c.enabled, index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	c.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
	c.pointers[index] = Attrib{
		Buffer:     c.curBuffer,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (c *Context) DrawArrays(mode gpu.Primitive, first int32, count int32) {
	c.record("DrawArrays", mode, first, count)

	draw := Draw{
		Mode:     mode,
		First:    first,
		Count:    count,
		Program:  c.curProgram,
		Vao:      c.curVao,
		Buffer:   c.curBuffer,
		Attribs:  map[uint32]Attrib{},
		Uniforms: map[int32]mgl32.Mat4{},
	}
	for index := range c.enabled {
		draw.Attribs[index] = c.pointers[index]
	}
	if p, ok := c.programs[c.curProgram]; ok {
		for loc, m := range p.uniforms {
			draw.Uniforms[loc] = m
		}
	}
	c.Draws = append(c.Draws, draw)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport", x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor", r, g, b, a)
}

func (c *Context) Clear() {
	c.record("Clear")
}

func (c *Context) LineWidth(width float32) {
	c.record("LineWidth", width)
}

func (c *Context) ReadPixels(x, y, width, height int32, pix []uint8) {
	c.record("ReadPixels", x, y, width, height)
	for i := range pix {
		pix[i] = uint8(i % 251)
	}
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}
