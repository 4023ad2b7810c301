package shader

import "github.com/chwjbn/line-viewer/viewer/gpu"

// Program is the capability set a specialised shader builds on.
type Program interface {
	Handle() uint32
	AttribLocation(name string) (AttribHandle, error)
	UniformLocation(name string) (UniformHandle, error)
	Use()
	Delete()
}

type GlProgram struct {
	ctx    gpu.Context
	handle uint32
}

var _ Program = (*GlProgram)(nil)

// NewGlProgram links the shaders into a program. The shader objects are
// detached and deleted whether or not linking succeeds; on failure the
// program object is deleted too.
func NewGlProgram(ctx gpu.Context, shaders ...*GlShader) (*GlProgram, error) {

	prog := &GlProgram{ctx: ctx, handle: ctx.CreateProgram()}

	for _, shader := range shaders {
		ctx.AttachShader(prog.handle, shader.handle)
	}

	linkErr := prog.link()

	for _, shader := range shaders {
		ctx.DetachShader(prog.handle, shader.handle)
		shader.Delete()
	}

	if linkErr != nil {
		prog.Delete()
		return nil, linkErr
	}

	return prog, nil
}

// CompileAndLink builds a program from vertex and fragment source.
func CompileAndLink(ctx gpu.Context, vertexSrc string, fragmentSrc string) (*GlProgram, error) {

	vertexShader, err := NewGlShader(ctx, vertexSrc, gpu.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}

	fragmentShader, err := NewGlShader(ctx, fragmentSrc, gpu.FRAGMENT_SHADER)
	if err != nil {
		vertexShader.Delete()
		return nil, err
	}

	return NewGlProgram(ctx, vertexShader, fragmentShader)
}

func (prog *GlProgram) link() error {
	prog.ctx.LinkProgram(prog.handle)
	ok, log := getGlStatus(prog.handle, gpu.LINK_STATUS, prog.ctx.GetProgramiv, prog.ctx.ProgramInfoLog)
	if !ok {
		return &ShaderLinkError{Log: log}
	}
	return nil
}

func (prog *GlProgram) Handle() uint32 {
	return prog.handle
}

func (prog *GlProgram) Use() {
	prog.ctx.UseProgram(prog.handle)
}

// Delete releases the program object. Calling it again does nothing.
func (prog *GlProgram) Delete() {
	if prog.handle == 0 {
		return
	}
	prog.ctx.DeleteProgram(prog.handle)
	prog.handle = 0
}

func (prog *GlProgram) AttribLocation(name string) (AttribHandle, error) {
	loc := prog.ctx.GetAttribLocation(prog.handle, name)
	if loc < 0 {
		return NoAttrib, &HandleResolutionError{Kind: "attribute", Name: name}
	}
	return AttribHandle{program: prog.handle, location: loc}, nil
}

func (prog *GlProgram) UniformLocation(name string) (UniformHandle, error) {
	loc := prog.ctx.GetUniformLocation(prog.handle, name)
	if loc < 0 {
		return NoUniform, &HandleResolutionError{Kind: "uniform", Name: name}
	}
	return UniformHandle{program: prog.handle, location: loc}, nil
}
