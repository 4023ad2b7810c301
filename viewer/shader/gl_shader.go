package shader

import "github.com/chwjbn/line-viewer/viewer/gpu"

type GlShader struct {
	ctx    gpu.Context
	handle uint32
}

// NewGlShader compiles src for the given stage. A shader that fails to
// compile is deleted before the error is returned.
func NewGlShader(ctx gpu.Context, src string, stage uint32) (*GlShader, error) {

	handle := ctx.CreateShader(stage)
	ctx.ShaderSource(handle, src)
	ctx.CompileShader(handle)

	ok, log := getGlStatus(handle, gpu.COMPILE_STATUS, ctx.GetShaderiv, ctx.ShaderInfoLog)
	if !ok {
		ctx.DeleteShader(handle)
		return nil, &ShaderCompileError{Stage: stage, Log: log}
	}

	return &GlShader{ctx: ctx, handle: handle}, nil
}

func (shader *GlShader) Delete() {
	if shader.handle == 0 {
		return
	}
	shader.ctx.DeleteShader(shader.handle)
	shader.handle = 0
}
