package shader

import (
	"errors"
	"fmt"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	PositionAttrib    = "aPosition"
	ProjectionUniform = "uProjectionMatrix"
	ModelViewUniform  = "uModelViewMatrix"
	ColorUniform      = "uColor"
)

// positionComponents is the number of floats per vertex position.
const positionComponents = 3

// DefaultColor is used for models that do not carry their own colour.
var DefaultColor = mgl32.Vec4{1, 1, 1, 1}

// Model is line geometry stored in a vertex buffer.
type Model interface {
	VertexBuffer() gpu.Buffer
	VertexStride() int32
	VertexOffset() uintptr
	VertexCount() int32
	Topology() gpu.Primitive
}

// Colored is implemented by models that choose their line colour.
type Colored interface {
	Color() mgl32.Vec4
}

// Scene supplies the camera transforms, column-major.
type Scene interface {
	ProjectionMatrix() (mgl32.Mat4, error)
	ModelViewMatrix() (mgl32.Mat4, error)
}

// LineShader draws line geometry with a projection and model-view
// transform. Locations are resolved once when the shader is built; every
// RenderModel call sets all the state its draw depends on.
type LineShader struct {
	ctx     gpu.Context
	program *GlProgram
	vao     uint32

	aPosition         AttribHandle
	uProjectionMatrix UniformHandle
	uModelViewMatrix  UniformHandle
	uColor            UniformHandle
}

// NewLineShader compiles and links the sources and resolves the line
// inputs. Nothing is left allocated on the GPU when it fails.
func NewLineShader(ctx gpu.Context, vertexSrc string, fragmentSrc string) (*LineShader, error) {

	program, err := CompileAndLink(ctx, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	s := &LineShader{ctx: ctx, program: program, uColor: NoUniform}

	if err = s.resolve(); err != nil {
		program.Delete()
		return nil, err
	}

	s.vao = ctx.GenVertexArray()

	return s, nil
}

func (s *LineShader) resolve() error {

	var err error

	s.aPosition, err = s.program.AttribLocation(PositionAttrib)
	if err != nil {
		return err
	}

	s.uProjectionMatrix, err = s.program.UniformLocation(ProjectionUniform)
	if err != nil {
		return err
	}

	s.uModelViewMatrix, err = s.program.UniformLocation(ModelViewUniform)
	if err != nil {
		return err
	}

	// optional
	if color, colorErr := s.program.UniformLocation(ColorUniform); colorErr == nil {
		s.uColor = color
	}

	return nil
}

func (s *LineShader) APosition() AttribHandle { return s.aPosition }

func (s *LineShader) UProjectionMatrix() UniformHandle { return s.uProjectionMatrix }

func (s *LineShader) UModelViewMatrix() UniformHandle { return s.uModelViewMatrix }

// Program exposes the linked program so callers can look up the
// locations of extra inputs for an AttribBinder.
func (s *LineShader) Program() Program { return s.program }

// Released reports whether Release has been called.
func (s *LineShader) Released() bool { return s.program.Handle() == 0 }

// Release deletes the program and vertex array and invalidates the
// handles. It is safe to call more than once.
func (s *LineShader) Release() {
	if s.vao != 0 {
		s.ctx.DeleteVertexArray(s.vao)
		s.vao = 0
	}
	s.program.Delete()

	s.aPosition = NoAttrib
	s.uProjectionMatrix = NoUniform
	s.uModelViewMatrix = NoUniform
	s.uColor = NoUniform
}

// AttribBinder sets up extra per-vertex attributes for one draw. It runs
// with the shader's vertex array and the model's vertex buffer bound,
// after the position attribute is enabled. It returns the attribute
// indices it enabled; they are disabled again after the draw.
type AttribBinder func(ctx gpu.Context) []uint32

// RenderModel issues one draw of model with the transforms scene holds
// right now. Preconditions are checked before any GPU command; a model
// without vertices draws nothing.
func (s *LineShader) RenderModel(model Model, scene Scene) error {
	return s.RenderModelWith(model, scene, nil)
}

// RenderModelWith is RenderModel with bind called just before the draw.
func (s *LineShader) RenderModelWith(model Model, scene Scene, bind AttribBinder) error {

	if s.Released() {
		return ErrReleased
	}

	projection, modelView, err := sceneMatrices(scene)
	if err != nil {
		return err
	}

	if err = checkModel(model); err != nil {
		return err
	}

	count := model.VertexCount()
	if count == 0 {
		return nil
	}

	s.program.Use()

	s.ctx.UniformMatrix4fv(s.uProjectionMatrix.Location(), projection)
	s.ctx.UniformMatrix4fv(s.uModelViewMatrix.Location(), modelView)

	if s.uColor.Valid() {
		color := DefaultColor
		if colored, ok := model.(Colored); ok {
			color = colored.Color()
		}
		s.ctx.Uniform4f(s.uColor.Location(), color)
	}

	index := s.aPosition.Index()

	s.ctx.BindVertexArray(s.vao)
	s.ctx.BindBuffer(gpu.ARRAY_BUFFER, model.VertexBuffer())
	s.ctx.VertexAttribPointer(index, positionComponents, gpu.FLOAT, false, model.VertexStride(), model.VertexOffset())
	s.ctx.EnableVertexAttribArray(index)

	var extra []uint32
	if bind != nil {
		extra = bind(s.ctx)
	}

	s.ctx.DrawArrays(model.Topology(), 0, count)

	for _, extraIndex := range extra {
		s.ctx.DisableVertexAttribArray(extraIndex)
	}
	s.ctx.DisableVertexAttribArray(index)
	s.ctx.BindBuffer(gpu.ARRAY_BUFFER, 0)
	s.ctx.BindVertexArray(0)

	return nil
}

func sceneMatrices(scene Scene) (mgl32.Mat4, mgl32.Mat4, error) {

	if scene == nil {
		return mgl32.Mat4{}, mgl32.Mat4{}, &SceneStateError{Err: ErrNoScene}
	}

	projection, err := scene.ProjectionMatrix()
	if err != nil {
		return mgl32.Mat4{}, mgl32.Mat4{}, &SceneStateError{Err: fmt.Errorf("projection matrix: %w", err)}
	}

	modelView, err := scene.ModelViewMatrix()
	if err != nil {
		return mgl32.Mat4{}, mgl32.Mat4{}, &SceneStateError{Err: fmt.Errorf("model-view matrix: %w", err)}
	}

	return projection, modelView, nil
}

func checkModel(model Model) error {

	if model == nil {
		return &ModelStateError{Err: ErrNoModel}
	}

	if !model.Topology().IsLine() {
		return &ModelStateError{Err: fmt.Errorf("topology [%v] is not a line topology", model.Topology())}
	}

	count := model.VertexCount()
	if count < 0 {
		return &ModelStateError{Err: fmt.Errorf("negative vertex count [%d]", count)}
	}

	if count > 0 && model.VertexBuffer() == 0 {
		return &ModelStateError{Err: errors.New("no vertex buffer")}
	}

	if model.VertexStride() < 0 {
		return &ModelStateError{Err: fmt.Errorf("negative vertex stride [%d]", model.VertexStride())}
	}

	return nil
}
