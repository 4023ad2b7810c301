package shader

import (
	"errors"
	"fmt"

	"github.com/chwjbn/line-viewer/viewer/gpu"
)

// ErrReleased is returned when a released shader is used.
var ErrReleased = errors.New("shader already released")

var (
	ErrNoScene = errors.New("no scene")
	ErrNoModel = errors.New("no model")
)

// ShaderCompileError reports a shader stage that failed to compile.
type ShaderCompileError struct {
	Stage uint32
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("SHADER::COMPILE_FAILURE::%s: %s", stageName(e.Stage), e.Log)
}

// ShaderLinkError reports a program that failed to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("GlProgram::LINKING_FAILURE: %s", e.Log)
}

// HandleResolutionError reports a required attribute or uniform that the
// linked program does not expose. The shader source and the binding
// disagree, so this is never retried.
type HandleResolutionError struct {
	Kind string
	Name string
}

func (e *HandleResolutionError) Error() string {
	return fmt.Sprintf("%s [%s] not found in linked program", e.Kind, e.Name)
}

// SceneStateError reports a scene that cannot supply its transforms.
type SceneStateError struct {
	Err error
}

func (e *SceneStateError) Error() string {
	return fmt.Sprintf("scene state error:[%v]", e.Err)
}

func (e *SceneStateError) Unwrap() error {
	return e.Err
}

// ModelStateError reports a model that cannot be drawn as lines.
type ModelStateError struct {
	Err error
}

func (e *ModelStateError) Error() string {
	return fmt.Sprintf("model state error:[%v]", e.Err)
}

func (e *ModelStateError) Unwrap() error {
	return e.Err
}

func stageName(stage uint32) string {
	switch stage {
	case gpu.VERTEX_SHADER:
		return "VERTEX"
	case gpu.FRAGMENT_SHADER:
		return "FRAGMENT"
	}
	return fmt.Sprintf("STAGE_%#x", stage)
}
