package shader

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/chwjbn/line-viewer/glib"
	"github.com/chwjbn/line-viewer/viewer/gpu"
)

//go:embed glsl/lines.vert
var linesVertexSrc string

//go:embed glsl/lines.frag
var linesFragmentSrc string

// LinesShaderName is the directory name looked up by NewLineShaderFromDir.
const LinesShaderName = "lines"

// NewDefaultLineShader builds the line shader from the built-in sources.
func NewDefaultLineShader(ctx gpu.Context) (*LineShader, error) {
	return NewLineShader(ctx, linesVertexSrc, linesFragmentSrc)
}

// NewLineShaderFromDir builds the line shader from <dir>/lines/code.vert
// and <dir>/lines/code.frag.
func NewLineShaderFromDir(ctx gpu.Context, dir string) (*LineShader, error) {

	var xErr error

	vertexShaderCode := readShaderCode(dir, LinesShaderName, "vert")
	if len(vertexShaderCode) < 1 {
		xErr = fmt.Errorf("missing vertex code in shader=[%v] dir=[%v]", LinesShaderName, dir)
		return nil, xErr
	}

	fragmentShaderCode := readShaderCode(dir, LinesShaderName, "frag")
	if len(fragmentShaderCode) < 1 {
		xErr = fmt.Errorf("missing fragment code in shader=[%v] dir=[%v]", LinesShaderName, dir)
		return nil, xErr
	}

	return NewLineShader(ctx, vertexShaderCode, fragmentShaderCode)
}

func readShaderCode(dir string, shaderName string, shaderType string) string {

	codeFilePath := filepath.Join(dir, shaderName, fmt.Sprintf("code.%s", shaderType))
	if !glib.FileExists(codeFilePath) {
		return ""
	}

	return glib.FileReadAllText(codeFilePath)
}
