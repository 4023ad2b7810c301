package gconfig

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chwjbn/line-viewer/glib"
)

const ConfigFile = "viewer.toml"

type WindowMeta struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

type CameraMeta struct {
	FovY     float32
	Near     float32
	Far      float32
	Distance float32
	// Fit pulls the camera back to frame the loaded models.
	Fit bool
}

type RenderMeta struct {
	// ShaderDir overrides the built-in line shader with <dir>/lines/code.{vert,frag}.
	ShaderDir  string
	ClearColor [4]float32
	LineWidth  float32
	// Model is one of cube, axes, grid, circle or scene.
	Model     string
	ModelSize float32
}

type LogMeta struct {
	Dir     string
	Release bool
	Debug   bool
}

type ViewerMeta struct {
	Window      WindowMeta
	Camera      CameraMeta
	Render      RenderMeta
	Log         LogMeta
	SnapshotDir string
}

func Default() ViewerMeta {

	var meta ViewerMeta

	meta.Window.Width = 1024
	meta.Window.Height = 768
	meta.Window.Title = "Line Viewer"
	meta.Window.VSync = true

	meta.Camera.FovY = 45
	meta.Camera.Near = 0.1
	meta.Camera.Far = 100
	meta.Camera.Distance = 5
	meta.Camera.Fit = true

	meta.Render.ClearColor = [4]float32{0.08, 0.08, 0.1, 1}
	meta.Render.LineWidth = 1
	meta.Render.Model = "scene"
	meta.Render.ModelSize = 2

	meta.SnapshotDir = "snapshot"

	return meta
}

// DefaultPath is viewer.toml next to the executable.
func DefaultPath() string {
	return filepath.Join(glib.AppBaseDir(), ConfigFile)
}

// Load reads the config at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (ViewerMeta, error) {

	meta := Default()

	if !glib.FileExists(path) {
		return meta, nil
	}

	if _, err := toml.DecodeFile(path, &meta); err != nil {
		return meta, fmt.Errorf("decode config [%s] error:[%v]", path, err.Error())
	}

	if err := meta.Validate(); err != nil {
		return meta, fmt.Errorf("config [%s] invalid:[%v]", path, err.Error())
	}

	return meta, nil
}

func Save(path string, meta ViewerMeta) error {

	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(meta); err != nil {
		return fmt.Errorf("encode config error:[%v]", err.Error())
	}

	if err := glib.DirEnsure(filepath.Dir(path)); err != nil {
		return err
	}

	return os.WriteFile(path, buffer.Bytes(), 0644)
}

func (meta ViewerMeta) Validate() error {

	if meta.Window.Width <= 0 || meta.Window.Height <= 0 {
		return fmt.Errorf("window size [%dx%d] must be positive", meta.Window.Width, meta.Window.Height)
	}

	if meta.Camera.FovY <= 0 || meta.Camera.FovY >= 180 {
		return fmt.Errorf("camera fov [%v] out of range", meta.Camera.FovY)
	}

	if meta.Camera.Near <= 0 || meta.Camera.Far <= meta.Camera.Near {
		return fmt.Errorf("camera clip planes near=[%v] far=[%v]", meta.Camera.Near, meta.Camera.Far)
	}

	if meta.Render.LineWidth <= 0 {
		return fmt.Errorf("line width [%v] must be positive", meta.Render.LineWidth)
	}

	switch strings.ToLower(meta.Render.Model) {
	case "cube", "axes", "grid", "circle", "scene":
	default:
		return fmt.Errorf("unknown model [%s]", meta.Render.Model)
	}

	return nil
}

// LogDir is Log.Dir resolved against the executable dir. Empty stays
// empty so the logger picks its own default.
func (meta ViewerMeta) LogDir() string {
	return appPath(meta.Log.Dir)
}

func (meta ViewerMeta) ShaderDir() string {
	return appPath(meta.Render.ShaderDir)
}

func (meta ViewerMeta) SnapshotPath() string {
	return appPath(meta.SnapshotDir)
}

func appPath(p string) string {
	if len(p) < 1 {
		return ""
	}
	return glib.AppPath(p)
}
