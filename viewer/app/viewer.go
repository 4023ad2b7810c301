// Package app owns the window, the GL context and the render loop.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/chwjbn/line-viewer/glog"
	"github.com/chwjbn/line-viewer/viewer/control"
	"github.com/chwjbn/line-viewer/viewer/gconfig"
	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/chwjbn/line-viewer/viewer/gpu/glcore"
	"github.com/chwjbn/line-viewer/viewer/model"
	"github.com/chwjbn/line-viewer/viewer/render"
	"github.com/chwjbn/line-viewer/viewer/scene"
	"github.com/chwjbn/line-viewer/viewer/shader"
	"github.com/go-gl/glfw/v3.2/glfw"
)

// Viewer must be created, run and released on the main OS thread.
type Viewer struct {
	mMeta gconfig.ViewerMeta

	mGLWindow   *glfw.Window
	mCtx        gpu.Context
	mScene      *scene.Engine
	mRenderer   *render.Renderer
	mController *control.Controller

	mSnapshotPending bool
}

func NewViewer(meta gconfig.ViewerMeta) (*Viewer, error) {

	pThis := new(Viewer)
	pThis.mMeta = meta

	xErr := pThis.init()

	if xErr != nil {
		pThis.Release()
		return nil, xErr
	}

	return pThis, nil
}

func (v *Viewer) init() error {

	var xErr error

	xErr = v.initGLFW()
	if xErr != nil {
		return xErr
	}

	xErr = v.initOpenGL()
	if xErr != nil {
		return xErr
	}

	xErr = v.initScene()
	if xErr != nil {
		return xErr
	}

	xErr = v.initRenderer()
	if xErr != nil {
		return xErr
	}

	xErr = v.initModels()
	if xErr != nil {
		return xErr
	}

	v.initInput()

	return xErr
}

func (v *Viewer) initGLFW() error {

	var xErr error

	glErr := glfw.Init()
	if glErr != nil {
		xErr = fmt.Errorf("glfw.Init error:[%v]", glErr.Error())
		return xErr
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 4)

	v.mGLWindow, glErr = glfw.CreateWindow(v.mMeta.Window.Width, v.mMeta.Window.Height, v.mMeta.Window.Title, nil, nil)
	if glErr != nil {
		xErr = fmt.Errorf("glfw.CreateWindow error:[%v]", glErr.Error())
		return xErr
	}

	if v.mGLWindow == nil {
		xErr = fmt.Errorf("glfw.CreateWindow failed")
		return xErr
	}

	v.mGLWindow.MakeContextCurrent()

	if v.mMeta.Window.VSync {
		glfw.SwapInterval(1)
	}

	return xErr
}

func (v *Viewer) initOpenGL() error {

	glCtx, xErr := glcore.New()
	if xErr != nil {
		return xErr
	}

	glog.InfoF("OpenGL version=[%s]", glCtx.Version())

	v.mCtx = glCtx

	return xErr
}

func (v *Viewer) initScene() error {

	var xErr error

	v.mScene, xErr = scene.NewEngine(scene.Options{
		FovY:     v.mMeta.Camera.FovY,
		Near:     v.mMeta.Camera.Near,
		Far:      v.mMeta.Camera.Far,
		Distance: v.mMeta.Camera.Distance,
	})
	if xErr != nil {
		xErr = fmt.Errorf("scene.NewEngine error:[%v]", xErr.Error())
		return xErr
	}

	return xErr
}

func (v *Viewer) initRenderer() error {

	var xErr error
	var lineShader *shader.LineShader

	if shaderDir := v.mMeta.ShaderDir(); len(shaderDir) > 0 {
		glog.InfoF("loading line shader from dir=[%s]", shaderDir)
		lineShader, xErr = shader.NewLineShaderFromDir(v.mCtx, shaderDir)
	} else {
		lineShader, xErr = shader.NewDefaultLineShader(v.mCtx)
	}

	if xErr != nil {
		xErr = fmt.Errorf("create line shader error:[%v]", xErr.Error())
		return xErr
	}

	glog.InfoF("line shader ready aPosition=[%d] uProjectionMatrix=[%d] uModelViewMatrix=[%d]",
		lineShader.APosition().Location(),
		lineShader.UProjectionMatrix().Location(),
		lineShader.UModelViewMatrix().Location())

	v.mRenderer = render.NewRenderer(v.mCtx, lineShader, v.mScene, render.Options{
		ClearColor:  v.mMeta.Render.ClearColor,
		LineWidth:   v.mMeta.Render.LineWidth,
		Fit:         v.mMeta.Camera.Fit,
		SnapshotDir: v.mMeta.SnapshotPath(),
	})

	v.mRenderer.Resize(v.mGLWindow.GetFramebufferSize())

	return xErr
}

func (v *Viewer) initModels() error {

	shapes, xErr := model.Shapes(strings.ToLower(v.mMeta.Render.Model), v.mMeta.Render.ModelSize)
	if xErr != nil {
		return xErr
	}

	xErr = v.mRenderer.LoadShapes(shapes)
	if xErr != nil {
		return xErr
	}

	glog.InfoF("loaded [%d] models kind=[%s]", len(v.mRenderer.Models()), v.mMeta.Render.Model)

	return xErr
}

// Run draws frames until the window is closed.
func (v *Viewer) Run() {

	glog.Info("Viewer.Run begin")

	frames := 0
	statTime := time.Now()

	for !v.mGLWindow.ShouldClose() {

		if width, height := v.mScene.Viewport(); width <= 0 || height <= 0 {
			// minimised
			glfw.WaitEventsTimeout(0.1)
			continue
		}

		v.mRenderer.Frame()

		if v.mSnapshotPending {
			v.mSnapshotPending = false
			v.snapshot()
		}

		v.mGLWindow.SwapBuffers()
		glfw.PollEvents()

		frames++
		if elapsed := time.Since(statTime); elapsed >= 10*time.Second {
			glog.DebugF("fps=[%.1f]", float64(frames)/elapsed.Seconds())
			frames = 0
			statTime = time.Now()
		}
	}

	glog.Info("Viewer.Run end")
}

func (v *Viewer) snapshot() {

	file, err := v.mRenderer.Snapshot(time.Now())
	if err != nil {
		glog.ErrorF("snapshot error:[%v]", err.Error())
		return
	}

	glog.InfoF("snapshot saved file=[%s]", file)
}

// Release frees GPU objects, destroys the window and terminates glfw.
func (v *Viewer) Release() {

	if v.mRenderer != nil {
		v.mRenderer.Release()
		v.mRenderer = nil
	}

	if v.mGLWindow != nil {
		v.mGLWindow.Destroy()
		v.mGLWindow = nil
	}

	glfw.Terminate()
}
