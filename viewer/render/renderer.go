// Package render draws the loaded line models once per frame.
package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/chwjbn/line-viewer/glog"
	"github.com/chwjbn/line-viewer/viewer/capture"
	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/chwjbn/line-viewer/viewer/model"
	"github.com/chwjbn/line-viewer/viewer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene is the camera state the renderer draws against.
type Scene interface {
	shader.Scene
	SetViewport(width int, height int)
	Viewport() (int, int)
	Fit(lo mgl32.Vec3, hi mgl32.Vec3)
}

type Options struct {
	ClearColor [4]float32
	LineWidth  float32
	// Fit frames the loaded models with the camera.
	Fit         bool
	SnapshotDir string
}

// sceneErrKey keys scene failures in the last-error table.
const sceneErrKey = "\x00scene"

// Renderer owns the models and the line shader and must only be used on
// the thread that owns ctx.
type Renderer struct {
	mCtx        gpu.Context
	mLineShader *shader.LineShader
	mScene      Scene
	mOpts       Options

	mModels []*model.LineModel
	mLo     mgl32.Vec3
	mHi     mgl32.Vec3

	// mLastErr holds the last logged error per model (or the scene) so a
	// persisting failure is logged once, not every frame.
	mLastErr map[string]string
}

func NewRenderer(ctx gpu.Context, lineShader *shader.LineShader, scene Scene, opts Options) *Renderer {
	return &Renderer{
		mCtx:        ctx,
		mLineShader: lineShader,
		mScene:      scene,
		mOpts:       opts,
		mLastErr:    map[string]string{},
	}
}

// LoadShapes uploads the shapes and, with Fit set, moves the camera to
// frame all of them.
func (r *Renderer) LoadShapes(shapes []model.Shape) error {

	var xErr error

	for _, shape := range shapes {
		lineModel, modelErr := model.Upload(r.mCtx, shape)
		if modelErr != nil {
			xErr = fmt.Errorf("upload model [%s] error:[%v]", shape.Name, modelErr.Error())
			return xErr
		}

		mLo, mHi := lineModel.Bounds()
		if len(r.mModels) == 0 {
			r.mLo, r.mHi = mLo, mHi
		}
		for k := 0; k < 3; k++ {
			if mLo[k] < r.mLo[k] {
				r.mLo[k] = mLo[k]
			}
			if mHi[k] > r.mHi[k] {
				r.mHi[k] = mHi[k]
			}
		}

		r.mModels = append(r.mModels, lineModel)

		glog.DebugF("model [%s] vertices=[%d] topology=[%v]", shape.Name, lineModel.VertexCount(), lineModel.Topology())
	}

	if r.mOpts.Fit && len(r.mModels) > 0 {
		r.mScene.Fit(r.mLo, r.mHi)
	}

	return xErr
}

func (r *Renderer) Models() []*model.LineModel { return r.mModels }

// Bounds is the box around every loaded model.
func (r *Renderer) Bounds() (mgl32.Vec3, mgl32.Vec3) { return r.mLo, r.mHi }

func (r *Renderer) Resize(width int, height int) {
	r.mScene.SetViewport(width, height)
	r.mCtx.Viewport(0, 0, int32(width), int32(height))
}

// Frame clears the framebuffer and draws every model. A zero-sized
// viewport (minimised window) skips the frame without touching the GPU;
// a scene error skips the rest of the frame. It returns the number of
// draw calls issued.
func (r *Renderer) Frame() int {

	width, height := r.mScene.Viewport()
	if width <= 0 || height <= 0 {
		return 0
	}

	clearColor := r.mOpts.ClearColor
	r.mCtx.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	r.mCtx.Clear()
	r.mCtx.LineWidth(r.mOpts.LineWidth)

	drawn := 0

	for _, lineModel := range r.mModels {

		err := r.mLineShader.RenderModel(lineModel, r.mScene)
		if err == nil {
			delete(r.mLastErr, lineModel.Name())
			if lineModel.VertexCount() > 0 {
				drawn++
			}
			continue
		}

		var sceneErr *shader.SceneStateError
		if errors.As(err, &sceneErr) {
			r.warnOnce(sceneErrKey, "render frame skipped", err)
			return drawn
		}

		r.warnOnce(lineModel.Name(), fmt.Sprintf("render model [%s]", lineModel.Name()), err)
	}

	delete(r.mLastErr, sceneErrKey)

	return drawn
}

func (r *Renderer) warnOnce(key string, what string, err error) {
	if r.mLastErr[key] == err.Error() {
		return
	}
	r.mLastErr[key] = err.Error()
	glog.WarnF("%s error:[%v]", what, err.Error())
}

// Snapshot writes the current framebuffer to the snapshot dir.
func (r *Renderer) Snapshot(now time.Time) (string, error) {
	width, height := r.mScene.Viewport()
	return capture.Snapshot(r.mCtx, width, height, r.mOpts.SnapshotDir, now)
}

// Release deletes the models and the line shader.
func (r *Renderer) Release() {

	for _, lineModel := range r.mModels {
		lineModel.Delete()
	}
	r.mModels = nil

	if r.mLineShader != nil {
		r.mLineShader.Release()
		r.mLineShader = nil
	}
}
