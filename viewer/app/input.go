package app

import (
	"github.com/chwjbn/line-viewer/viewer/control"
	"github.com/go-gl/glfw/v3.2/glfw"
)

var keyMap = map[glfw.Key]control.Key{
	glfw.KeyLeft:   control.KeyLeft,
	glfw.KeyRight:  control.KeyRight,
	glfw.KeyUp:     control.KeyUp,
	glfw.KeyDown:   control.KeyDown,
	glfw.KeyR:      control.KeyReset,
	glfw.KeyS:      control.KeySnapshot,
	glfw.KeyEscape: control.KeyQuit,
}

func (v *Viewer) initInput() {

	v.mController = control.NewController(v.mScene)

	v.mGLWindow.SetFramebufferSizeCallback(func(w *glfw.Window, width int, height int) {
		v.mRenderer.Resize(width, height)
	})

	v.mGLWindow.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			v.mController.Press(w.GetCursorPos())
		case glfw.Release:
			v.mController.Release()
		}
	})

	v.mGLWindow.SetCursorPosCallback(func(w *glfw.Window, xpos float64, ypos float64) {
		v.mController.Move(xpos, ypos)
	})

	v.mGLWindow.SetScrollCallback(func(w *glfw.Window, xoff float64, yoff float64) {
		v.mController.Scroll(yoff)
	})

	v.mGLWindow.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		switch v.mController.Key(keyMap[key]) {
		case control.RequestSnapshot:
			if action == glfw.Press {
				v.mSnapshotPending = true
			}
		case control.RequestQuit:
			w.SetShouldClose(true)
		}
	})
}
