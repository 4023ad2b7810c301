// Package capture reads the framebuffer back and writes it as a PNG.
package capture

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/chwjbn/line-viewer/glib"
	"github.com/chwjbn/line-viewer/viewer/gpu"
)

// ReadFrame copies the width×height framebuffer into an image with the
// first row at the top. GL returns rows bottom-up.
func ReadFrame(ctx gpu.Context, width int, height int) (*image.RGBA, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size [%dx%d]", width, height)
	}

	pix := make([]uint8, width*height*4)
	ctx.ReadPixels(0, 0, int32(width), int32(height), pix)

	frame := &image.RGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	return transform.FlipV(frame), nil
}

// Snapshot writes the current frame to dir and returns the file path.
func Snapshot(ctx gpu.Context, width int, height int, dir string, now time.Time) (string, error) {

	frame, err := ReadFrame(ctx, width, height)
	if err != nil {
		return "", err
	}

	if err = glib.DirEnsure(dir); err != nil {
		return "", fmt.Errorf("create snapshot dir [%s] error:[%v]", dir, err.Error())
	}

	file := filepath.Join(dir, fmt.Sprintf("snapshot_%s.png", now.Format("20060102_150405.000")))

	if err = imgio.Save(file, frame, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("save snapshot [%s] error:[%v]", file, err.Error())
	}

	return file, nil
}
