package capture

import (
	"image/color"
	"testing"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chwjbn/line-viewer/viewer/gpu/gputest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFrameFlipsRows(t *testing.T) {
	ctx := gputest.New()

	frame, err := ReadFrame(ctx, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, frame.Bounds().Dx())
	assert.Equal(t, 3, frame.Bounds().Dy())

	// the recording context fills pixel bytes with their index; the last
	// GL row (bytes 32..47) becomes the top row
	assert.Equal(t, color.RGBA{32, 33, 34, 35}, frame.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 1, 2, 3}, frame.RGBAAt(0, 2))
	assert.Contains(t, ctx.CallNames(), "ReadPixels")

	_, err = ReadFrame(ctx, 0, 3)
	assert.Error(t, err)
}

func TestSnapshotWritesPNG(t *testing.T) {
	ctx := gputest.New()
	dir := t.TempDir()

	file, err := Snapshot(ctx, 8, 8, dir, time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, file, "snapshot_20261018_123000.000.png")

	img, err := imgio.Open(file)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
}
