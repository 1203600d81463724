package export

import (
	"context"
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-skewrect/internal/assets"
	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/scene"
	"go-skewrect/internal/utils"
	"go-skewrect/pkg/palette"
)

func tinyScene(t *testing.T, p config.Profile, seed int64) *scene.Scene {
	t.Helper()
	p.Width, p.Height = 160, 120
	p.RectCount = 6
	p.MinWidth = 40
	p.AllowInvertedWidth = true

	swatches, err := palette.Riso()
	require.NoError(t, err)
	sc, err := scene.New(p, utils.NewPRNGService(seed), swatches)
	require.NoError(t, err)
	return sc
}

func TestFrameNames(t *testing.T) {
	assert.Equal(t, "4521-0007.png", FrameName(4521, 7))
	assert.Equal(t, "4521-0007.thumb.png", ThumbName(4521, 7))
}

func TestFramesAnimated(t *testing.T) {
	dir := t.TempDir()
	sc := tinyScene(t, config.Animated(), 12)

	var written []string
	sc.Events = event.NewDispatcher()
	sc.Events.Subscribe(event.ListenerFunc(func(e event.Event) {
		written = append(written, e.Data.(string))
	}), event.FrameWritten)

	paths, err := Frames(context.Background(), sc, Options{
		Dir:    dir,
		Frames: 3,
		Thumb:  40,
	})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, 3, sc.Frame())

	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, FrameName(12, i)), p)

		img, err := imaging.Open(p)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 160, 120), img.Bounds())

		thumb, err := imaging.Open(filepath.Join(dir, ThumbName(12, i)))
		require.NoError(t, err)
		assert.Equal(t, 40, thumb.Bounds().Dx())
		assert.Equal(t, 30, thumb.Bounds().Dy())
	}
	assert.Equal(t, paths, written)
}

func TestFramesStaticWritesOne(t *testing.T) {
	dir := t.TempDir()
	sc := tinyScene(t, config.Static(), 5)

	paths, err := Frames(context.Background(), sc, Options{Dir: dir, Frames: 10})
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFramesStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	paths, err := Frames(ctx, tinyScene(t, config.Animated(), 1), Options{Dir: t.TempDir(), Frames: 5})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, paths)
}

func TestWritePNGWithLabelLeavesSourceAlone(t *testing.T) {
	fonts := assets.NewFontManager()
	defer fonts.Close()
	face, err := fonts.Face(config.LabelFontSize)
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	path := filepath.Join(t.TempDir(), "labelled.png")
	require.NoError(t, WritePNG(path, src, 777, face))

	for _, v := range src.Pix {
		require.Zero(t, v)
	}

	out, err := imaging.Open(path)
	require.NoError(t, err)
	// Inside the white label box, away from the glyphs.
	_, _, _, a := out.At(config.LabelX+config.LabelWidth-3, config.LabelY+3).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	// Outside the box the image stays transparent.
	_, _, _, a = out.At(190, 90).RGBA()
	assert.Zero(t, a)
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)), 1, nil)
	assert.Error(t, err)
}
