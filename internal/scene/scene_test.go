package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/utils"
	"go-skewrect/pkg/palette"
	"go-skewrect/pkg/raster"
)

func swatches(t *testing.T) []palette.Swatch {
	t.Helper()
	s, err := palette.Riso()
	require.NoError(t, err)
	return s
}

func newScene(t *testing.T, p config.Profile, seed int64) *Scene {
	t.Helper()
	sc, err := New(p, utils.NewPRNGService(seed), swatches(t))
	require.NoError(t, err)
	return sc
}

func assertRectInRange(t *testing.T, p config.Profile, r Rect) {
	t.Helper()
	lo, hi := math.Min(p.MinWidth, p.MaxWidth()), math.Max(p.MinWidth, p.MaxWidth())
	assert.GreaterOrEqual(t, r.W, lo)
	assert.LessOrEqual(t, r.W, hi)
	assert.GreaterOrEqual(t, r.H, p.MinHeight)
	assert.LessOrEqual(t, r.H, p.MaxHeight)
	assert.Contains(t, []raster.BlendMode{raster.Normal, raster.Overlay}, r.Blend)
}

func TestAnimatedSceneEndToEnd(t *testing.T) {
	p := config.Animated()
	sc := newScene(t, p, 1234)

	assert.Equal(t, 540.0, sc.Mask.X)
	assert.Equal(t, 540.0, sc.Mask.Y)
	assert.InDelta(t, 432.0, sc.Mask.Radius, 1e-9)
	assert.Equal(t, 3, sc.Mask.Sides)
	assert.Equal(t, 20.0, sc.Mask.LineWidth)
	assert.Contains(t, sc.Palette.Colors[:], sc.Mask.Color)
	assert.Contains(t, sc.Palette.Colors[:], sc.Palette.Background)

	require.Len(t, sc.Rects, 100)
	for _, r := range sc.Rects {
		assertRectInRange(t, p, r)
		// The preset keeps the inverted range, so widths land in [270, 600].
		assert.GreaterOrEqual(t, r.W, 270.0)
		assert.LessOrEqual(t, r.W, 600.0)

		assert.InDelta(t, 756.0, r.X, 1e-9)
		assert.GreaterOrEqual(t, r.Y, -100.0)
		assert.Less(t, r.Y, 1080.0)
		assert.GreaterOrEqual(t, r.Speed, 2.0)
		assert.Less(t, r.Speed, 5.0)
		assert.Contains(t, sc.Palette.Colors[:], r.Fill)
		assert.Contains(t, sc.Palette.Colors[:], r.Stroke)
	}
}

func TestStrictAnimatedProfileRejectsInvertedWidth(t *testing.T) {
	p := config.Animated()
	p.AllowInvertedWidth = false

	_, err := New(p, utils.NewPRNGService(1), swatches(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidProfile))
}

func TestInvalidMaskFailsFast(t *testing.T) {
	p := config.Static()
	p.MaskSides = 2
	_, err := New(p, utils.NewPRNGService(1), swatches(t))
	assert.True(t, errors.Is(err, config.ErrInvalidProfile))

	p = config.Static()
	p.MaskRadiusRatio = -1
	_, err = New(p, utils.NewPRNGService(1), swatches(t))
	assert.True(t, errors.Is(err, config.ErrInvalidProfile))
}

func TestEmptySwatchesFail(t *testing.T) {
	_, err := New(config.Static(), utils.NewPRNGService(1), nil)
	assert.True(t, errors.Is(err, palette.ErrEmptySwatches))
}

func TestStaticScene(t *testing.T) {
	p := config.Static()
	sc := newScene(t, p, 99)

	require.Len(t, sc.Rects, 50)
	for _, r := range sc.Rects {
		assertRectInRange(t, p, r)
		assert.GreaterOrEqual(t, r.W, 600.0)
		assert.LessOrEqual(t, r.W, 864.0)
		assert.GreaterOrEqual(t, r.X, -600.0)
		assert.Less(t, r.X, 1080.0)
		assert.GreaterOrEqual(t, r.Y, 100.0)
		assert.Less(t, r.Y, 1280.0)
		assert.Zero(t, r.Speed)
	}

	before := append([]Rect(nil), sc.Rects...)
	assert.Zero(t, sc.Advance())
	assert.Equal(t, before, sc.Rects)
	assert.Zero(t, sc.Frame())
}

func TestSameSeedSameScene(t *testing.T) {
	for _, p := range []config.Profile{config.Animated(), config.Static()} {
		a := newScene(t, p, 2024)
		b := newScene(t, p, 2024)
		assert.Equal(t, a.Mask, b.Mask)
		assert.Equal(t, a.Palette, b.Palette)
		assert.Equal(t, a.Rects, b.Rects)
	}
}

func TestSameSeedSameAnimation(t *testing.T) {
	a := newScene(t, config.Animated(), 5)
	b := newScene(t, config.Animated(), 5)
	for i := 0; i < 600; i++ {
		require.Equal(t, a.Advance(), b.Advance())
	}
	assert.Equal(t, a.Rects, b.Rects)
}

func TestResetReplaysScene(t *testing.T) {
	sc := newScene(t, config.Animated(), 77)
	first := append([]Rect(nil), sc.Rects...)
	mask := sc.Mask

	for i := 0; i < 50; i++ {
		sc.Advance()
	}
	require.NoError(t, sc.Reset(77))

	assert.Equal(t, first, sc.Rects)
	assert.Equal(t, mask, sc.Mask)
	assert.Equal(t, int64(77), sc.Seed())
	assert.Zero(t, sc.Frame())
}

func TestAdvanceMovesDiagonally(t *testing.T) {
	sc := newScene(t, config.Animated(), 8)
	before := sc.Rects[0]

	sc.Advance()
	after := sc.Rects[0]

	step := math.Cos(-math.Pi/4) * before.Speed
	assert.InDelta(t, before.X-step, after.X, 1e-9)
	assert.InDelta(t, before.Y+step, after.Y, 1e-9)
	assert.Equal(t, 1, sc.Frame())
}

func TestAdvanceRecyclesInPlace(t *testing.T) {
	p := config.Animated()
	sc := newScene(t, p, 31)

	sc.Rects[3].X = -sc.Rects[3].W + 0.1
	neighbour := sc.Rects[4]

	recycled := sc.Advance()
	assert.Equal(t, 1, recycled)
	require.Len(t, sc.Rects, p.RectCount)

	fresh := sc.Rects[3]
	assertRectInRange(t, p, fresh)
	assert.InDelta(t, 756.0, fresh.X, 1e-9)
	assert.GreaterOrEqual(t, fresh.Speed, p.MinSpeed)

	// Others only moved.
	assert.Equal(t, neighbour.W, sc.Rects[4].W)
	assert.Less(t, sc.Rects[4].X, neighbour.X)
}

func TestLongRunKeepsPoolSize(t *testing.T) {
	p := config.Animated()
	sc := newScene(t, p, 3)

	total := 0
	for i := 0; i < 2000; i++ {
		total += sc.Advance()
		require.Len(t, sc.Rects, p.RectCount)
	}
	assert.Positive(t, total)
	for _, r := range sc.Rects {
		assert.Greater(t, r.X, -r.W)
		assertRectInRange(t, p, r)
	}
}

func TestOverlayShare(t *testing.T) {
	p := config.Static()
	p.RectCount = 20000
	sc := newScene(t, p, 17)

	overlay := 0
	for _, r := range sc.Rects {
		if r.Blend == raster.Overlay {
			overlay++
		}
	}
	assert.InDelta(t, 0.6, float64(overlay)/float64(len(sc.Rects)), 0.02)
}

func TestSceneEvents(t *testing.T) {
	sc := newScene(t, config.Animated(), 8)
	d := event.NewDispatcher()
	var built []event.SceneInfo
	var recycled []event.Recycle
	d.Subscribe(event.ListenerFunc(func(e event.Event) {
		switch data := e.Data.(type) {
		case event.SceneInfo:
			built = append(built, data)
		case event.Recycle:
			recycled = append(recycled, data)
		}
	}), event.SceneBuilt, event.RectRecycled)
	sc.Events = d

	require.NoError(t, sc.Reset(8))
	require.Len(t, built, 1)
	assert.Equal(t, int64(8), built[0].Seed)
	assert.Equal(t, config.AnimatedRectCount, built[0].Rects)
	assert.Equal(t, sc.Palette.Swatches[0].Name, built[0].Inks[0])

	total := 0
	for i := 0; i < 600; i++ {
		total += sc.Advance()
	}
	require.Positive(t, total)
	assert.Len(t, recycled, total)
	for _, r := range recycled {
		assert.GreaterOrEqual(t, r.Index, 0)
		assert.Less(t, r.Index, len(sc.Rects))
		assert.Positive(t, r.Frame)
	}
}
