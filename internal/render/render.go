// internal/render/render.go
package render

import (
	"fmt"
	"image"
	"image/color"

	"go-skewrect/internal/config"
	"go-skewrect/internal/scene"
	"go-skewrect/pkg/geometry"
	"go-skewrect/pkg/palette"
	"go-skewrect/pkg/raster"
)

// Surface is the immediate-mode canvas a frame is drawn on.
// *raster.Canvas implements it.
type Surface interface {
	Save()
	Restore()
	Translate(dx, dy float64)

	BeginPath()
	TracePath(p geometry.Path, closed bool)

	Fill()
	Stroke()
	Clip()
	FillRect(x, y, w, h float64)

	SetFillColor(c color.NRGBA)
	SetStrokeColor(c color.NRGBA)
	SetLineWidth(w float64)
	SetComposite(op raster.BlendMode)
	SetShadow(c color.NRGBA, dx, dy float64)
}

var _ Surface = (*raster.Canvas)(nil)

// Renderer draws complete frames of a scene.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw paints one frame: background, rects clipped to the mask, then the
// burnt-in mask outline on top.
func (r *Renderer) Draw(s Surface, sc *scene.Scene) error {
	p := sc.Profile
	mask := sc.Mask

	outline, err := mask.Path(mask.Radius)
	if err != nil {
		return fmt.Errorf("mask outline: %w", err)
	}

	s.SetFillColor(sc.Palette.Background)
	s.FillRect(0, 0, float64(p.Width), float64(p.Height))

	s.Save()
	s.Translate(mask.X, mask.Y)
	s.BeginPath()
	s.TracePath(outline, true)
	s.SetStrokeColor(config.OutlineColor)
	s.SetLineWidth(config.MaskHairline)
	s.Stroke()
	s.Clip()
	s.Translate(-mask.X, -mask.Y)

	for _, rect := range sc.Rects {
		drawRect(s, rect, p.SkewDeg)
	}
	s.Restore()

	s.Save()
	s.Translate(mask.X, mask.Y)
	s.SetComposite(raster.ColorBurn)
	s.BeginPath()
	s.TracePath(outline, true)
	s.SetLineWidth(mask.LineWidth)
	s.SetStrokeColor(palette.WithAlpha(config.OutlineColor, config.MaskOutlineAlpha))
	s.Stroke()

	if p.InnerOutline {
		inner, err := mask.Path(mask.Radius / 2)
		if err != nil {
			s.Restore()
			return fmt.Errorf("inner outline: %w", err)
		}
		s.SetStrokeColor(palette.WithAlpha(config.OutlineColor, config.InnerOutlineAlpha))
		s.SetLineWidth(mask.LineWidth / 2)
		s.BeginPath()
		s.TracePath(inner, true)
		s.Stroke()
	}
	s.Restore()
	return nil
}

func drawRect(s Surface, rect scene.Rect, skewDeg float64) {
	// The shadow set below stays on for both strokes; Restore drops it.
	s.Save()
	defer s.Restore()

	s.Translate(rect.X, rect.Y)
	s.SetStrokeColor(rect.Stroke)
	s.SetFillColor(rect.Fill)
	s.SetLineWidth(config.RectLineWidth)
	s.SetComposite(rect.Blend)

	// The slab outline ends with a line back to the origin instead of a
	// close, so the starting corner keeps its butt-capped notch.
	s.BeginPath()
	s.TracePath(geometry.SkewedRect(rect.W, rect.H, skewDeg), false)

	shadow := palette.OffsetHSL(rect.Fill, 0, 0, config.ShadowLightnessShift)
	s.SetShadow(shadow, config.ShadowOffsetX, config.ShadowOffsetY)
	s.Fill()
	s.Stroke()

	s.SetComposite(raster.Normal)
	s.SetLineWidth(config.OutlineLineWidth)
	s.SetStrokeColor(config.OutlineColor)
	s.Stroke()
}

// Render clears the canvas and draws the scene's current frame on it.
func (r *Renderer) Render(c *raster.Canvas, sc *scene.Scene) (*image.RGBA, error) {
	c.Reset()
	if err := r.Draw(c, sc); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
