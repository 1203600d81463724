// Package raster is a small immediate-mode 2D canvas drawing into an
// *image.RGBA. It covers what the sketch needs from an HTML-style canvas:
// polygon paths, fill, stroke with miter joins, clipping, translation,
// separable blend modes and hard (unblurred) drop shadows.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"go-skewrect/pkg/geometry"
	"go-skewrect/pkg/utils"
)

type state struct {
	tx, ty float64

	fill, stroke color.NRGBA
	lineWidth    float64
	miterLimit   float64
	op           BlendMode

	shadow           color.NRGBA
	shadowX, shadowY float64

	// clip is never mutated after it is installed, so saved states can
	// share it.
	clip     *image.Alpha
	clipRect image.Rectangle
}

type subpath struct {
	pts    geometry.Path
	closed bool
}

// Canvas draws into an RGBA image. The zero value is not usable.
type Canvas struct {
	img   *image.RGBA
	st    state
	stack []state
	path  []subpath
	ras   *vector.Rasterizer
}

// NewCanvas allocates a transparent w×h canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		ras: vector.NewRasterizer(1, 1),
	}
	c.st = c.defaultState()
	return c
}

func (c *Canvas) defaultState() state {
	return state{
		fill:       color.NRGBA{0, 0, 0, 255},
		stroke:     color.NRGBA{0, 0, 0, 255},
		lineWidth:  1,
		miterLimit: DefaultMiterLimit,
		op:         Normal,
		clipRect:   c.img.Bounds(),
	}
}

// Image returns the backing image. It stays owned by the canvas.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Reset clears pixels, state stack and path.
func (c *Canvas) Reset() {
	for i := range c.img.Pix {
		c.img.Pix[i] = 0
	}
	c.st = c.defaultState()
	c.stack = c.stack[:0]
	c.path = c.path[:0]
}

// Save pushes the drawing state: transform, styles, composite, shadow, clip.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.st)
}

// Restore pops the state pushed by the matching Save. Extra calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.st = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.st.tx += dx
	c.st.ty += dy
}

func (c *Canvas) SetFillColor(col color.NRGBA)   { c.st.fill = col }
func (c *Canvas) SetStrokeColor(col color.NRGBA) { c.st.stroke = col }
func (c *Canvas) SetLineWidth(w float64)         { c.st.lineWidth = w }
func (c *Canvas) SetComposite(op BlendMode)      { c.st.op = op }

// SetShadow makes later fills and strokes cast a hard shadow offset by
// (dx, dy) device pixels until the state is restored. A transparent color
// disables it.
func (c *Canvas) SetShadow(col color.NRGBA, dx, dy float64) {
	c.st.shadow = col
	c.st.shadowX = dx
	c.st.shadowY = dy
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath at (x, y) in user space.
func (c *Canvas) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{pts: geometry.Path{c.device(x, y)}})
}

// LineTo extends the current subpath; without one it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.path) == 0 {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.pts = append(sp.pts, c.device(x, y))
}

// ClosePath closes the current subpath and starts a new one at its first point.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	sp := &c.path[len(c.path)-1]
	if sp.closed || len(sp.pts) == 0 {
		return
	}
	sp.closed = true
	c.path = append(c.path, subpath{pts: geometry.Path{sp.pts[0]}})
}

// TracePath appends p as one subpath, closing it when closed is set.
func (c *Canvas) TracePath(p geometry.Path, closed bool) {
	for i, pt := range p {
		if i == 0 {
			c.MoveTo(pt.X, pt.Y)
		} else {
			c.LineTo(pt.X, pt.Y)
		}
	}
	if closed {
		c.ClosePath()
	}
}

func (c *Canvas) device(x, y float64) geometry.Point {
	return geometry.Point{X: x + c.st.tx, Y: y + c.st.ty}
}

// Fill paints the interior of the current path with the fill color.
func (c *Canvas) Fill() {
	polys := make([]geometry.Path, 0, len(c.path))
	for _, sp := range c.path {
		if len(sp.pts) >= 3 {
			polys = append(polys, sp.pts)
		}
	}
	c.paint(polys, c.st.fill)
}

// Stroke paints the outline of the current path with the stroke color.
func (c *Canvas) Stroke() {
	var polys []geometry.Path
	for _, sp := range c.path {
		polys = append(polys, strokeOutline(sp.pts, sp.closed, c.st.lineWidth, c.st.miterLimit)...)
	}
	c.paint(polys, c.st.stroke)
}

// Clip intersects the clip region with the current path.
func (c *Canvas) Clip() {
	polys := make([]geometry.Path, 0, len(c.path))
	for _, sp := range c.path {
		if len(sp.pts) >= 3 {
			polys = append(polys, sp.pts)
		}
	}

	b := c.img.Bounds()
	clip := image.NewAlpha(b)
	cov, ok := c.rasterize(polys)
	if !ok {
		c.st.clip = clip
		c.st.clipRect = image.Rectangle{}
		return
	}

	rect := image.Rectangle{}
	for y := cov.rect.Min.Y; y < cov.rect.Max.Y; y++ {
		for x := cov.rect.Min.X; x < cov.rect.Max.X; x++ {
			a := uint32(cov.at(x, y))
			if old := c.st.clip; old != nil {
				a = a * uint32(old.AlphaAt(x, y).A) / 255
			}
			if a == 0 {
				continue
			}
			clip.SetAlpha(x, y, color.Alpha{A: uint8(a)})
			rect = rect.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	c.st.clip = clip
	c.st.clipRect = rect
}

// FillRect fills an axis-aligned rectangle without touching the current path.
func (c *Canvas) FillRect(x, y, w, h float64) {
	p0 := c.device(x, y)
	p1 := c.device(x+w, y+h)
	c.paint([]geometry.Path{{p0, {X: p1.X, Y: p0.Y}, p1, {X: p0.X, Y: p1.Y}}}, c.st.fill)
}

func (c *Canvas) paint(polys []geometry.Path, col color.NRGBA) {
	if len(polys) == 0 || col.A == 0 {
		return
	}
	cov, ok := c.rasterize(polys)
	if !ok {
		return
	}
	if c.st.shadow.A != 0 && (c.st.shadowX != 0 || c.st.shadowY != 0) {
		c.composite(cov, int(math.Round(c.st.shadowX)), int(math.Round(c.st.shadowY)), c.st.shadow)
	}
	c.composite(cov, 0, 0, col)
}

// coverage is an antialiased mask for the device rectangle rect.
type coverage struct {
	rect image.Rectangle
	mask *image.Alpha
}

func (cv coverage) at(x, y int) uint8 {
	return cv.mask.Pix[(y-cv.rect.Min.Y)*cv.mask.Stride+(x-cv.rect.Min.X)]
}

// rasterize turns polygons in device space into coverage over their bounding
// box, limited to the canvas.
func (c *Canvas) rasterize(polys []geometry.Path) (coverage, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range polys {
		for _, pt := range p {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return coverage{}, false
	}

	rect := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if rect.Empty() {
		return coverage{}, false
	}

	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	c.ras.Reset(rect.Dx(), rect.Dy())
	c.ras.DrawOp = draw.Src
	for _, p := range polys {
		for i, pt := range p {
			x, y := float32(pt.X-ox), float32(pt.Y-oy)
			if i == 0 {
				c.ras.MoveTo(x, y)
			} else {
				c.ras.LineTo(x, y)
			}
		}
		c.ras.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	c.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return coverage{rect: rect, mask: mask}, true
}

// composite blends col through cov, shifted by (dx, dy), into the image
// using the current blend mode and clip.
func (c *Canvas) composite(cov coverage, dx, dy int, col color.NRGBA) {
	target := cov.rect.Add(image.Pt(dx, dy)).Intersect(c.img.Bounds())
	if c.st.clip != nil {
		target = target.Intersect(c.st.clipRect)
	}
	if target.Empty() {
		return
	}

	srcA := float64(col.A) / 255
	cs := [3]float64{float64(col.R) / 255, float64(col.G) / 255, float64(col.B) / 255}
	op := c.st.op

	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			m := float64(cov.at(x-dx, y-dy)) / 255
			if c.st.clip != nil {
				m *= float64(c.st.clip.Pix[c.st.clip.PixOffset(x, y)]) / 255
			}
			as := srcA * m
			if as == 0 {
				continue
			}

			i := c.img.PixOffset(x, y)
			px := c.img.Pix[i : i+4 : i+4]
			ab := float64(px[3]) / 255

			for k := 0; k < 3; k++ {
				cbp := float64(px[k]) / 255
				src := cs[k]
				if op != Normal && ab > 0 {
					cb := utils.Clamp(cbp/ab, 0, 1)
					src = utils.Lerp(src, op.mix(cb, cs[k]), ab)
				}
				px[k] = toByte(as*src + (1-as)*cbp)
			}
			px[3] = toByte(as + ab*(1-as))
		}
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(utils.Clamp(v, 0, 1) * 255))
}
