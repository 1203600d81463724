// internal/scene/scene.go
package scene

import (
	"fmt"
	"image/color"
	"math"

	"go-skewrect/internal/config"
	"go-skewrect/internal/event"
	"go-skewrect/internal/utils"
	"go-skewrect/pkg/geometry"
	"go-skewrect/pkg/palette"
	"go-skewrect/pkg/raster"
)

// Rect is one skewed slab. X, Y is the top-left corner before skewing.
type Rect struct {
	X, Y   float64
	W, H   float64
	Fill   color.NRGBA
	Stroke color.NRGBA
	Blend  raster.BlendMode
	Speed  float64
}

// Mask is the clipping polygon every rect is drawn inside.
type Mask struct {
	X, Y      float64
	Radius    float64
	Sides     int
	Color     color.NRGBA
	LineWidth float64
}

// Path returns the mask outline at the given radius, centred on the origin.
func (m Mask) Path(radius float64) (geometry.Path, error) {
	return geometry.Polygon(radius, m.Sides)
}

// Scene owns everything one run draws: palette, mask and the rect pool.
type Scene struct {
	Profile config.Profile
	Palette palette.Palette
	Mask    Mask
	Rects   []Rect

	// Events, when set, receives SceneBuilt on Reset and RectRecycled from
	// Advance.
	Events *event.Dispatcher

	rng      *utils.PRNGService
	swatches []palette.Swatch
	frame    int
}

// New validates the profile and builds the initial scene from rng.
func New(p config.Profile, rng *utils.PRNGService, swatches []palette.Swatch) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		Profile:  p,
		rng:      rng,
		swatches: swatches,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scene) build() error {
	pal, err := palette.Sample(s.rng, s.swatches)
	if err != nil {
		return fmt.Errorf("failed to sample palette: %w", err)
	}
	s.Palette = pal

	p := s.Profile
	s.Mask = Mask{
		X:         float64(p.Width) / 2,
		Y:         float64(p.Height) / 2,
		Radius:    p.MaskRadius(),
		Sides:     p.MaskSides,
		Color:     pal.Pick(s.rng),
		LineWidth: p.MaskLineWidth,
	}
	if _, err := s.Mask.Path(s.Mask.Radius); err != nil {
		return fmt.Errorf("invalid mask: %w", err)
	}

	s.Rects = make([]Rect, p.RectCount)
	for i := range s.Rects {
		s.Rects[i] = s.NewRect()
	}
	s.frame = 0

	s.Events.Dispatch(event.Event{Type: event.SceneBuilt, Data: event.SceneInfo{
		Seed:  s.rng.Seed(),
		Rects: len(s.Rects),
		Inks:  [2]string{pal.Swatches[0].Name, pal.Swatches[1].Name},
	}})
	return nil
}

// Reset reseeds the generator and rebuilds the whole scene. Seed 0 picks a
// fresh seed.
func (s *Scene) Reset(seed int64) error {
	s.rng.Reseed(seed)
	return s.build()
}

// Seed is the seed the scene was built from.
func (s *Scene) Seed() int64 {
	return s.rng.Seed()
}

// Frame counts Advance calls since the scene was built.
func (s *Scene) Frame() int {
	return s.frame
}

// NewRect draws a fresh rect. The order of random draws is fixed so a seed
// always yields the same sequence of rects.
func (s *Scene) NewRect() Rect {
	p := s.Profile
	width, height := float64(p.Width), float64(p.Height)

	r := Rect{
		Fill:   s.Palette.Pick(s.rng),
		Stroke: s.Palette.Pick(s.rng),
		Blend:  raster.Normal,
	}
	if s.rng.Chance(p.OverlayChance) {
		r.Blend = raster.Overlay
	}
	r.W = s.rng.Range(p.MinWidth, p.MaxWidth())
	r.H = s.rng.Range(p.MinHeight, p.MaxHeight)

	switch p.Spawn {
	case config.SpawnScatter:
		r.X = s.rng.Range(config.ScatterSpawnMinX, width)
		r.Y = s.rng.Range(config.ScatterSpawnMinY, height+config.ScatterSpawnExtraY)
	default:
		r.X = width/2 + s.Mask.Radius/2
		r.Y = s.rng.Range(config.DriftSpawnMinY, height)
		r.Speed = s.rng.Range(p.MinSpeed, p.MaxSpeed)
	}
	return r
}

// Advance moves every rect one step along the skew direction and replaces,
// in place, those that left the canvas on the left. It reports how many
// were replaced. Static profiles do not move.
func (s *Scene) Advance() int {
	if !s.Profile.Animate {
		return 0
	}
	s.frame++

	dir := math.Cos(geometry.DegToRad(s.Profile.SkewDeg))
	recycled := 0
	for i := range s.Rects {
		r := &s.Rects[i]
		movement := dir * r.Speed
		r.X -= movement
		r.Y += movement

		if r.X <= -r.W {
			s.Rects[i] = s.NewRect()
			recycled++
			s.Events.Dispatch(event.Event{Type: event.RectRecycled, Data: event.Recycle{Frame: s.frame, Index: i}})
		}
	}
	return recycled
}
