// Package palette holds the riso swatch set and the color arithmetic the
// sketch needs: hex parsing, lightness offsets and two-color palettes.
package palette

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"go-skewrect/pkg/utils"
)

//go:embed riso.json
var risoJSON []byte

// ErrEmptySwatches is returned when a palette is sampled from nothing.
var ErrEmptySwatches = errors.New("no swatches to sample from")

// Swatch is a named ink color.
type Swatch struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Color parses the swatch hex value.
func (s Swatch) Color() (color.NRGBA, error) {
	c, err := ParseHex(s.Hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("swatch %q: %w", s.Name, err)
	}
	return c, nil
}

// Riso returns the built-in riso ink swatches in their catalogue order.
func Riso() ([]Swatch, error) {
	var swatches []Swatch
	if err := json.Unmarshal(risoJSON, &swatches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal riso swatches: %w", err)
	}
	return swatches, nil
}

// LoadSwatches decodes a JSON swatch list in the same shape as the built-in one.
func LoadSwatches(data []byte) ([]Swatch, error) {
	var swatches []Swatch
	if err := json.Unmarshal(data, &swatches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal swatches: %w", err)
	}
	for _, s := range swatches {
		if _, err := s.Color(); err != nil {
			return nil, err
		}
	}
	return swatches, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// OffsetHSL shifts c in HSL space. dh is in degrees and wraps; ds and dl are
// percentage points and clamp to [0, 100]. Alpha is kept.
func OffsetHSL(c color.NRGBA, dh, ds, dl float64) color.NRGBA {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()

	h = math.Mod(h+dh, 360)
	if h < 0 {
		h += 360
	}
	s = utils.Clamp(s+ds/100, 0, 1)
	l = utils.Clamp(l+dl/100, 0, 1)

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

// WithAlpha returns c with its alpha set from a [0, 1] opacity.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(utils.Clamp(a, 0, 1) * 255))
	return c
}

// Picker is the slice of the random source a palette needs.
type Picker interface {
	Pick(n int) int
}

// Palette is the two-ink palette of one run plus its background.
type Palette struct {
	Swatches   [2]Swatch
	Colors     [2]color.NRGBA
	Background color.NRGBA
}

// Sample draws two swatches with replacement and picks the background from them.
func Sample(rng Picker, swatches []Swatch) (Palette, error) {
	if len(swatches) == 0 {
		return Palette{}, ErrEmptySwatches
	}

	var p Palette
	for i := range p.Swatches {
		s := swatches[rng.Pick(len(swatches))]
		c, err := s.Color()
		if err != nil {
			return Palette{}, err
		}
		p.Swatches[i] = s
		p.Colors[i] = c
	}
	p.Background = p.Pick(rng)
	return p, nil
}

// Pick returns one of the two palette colors.
func (p Palette) Pick(rng Picker) color.NRGBA {
	return p.Colors[rng.Pick(len(p.Colors))]
}
