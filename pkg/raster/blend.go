package raster

import (
	"fmt"
	"math"
	"strings"
)

// BlendMode selects how a new shape combines with pixels already drawn.
// Names follow the canvas globalCompositeOperation values.
type BlendMode int

const (
	Normal BlendMode = iota
	Overlay
	ColorBurn
)

var blendNames = [...]string{
	Normal:    "source-over",
	Overlay:   "overlay",
	ColorBurn: "color-burn",
}

func (m BlendMode) String() string {
	if m < 0 || int(m) >= len(blendNames) {
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
	return blendNames[m]
}

// ParseBlendMode accepts the canvas names plus "normal" for source-over.
func ParseBlendMode(s string) (BlendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "source-over", "normal":
		return Normal, nil
	case "overlay":
		return Overlay, nil
	case "color-burn":
		return ColorBurn, nil
	}
	return Normal, fmt.Errorf("unknown blend mode %q", s)
}

// MarshalText lets profiles and logs carry modes by name.
func (m BlendMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *BlendMode) UnmarshalText(b []byte) error {
	v, err := ParseBlendMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// mix returns the blended source channel B(cb, cs) for non-premultiplied
// backdrop cb and source cs, both in [0, 1].
func (m BlendMode) mix(cb, cs float64) float64 {
	switch m {
	case Overlay:
		// overlay(cb, cs) is hard-light with the layers swapped.
		if cb <= 0.5 {
			return cs * 2 * cb
		}
		s := 2*cb - 1
		return cs + s - cs*s
	case ColorBurn:
		if cb >= 1 {
			return 1
		}
		if cs <= 0 {
			return 0
		}
		return 1 - math.Min(1, (1-cb)/cs)
	}
	return cs
}
