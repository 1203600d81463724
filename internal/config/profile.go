// internal/config/profile.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// SpawnRule decides where a freshly generated rect is placed.
type SpawnRule string

const (
	// SpawnDrift places rects right of the mask centre; they drift down-left.
	SpawnDrift SpawnRule = "drift"
	// SpawnScatter places rects anywhere around the canvas; they stay put.
	SpawnScatter SpawnRule = "scatter"
)

// ErrInvalidProfile is matched by every profile validation error.
var ErrInvalidProfile = errors.New("invalid profile")

// Error describes a single rejected profile field.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

func (e *Error) Unwrap() error { return ErrInvalidProfile }

// Profile is the variant profile shared by the animated and static sketches.
type Profile struct {
	Name    string `toml:"name"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	FPS     int    `toml:"fps"`
	Animate bool   `toml:"animate"`

	RectCount     int     `toml:"rect_count"`
	MinWidth      float64 `toml:"min_width"`
	MaxWidthRatio float64 `toml:"max_width_ratio"`
	MinHeight     float64 `toml:"min_height"`
	MaxHeight     float64 `toml:"max_height"`
	MinSpeed      float64 `toml:"min_speed"`
	MaxSpeed      float64 `toml:"max_speed"`
	SkewDeg       float64 `toml:"skew_deg"`
	OverlayChance float64 `toml:"overlay_chance"`

	MaskRadiusRatio float64 `toml:"mask_radius_ratio"`
	MaskSides       int     `toml:"mask_sides"`
	MaskLineWidth   float64 `toml:"mask_line_width"`
	InnerOutline    bool    `toml:"inner_outline"`

	Spawn SpawnRule `toml:"spawn"`

	// AllowInvertedWidth accepts MinWidth > MaxWidth(). The animated preset
	// needs it: 600 > 0.25*1080, and sampling then yields widths in [270, 600].
	AllowInvertedWidth bool `toml:"allow_inverted_width"`
}

// Animated returns the profile of the animated sketch.
func Animated() Profile {
	return Profile{
		Name:               "animated",
		Width:              ScreenWidth,
		Height:             ScreenHeight,
		FPS:                TargetFPS,
		Animate:            true,
		RectCount:          AnimatedRectCount,
		MinWidth:           MinRectWidth,
		MaxWidthRatio:      AnimatedMaxWidthRatio,
		MinHeight:          MinRectHeight,
		MaxHeight:          MaxRectHeight,
		MinSpeed:           MinRectSpeed,
		MaxSpeed:           MaxRectSpeed,
		SkewDeg:            AnimatedSkewDeg,
		OverlayChance:      OverlayChance,
		MaskRadiusRatio:    MaskRadiusRatio,
		MaskSides:          MaskSides,
		MaskLineWidth:      MaskLineWidth,
		Spawn:              SpawnDrift,
		AllowInvertedWidth: true,
	}
}

// Static returns the profile of the single-frame sketch.
func Static() Profile {
	return Profile{
		Name:            "static",
		Width:           ScreenWidth,
		Height:          ScreenHeight,
		FPS:             TargetFPS,
		RectCount:       StaticRectCount,
		MinWidth:        MinRectWidth,
		MaxWidthRatio:   StaticMaxWidthRatio,
		MinHeight:       MinRectHeight,
		MaxHeight:       MaxRectHeight,
		SkewDeg:         StaticSkewDeg,
		OverlayChance:   OverlayChance,
		MaskRadiusRatio: MaskRadiusRatio,
		MaskSides:       MaskSides,
		MaskLineWidth:   MaskLineWidth,
		InnerOutline:    true,
		Spawn:           SpawnScatter,
	}
}

// Preset looks a built-in profile up by name.
func Preset(name string) (Profile, error) {
	switch strings.ToLower(name) {
	case "", "animated":
		return Animated(), nil
	case "static":
		return Static(), nil
	}
	return Profile{}, fmt.Errorf("unknown variant %q (want animated or static)", name)
}

// MaxWidth is the upper bound of the rect width range for this canvas.
func (p Profile) MaxWidth() float64 {
	return p.MaxWidthRatio * float64(p.Width)
}

// MaskRadius is the circumradius of the clipping polygon.
func (p Profile) MaskRadius() float64 {
	return p.MaskRadiusRatio * float64(p.Width)
}

// WidthRangeInverted reports whether MinWidth exceeds MaxWidth().
func (p Profile) WidthRangeInverted() bool {
	return p.MinWidth > p.MaxWidth()
}

// Validate fails fast on the first field that cannot produce a valid scene.
func (p Profile) Validate() error {
	switch {
	case p.Width <= 0:
		return &Error{"width", fmt.Sprintf("must be positive, got %d", p.Width)}
	case p.Height <= 0:
		return &Error{"height", fmt.Sprintf("must be positive, got %d", p.Height)}
	case p.Animate && p.FPS <= 0:
		return &Error{"fps", fmt.Sprintf("must be positive, got %d", p.FPS)}
	case p.RectCount <= 0:
		return &Error{"rect_count", fmt.Sprintf("must be positive, got %d", p.RectCount)}
	case p.MinWidth <= 0:
		return &Error{"min_width", fmt.Sprintf("must be positive, got %g", p.MinWidth)}
	case p.MaxWidthRatio <= 0:
		return &Error{"max_width_ratio", fmt.Sprintf("must be positive, got %g", p.MaxWidthRatio)}
	case p.WidthRangeInverted() && !p.AllowInvertedWidth:
		return &Error{"min_width", fmt.Sprintf("%g exceeds max width %g", p.MinWidth, p.MaxWidth())}
	case p.MinHeight <= 0:
		return &Error{"min_height", fmt.Sprintf("must be positive, got %g", p.MinHeight)}
	case p.MaxHeight < p.MinHeight:
		return &Error{"max_height", fmt.Sprintf("%g is below min height %g", p.MaxHeight, p.MinHeight)}
	case p.OverlayChance < 0 || p.OverlayChance > 1:
		return &Error{"overlay_chance", fmt.Sprintf("must be within [0, 1], got %g", p.OverlayChance)}
	case p.MaskRadiusRatio <= 0:
		return &Error{"mask_radius_ratio", fmt.Sprintf("must be positive, got %g", p.MaskRadiusRatio)}
	case p.MaskSides < 3:
		return &Error{"mask_sides", fmt.Sprintf("must be at least 3, got %d", p.MaskSides)}
	case p.MaskLineWidth <= 0:
		return &Error{"mask_line_width", fmt.Sprintf("must be positive, got %g", p.MaskLineWidth)}
	}

	switch p.Spawn {
	case SpawnScatter:
	case SpawnDrift:
		if p.MinSpeed <= 0 {
			return &Error{"min_speed", fmt.Sprintf("must be positive, got %g", p.MinSpeed)}
		}
		if p.MaxSpeed < p.MinSpeed {
			return &Error{"max_speed", fmt.Sprintf("%g is below min speed %g", p.MaxSpeed, p.MinSpeed)}
		}
	default:
		return &Error{"spawn", fmt.Sprintf("unknown rule %q", p.Spawn)}
	}
	return nil
}

// LoadProfile overlays the TOML file at path on base. Keys missing from the
// file keep their base values; unknown keys are rejected.
func LoadProfile(path string, base Profile) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	return DecodeProfile(string(data), base)
}

// DecodeProfile is LoadProfile for an in-memory document.
func DecodeProfile(doc string, base Profile) (Profile, error) {
	p := base
	md, err := toml.Decode(doc, &p)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, fmt.Errorf("unknown profile keys: %s", strings.Join(keys, ", "))
	}
	return p, nil
}

// Encode renders p as a TOML document.
func (p Profile) Encode() (string, error) {
	var b strings.Builder
	if err := toml.NewEncoder(&b).Encode(p); err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}
	return b.String(), nil
}
