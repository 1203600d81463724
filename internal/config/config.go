// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1080
	ScreenHeight = 1080
	TargetFPS    = 60

	AnimatedRectCount = 100
	StaticRectCount   = 50

	MinRectWidth          = 600.0
	AnimatedMaxWidthRatio = 0.25
	StaticMaxWidthRatio   = 0.8
	MinRectHeight         = 50.0
	MaxRectHeight         = 120.0
	MinRectSpeed          = 2.0
	MaxRectSpeed          = 5.0

	AnimatedSkewDeg = -45.0
	StaticSkewDeg   = -30.0

	OverlayChance = 0.6

	MaskRadiusRatio = 0.4
	MaskSides       = 3
	MaskLineWidth   = 20.0

	// Drift spawn: rects enter right of the mask centre at a random height.
	DriftSpawnMinY = -100.0

	// Scatter spawn: static rects are thrown anywhere around the canvas.
	ScatterSpawnMinX   = -600.0
	ScatterSpawnMinY   = 100.0
	ScatterSpawnExtraY = 200.0

	RectLineWidth    = 10.0
	OutlineLineWidth = 2.0
	MaskHairline     = 1.0

	ShadowLightnessShift = -20.0 // percentage points
	ShadowOffsetX        = -10.0
	ShadowOffsetY        = 20.0

	MaskOutlineAlpha  = 0.6
	InnerOutlineAlpha = 0.4

	LabelX        = 8
	LabelY        = 8
	LabelWidth    = 150
	LabelHeight   = 55
	LabelFontSize = 48
)

var (
	OutlineColor    = color.NRGBA{0, 0, 0, 255}
	LabelBackground = color.NRGBA{255, 255, 255, 255}
	LabelTextColor  = color.NRGBA{0, 0, 0, 255}
)
