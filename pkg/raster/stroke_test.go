package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-skewrect/pkg/geometry"
)

func TestStrokeOutlinePolygonsShareOrientation(t *testing.T) {
	tri, err := geometry.Polygon(100, 3)
	assert.NoError(t, err)

	polys := strokeOutline(tri, true, 20, DefaultMiterLimit)
	// Three segment quads and three joins.
	assert.Len(t, polys, 6)
	for _, p := range polys {
		assert.GreaterOrEqual(t, signedArea(p), 0.0)
	}
}

func TestStrokeOutlineMiterFallsBackToBevel(t *testing.T) {
	// A hairpin turn has a miter ratio far above the limit.
	path := geometry.Path{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 1}}
	polys := strokeOutline(path, false, 10, DefaultMiterLimit)

	assert.Len(t, polys, 3)
	assert.Len(t, polys[2], 3, "bevel join is a triangle")
}

func TestStrokeOutlineDegenerate(t *testing.T) {
	assert.Nil(t, strokeOutline(geometry.Path{{X: 1, Y: 1}}, false, 5, DefaultMiterLimit))
	assert.Nil(t, strokeOutline(geometry.Path{{X: 1, Y: 1}, {X: 1, Y: 1}}, false, 5, DefaultMiterLimit))
	assert.Nil(t, strokeOutline(geometry.Path{{X: 0, Y: 0}, {X: 5, Y: 5}}, false, 0, DefaultMiterLimit))
}

func TestDedupe(t *testing.T) {
	in := geometry.Path{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}
	assert.Equal(t, geometry.Path{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}, {X: 0, Y: 0}}, dedupe(in, false))
	assert.Equal(t, geometry.Path{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 5, Y: 5}}, dedupe(in, true))
}
