package raster

import (
	"math"

	"go-skewrect/pkg/geometry"
)

// DefaultMiterLimit matches the canvas default.
const DefaultMiterLimit = 10.0

// strokeOutline expands a polyline into polygons covering its stroke: one
// quad per segment plus a miter (or bevel) wedge at every join. Open paths
// get butt caps. All polygons share one orientation so their union can be
// rasterised in a single pass.
func strokeOutline(pts geometry.Path, closed bool, width, miterLimit float64) []geometry.Path {
	pts = dedupe(pts, closed)
	n := len(pts)
	if n < 2 || width <= 0 {
		return nil
	}
	hw := width / 2

	segs := n - 1
	if closed {
		segs = n
	}

	type seg struct {
		a, b   geometry.Point
		d, nrm geometry.Point
	}
	ss := make([]seg, 0, segs)
	for i := 0; i < segs; i++ {
		a, b := pts[i], pts[(i+1)%n]
		d := unit(b.X-a.X, b.Y-a.Y)
		ss = append(ss, seg{a: a, b: b, d: d, nrm: geometry.Point{X: -d.Y, Y: d.X}})
	}

	out := make([]geometry.Path, 0, 2*segs)
	for _, s := range ss {
		off := scale(s.nrm, hw)
		out = append(out, oriented(geometry.Path{
			add(s.a, off), add(s.b, off), sub(s.b, off), sub(s.a, off),
		}))
	}

	join := func(in, outSeg seg) {
		cross := in.d.X*outSeg.d.Y - in.d.Y*outSeg.d.X
		if math.Abs(cross) < 1e-12 {
			return
		}
		v := in.b
		side := -1.0
		if dot(in.nrm, outSeg.d) < 0 {
			side = 1
		}
		p1 := add(v, scale(in.nrm, side*hw))
		p2 := add(v, scale(outSeg.nrm, side*hw))

		cos := dot(in.d, outSeg.d)
		if 1+cos < 1e-12 || math.Sqrt(2/(1+cos)) > miterLimit {
			out = append(out, oriented(geometry.Path{v, p1, p2}))
			return
		}
		tip := add(v, scale(add(in.nrm, outSeg.nrm), side*hw/(1+cos)))
		out = append(out, oriented(geometry.Path{v, p1, tip, p2}))
	}

	for i := 0; i+1 < len(ss); i++ {
		join(ss[i], ss[i+1])
	}
	if closed {
		join(ss[len(ss)-1], ss[0])
	}
	return out
}

// dedupe drops zero-length segments, including the closing one of a
// closed path.
func dedupe(pts geometry.Path, closed bool) geometry.Path {
	out := make(geometry.Path, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && near(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if closed {
		for len(out) > 1 && near(out[0], out[len(out)-1]) {
			out = out[:len(out)-1]
		}
	}
	return out
}

func signedArea(p geometry.Path) float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

func oriented(p geometry.Path) geometry.Path {
	if signedArea(p) < 0 {
		for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
			p[i], p[j] = p[j], p[i]
		}
	}
	return p
}

func near(a, b geometry.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func unit(x, y float64) geometry.Point {
	l := math.Hypot(x, y)
	return geometry.Point{X: x / l, Y: y / l}
}

func add(a, b geometry.Point) geometry.Point           { return geometry.Point{X: a.X + b.X, Y: a.Y + b.Y} }
func sub(a, b geometry.Point) geometry.Point           { return geometry.Point{X: a.X - b.X, Y: a.Y - b.Y} }
func scale(a geometry.Point, k float64) geometry.Point { return geometry.Point{X: a.X * k, Y: a.Y * k} }
func dot(a, b geometry.Point) float64                  { return a.X*b.X + a.Y*b.Y }
