// seehuhn.de/go/mirror - reflected images and their masks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mirror

import (
	"cmp"
	"image"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds is the size of an image.  The zero value is the blank state of
// the mask cache.
type Bounds struct {
	Width, Height int
}

// BoundsOf returns the size of img.
func BoundsOf(img image.Image) Bounds {
	r := img.Bounds()
	return Bounds{Width: r.Dx(), Height: r.Dy()}
}

// IsZero reports whether b is the blank state.
func (b Bounds) IsZero() bool {
	return b.Width == 0 && b.Height == 0
}

// Rect returns the image rectangle with the origin at the top-left corner.
func (b Bounds) Rect() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func rectOf(b Bounds) rect.Rect {
	return rect.Rect{URx: float64(b.Width), URy: float64(b.Height)}
}

// Polygon is the closed region of an image on the mirrored side of a
// mirror line.  Vertices are in pixel coordinates, with the origin at
// the top-left corner of the image.
type Polygon []vec.Vec2

// Path returns the polygon as a closed path.
func (p Polygon) Path() *path.Data {
	res := &path.Data{}
	if len(p) == 0 {
		return res
	}
	res.MoveTo(p[0])
	for _, v := range p[1:] {
		res.LineTo(v)
	}
	return res.Close()
}

// Area returns the area enclosed by the polygon.
func (p Polygon) Area() float64 {
	var sum float64
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return math.Abs(sum) / 2
}

// vertex identifies a point of a clip polygon: an intersection of the
// mirror line with one of the rectangle edges, or a rectangle corner.
type vertex uint8

const (
	pl vertex = iota // left edge
	pr               // right edge
	pt               // top edge
	pb               // bottom edge
	tl               // top-left corner
	tr               // top-right corner
	bl               // bottom-left corner
	br               // bottom-right corner
)

// edgePair is a pair of rectangle edges crossed by the mirror line.
// The values are in order of precedence: when the line passes through a
// corner, more than two intersections exist and the first matching pair
// is used.
type edgePair uint8

const (
	leftRight edgePair = iota
	topBottom
	leftTop
	leftBottom
	rightTop
	rightBottom
)

var pairEnds = [...][2]vertex{
	leftRight:   {pl, pr},
	topBottom:   {pt, pb},
	leftTop:     {pl, pt},
	leftBottom:  {pl, pb},
	rightTop:    {pr, pt},
	rightBottom: {pr, pb},
}

func (p edgePair) String() string {
	return [...]string{
		leftRight:   "left and right",
		topBottom:   "top and bottom",
		leftTop:     "left and top",
		leftBottom:  "left and bottom",
		rightTop:    "right and top",
		rightBottom: "right and bottom",
	}[p]
}

// bySign reports whether the vertex chain for p is chosen by the sign of
// alpha.  For the other pairs, |alpha| is compared to π/2.
func (p edgePair) bySign() bool {
	return p == topBottom || p == leftBottom || p == rightBottom
}

type chainKey struct {
	pair edgePair
	sel  int // sign of alpha, or sign of |alpha|-π/2
}

// clipChains lists the polygon vertices for every legal combination of
// crossed edges and line angle.  Missing keys are illegal lines.
var clipChains = map[chainKey][]vertex{
	{leftRight, +1}: {pl, tl, tr, pr}, // top
	{leftRight, -1}: {pl, bl, br, pr}, // bottom

	{topBottom, +1}: {pb, bl, tl, pt}, // left
	{topBottom, -1}: {pt, tr, br, pb}, // right

	{leftTop, +1}: {pl, tl, pt},
	{leftTop, -1}: {pt, tr, br, bl, pl},

	{leftBottom, +1}: {pl, bl, pb},
	{leftBottom, -1}: {pl, tl, tr, br, pb},

	{rightTop, +1}: {pt, tr, pr},
	{rightTop, -1}: {pr, br, bl, tl, pt},

	{rightBottom, +1}: {pb, bl, tl, tr, pr},
	{rightBottom, -1}: {pr, br, pb},
}

// ClipPolygon computes the part of an image of size b which lies on the
// mirrored side of the line.  The result is not cached.
//
// If the line misses the image, or is degenerate for the given size, an
// [*IllegalLineError] is returned.
func (m *Mirror) ClipPolygon(b Bounds) (Polygon, error) {
	w, h := float64(b.Width), float64(b.Height)

	// the reference point, in pixel coordinates
	cx := math.Floor(m.x + float64(b.Width/2) + 0.5)
	cy := math.Floor(m.y + float64(b.Height/2) + 0.5)

	var pts [8]vec.Vec2
	var found [4]bool
	if math.Abs(m.alpha) == math.Pi/2 {
		pts[pt] = vec.Vec2{X: cx, Y: 0}
		pts[pb] = vec.Vec2{X: cx, Y: h}
		found[pt], found[pb] = true, true
	} else {
		slope := math.Tan(m.alpha)
		pts[pl] = vec.Vec2{X: 0, Y: cy - cx*slope}
		pts[pr] = vec.Vec2{X: w, Y: cy - (cx-w)*slope}
		found[pl] = within(pts[pl].Y, h)
		found[pr] = within(pts[pr].Y, h)

		if m.alpha != 0 && math.Abs(m.alpha) != math.Pi {
			pts[pt] = vec.Vec2{X: cx - cy/slope, Y: 0}
			pts[pb] = vec.Vec2{X: cx - (cy-h)/slope, Y: h}
			found[pt] = within(pts[pt].X, w)
			found[pb] = within(pts[pb].X, w)
		}
	}
	pts[tl] = vec.Vec2{X: 0, Y: 0}
	pts[tr] = vec.Vec2{X: w, Y: 0}
	pts[bl] = vec.Vec2{X: 0, Y: h}
	pts[br] = vec.Vec2{X: w, Y: h}

	for pair, ends := range pairEnds {
		if !found[ends[0]] || !found[ends[1]] {
			continue
		}
		p := edgePair(pair)
		chain, ok := clipChains[chainKey{p, m.selector(p)}]
		if !ok {
			return nil, m.illegal(b, p.String())
		}
		poly := make(Polygon, len(chain))
		for i, v := range chain {
			poly[i] = pts[v]
		}
		return poly, nil
	}
	return nil, m.illegal(b, "")
}

// selector returns the second half of the clipChains key for the given
// pair of edges.
func (m *Mirror) selector(p edgePair) int {
	if p.bySign() {
		return cmp.Compare(m.alpha, 0)
	}
	return cmp.Compare(math.Abs(m.alpha), math.Pi/2)
}

func (m *Mirror) illegal(b Bounds, edges string) error {
	Logger().Debug("mirror: illegal line",
		"x", m.x, "y", m.y, "alpha", m.alpha,
		"width", b.Width, "height", b.Height, "edges", edges)
	return &IllegalLineError{Alpha: m.alpha, Bounds: b, Edges: edges}
}

// within reports whether 0 <= v <= limit.
func within(v, limit float64) bool {
	return v >= 0 && v <= limit
}
