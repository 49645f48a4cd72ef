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

// Package raster turns closed paths into per-pixel coverage.
//
// The mirror package uses it to rasterise clip polygons into alpha masks
// and to draw line overlays.  Coverage is delivered one scanline at a
// time through an emit callback, so that callers can write it into any
// kind of buffer.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline.  Coverage values range
// from 0 (outside) to 1 (inside); coverage[i] belongs to pixel xMin+i.
// The slice is only valid for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a polygon edge in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser computes the coverage of filled paths.
// Internal buffers are reused between calls, so a single Rasteriser
// should be kept around and reused.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip is the output region in device coordinates.  The coordinates
	// must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the line width used by StrokeSegment, in user space units.
	Width float64

	// Cap is the line cap used by StrokeSegment.
	Cap graphics.LineCapStyle

	edges  []edge
	active []int
	cover  []float32 // per-pixel change of the winding accumulator
	area   []float32 // per-pixel partial area
	stroke []vec.Vec2

	bboxEmpty bool
	bbXMin    float64
	bbXMax    float64
	bbYMin    float64
	bbYMax    float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default settings and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt

	r.edges = r.edges[:0]
	r.active = r.active[:0]
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.stroke = r.stroke[:0]
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.scan(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.collectPath(p)
	r.scan(fillEvenOdd, emit)
}

// FillPolygon fills the closed polygon with the given vertices, using the
// nonzero winding rule.  Polygons with fewer than three vertices cover
// nothing.
func (r *Rasteriser) FillPolygon(vertices []vec.Vec2, emit EmitFunc) {
	r.startEdges()
	r.addPolygon(vertices)
	r.scan(fillNonZero, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasteriser) startEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

func (r *Rasteriser) addPolygon(vertices []vec.Vec2) {
	if len(vertices) < 3 {
		return
	}
	prev := vertices[len(vertices)-1]
	for _, v := range vertices {
		r.addEdge(prev, v)
		prev = v
	}
}

// collectPath converts p into the edge list.  Curves are flattened and
// every subpath is closed implicitly, as required for filling.
func (r *Rasteriser) collectPath(p *path.Data) {
	r.startEdges()
	if p == nil {
		return
	}

	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

// addEdge transforms a user space segment to device space and appends it
// to the edge list.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bbXMin, r.bbXMax = min(x0, x1), max(x0, x1)
		r.bbYMin, r.bbYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bbXMin = min(r.bbXMin, x0, x1)
	r.bbXMax = max(r.bbXMax, x0, x1)
	r.bbYMin = min(r.bbYMin, y0, y1)
	r.bbYMax = max(r.bbYMax, y0, y1)
}

// pixelBox returns the integer bounding box of the edge list, clamped to
// the clip rectangle.
func (r *Rasteriser) pixelBox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bbXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bbXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bbYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bbYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// Every edge deposits two quantities into the pixels it crosses:
//
//	cover: the signed height of the part of the edge inside the pixel
//	area:  cover, weighted by the part of the pixel right of the edge
//
// Walking a scanline from left to right, the coverage of pixel i is
// accum + area[i], after which accum grows by cover[i].  Edges left of
// the clip region dump their full contribution into the first pixel.

// scan runs an active edge list over all scanlines of the bounding box.
func (r *Rasteriser) scan(rule fillRule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.pixelBox()
	if !ok {
		return
	}
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulate(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the part of e inside scanline y to the cover and area
// buffers, which span the pixel columns [xMin, xMax).  The return value
// reports whether the edge intersects the scanline.
func (r *Rasteriser) accumulate(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), e.yMin())
	bottom := min(float64(y+1), e.yMax())
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	switch {
	case right < xMin:
		c := sign * float32(bottom-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return true
	case left == right:
		r.deposit(e, top, bottom, sign, left, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for col := left; col <= right; col++ {
		yA := e.y0 + dydx*(float64(col)-e.x0)
		yB := e.y0 + dydx*(float64(col+1)-e.x0)
		segTop := max(min(yA, yB), top)
		segBottom := min(max(yA, yB), bottom)
		if segBottom <= segTop {
			continue
		}
		r.deposit(e, segTop, segBottom, sign, col, xMin, xMax)
	}
	return true
}

// deposit adds the contribution of the part of e between segTop and
// segBottom, which lies inside pixel column col.
func (r *Rasteriser) deposit(e *edge, segTop, segBottom float64, sign float32, col, xMin, xMax int) {
	c := sign * float32(segBottom-segTop)
	if col < xMin {
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if col >= xMax {
		return
	}
	mid := (segTop + segBottom) / 2
	frac := e.x0 + e.dxdy*(mid-e.y0) - float64(col)
	i := col - xMin
	r.cover[i] += c
	r.area[i] += c * float32(1-frac)
}

// integrateNonZero turns cover and area into coverage, in place in cover,
// using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		v := accum + area[i]
		accum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns cover and area into coverage, in place in cover,
// using the even-odd rule.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		v := accum + area[i]
		accum += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a scanline.
// It returns nil if the whole scanline is empty.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, so that the device space error stays below Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments.  The number of segments follows Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	dev := max(d1.Length(), d2.Length())
	n := 1
	if dev > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*dev/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the shortest segment StrokeSegment draws.
	zeroLengthThreshold = 1e-10
)
