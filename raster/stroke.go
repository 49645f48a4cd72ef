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

package raster

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeSegment draws the straight line from a to b, using Width and Cap.
// A zero-length segment is drawn as a dot for round and square caps and
// not at all for butt caps.
func (r *Rasteriser) StrokeSegment(a, b vec.Vec2, emit EmitFunc) {
	d := r.Width / 2
	if d <= 0 {
		return
	}

	r.stroke = r.stroke[:0]
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
		case graphics.LineCapSquare:
			r.addSquare(a, vec.Vec2{X: 1, Y: 0}, d)
		}
	} else {
		T := delta.Mul(1 / length)
		N := vec.Vec2{X: -T.Y, Y: T.X}

		// left side forward, cap at b, right side backward, cap at a
		r.stroke = append(r.stroke, a.Add(N.Mul(d)), b.Add(N.Mul(d)))
		r.addCap(b, T, d)
		r.stroke = append(r.stroke, b.Sub(N.Mul(d)), a.Sub(N.Mul(d)))
		r.addCap(a, T.Mul(-1), d)
	}

	r.startEdges()
	r.addPolygon(r.stroke)
	r.scan(fillNonZero, emit)
}

// addCap appends the outline of a line cap at P.  T is the unit tangent
// pointing away from the line and d is half the line width.  The caller
// has already appended P + d·N and appends P - d·N afterwards.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		// half circle from +N through T to -N
		r.addArc(P, d, N, -math.Pi, false)
	}
}

// addArc appends points on a circular arc around center.  The arc starts
// in direction startDir and sweeps by the given angle (positive is
// counter-clockwise).  The number of points depends on Flatness.
func (r *Rasteriser) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 1
	if devRadius >= r.Flatness {
		// a chord over angle θ deviates from the circle by r(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step <= 0 || math.IsNaN(step) {
			step = math.Pi / 4
		}
		n = max(1, int(math.Ceil(math.Abs(sweep)/step)))
	}

	first := 1
	if includeStart {
		first = 0
	}
	dt := sweep / float64(n)
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		r.stroke = append(r.stroke, center.Add(dir.Mul(radius)))
	}
}

// addSquare appends a square of side 2d around center, oriented along T.
func (r *Rasteriser) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	r.stroke = append(r.stroke,
		center.Add(T.Mul(d)).Add(N.Mul(d)),
		center.Add(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Sub(N.Mul(d)),
		center.Sub(T.Mul(d)).Add(N.Mul(d)),
	)
}
