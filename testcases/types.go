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

// Package testcases collects mirror line configurations together with
// the clip polygons they must produce.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// TestCase is a mirror line inside a rectangle of the given size.
type TestCase struct {
	Name   string  // lowercase a-z and _ only
	X, Y   float64 // reference point, relative to the rectangle centre
	Alpha  float64 // angle in radians
	Width  int     // rectangle width in pixels
	Height int     // rectangle height in pixels

	// Want lists the vertices of the expected clip polygon, in order.
	// Nil means that the line is illegal for this rectangle.
	Want []vec.Vec2
}

// Illegal reports whether the test case expects an illegal line error.
func (tc TestCase) Illegal() bool {
	return tc.Want == nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// deg converts degrees to radians.
func deg(a float64) float64 {
	return a * math.Pi / 180
}
