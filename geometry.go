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

import "math"

// Reflect returns the mirror image of the point (px, py).  Coordinates are
// relative to the image centre.
//
// The computation uses the slope of the line, so that the result loses
// precision as the line approaches the vertical.  For vertical lines the
// result is meaningless.
func (m *Mirror) Reflect(px, py float64) (rx, ry float64) {
	slope := math.Tan(m.alpha)
	c := m.y - slope*m.x
	d := (px + (py-c)*slope) / (1 + slope*slope)
	rx = 2*d - px
	ry = 2*d*slope - py + 2*c
	return rx, ry
}

// Contains reports whether the point (px, py), relative to the image
// centre, lies on the mirrored side of the line.  This is the region
// covered by the clip polygon, and the region where mirages are drawn.
// Points on the line itself are on the mirrored side.
func (m *Mirror) Contains(px, py float64) bool {
	switch {
	case math.Abs(m.alpha) < math.Pi/2:
		return py >= m.y+math.Tan(m.alpha)*(px-m.x)
	case m.alpha == -math.Pi/2:
		return px >= m.x
	case m.alpha == math.Pi/2:
		return px <= m.x
	default:
		return py <= m.y+math.Tan(m.alpha)*(px-m.x)
	}
}
