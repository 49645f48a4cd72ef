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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Lines parallel to the rectangle edges.
var axisCases = []TestCase{
	{
		// The line crosses left and right, the bottom half is mirrored.
		Name:   "horizontal_center",
		Alpha:  0,
		Width:  400,
		Height: 300,
		Want:   []vec.Vec2{pt(0, 150), pt(0, 300), pt(400, 300), pt(400, 150)},
	},
	{
		Name:   "horizontal_below",
		Y:      50,
		Alpha:  0,
		Width:  400,
		Height: 300,
		Want:   []vec.Vec2{pt(0, 200), pt(0, 300), pt(400, 300), pt(400, 200)},
	},
	{
		// Turning the line around mirrors the other half.
		Name:   "horizontal_reversed",
		Alpha:  math.Pi,
		Width:  400,
		Height: 300,
		Want:   []vec.Vec2{pt(0, 150), pt(0, 0), pt(400, 0), pt(400, 150)},
	},
	{
		Name:   "vertical_center",
		Alpha:  math.Pi / 2,
		Width:  100,
		Height: 100,
		Want:   []vec.Vec2{pt(50, 100), pt(0, 100), pt(0, 0), pt(50, 0)},
	},
	{
		Name:   "vertical_reversed",
		Alpha:  -math.Pi / 2,
		Width:  100,
		Height: 100,
		Want:   []vec.Vec2{pt(50, 0), pt(100, 0), pt(100, 100), pt(50, 100)},
	},
	{
		// A vertical line on the right edge mirrors the whole rectangle.
		Name:   "vertical_edge",
		X:      50,
		Alpha:  math.Pi / 2,
		Width:  100,
		Height: 100,
		Want:   []vec.Vec2{pt(100, 100), pt(0, 100), pt(0, 0), pt(100, 0)},
	},
}
