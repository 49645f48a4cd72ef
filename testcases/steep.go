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

// Lines which cross opposite edges of the rectangle at an angle.
var steepCases = []TestCase{
	{
		Name:   "shallow",
		Alpha:  deg(10),
		Width:  400,
		Height: 100,
		Want: []vec.Vec2{
			pt(0, 50-200*math.Tan(deg(10))),
			pt(0, 100),
			pt(400, 100),
			pt(400, 50+200*math.Tan(deg(10))),
		},
	},
	{
		Name:   "thirty_degrees",
		Alpha:  deg(30),
		Width:  200,
		Height: 100,
		Want: []vec.Vec2{
			pt(100+50*math.Sqrt(3), 100),
			pt(0, 100),
			pt(0, 0),
			pt(100-50*math.Sqrt(3), 0),
		},
	},
	{
		Name:   "steep_positive",
		Alpha:  deg(60),
		Width:  200,
		Height: 100,
		Want: []vec.Vec2{
			pt(100+50/math.Sqrt(3), 100),
			pt(0, 100),
			pt(0, 0),
			pt(100-50/math.Sqrt(3), 0),
		},
	},
	{
		Name:   "steep_negative",
		Alpha:  deg(-60),
		Width:  200,
		Height: 100,
		Want: []vec.Vec2{
			pt(100+50/math.Sqrt(3), 0),
			pt(200, 0),
			pt(200, 100),
			pt(100-50/math.Sqrt(3), 100),
		},
	},
	{
		Name:   "steep_obtuse",
		Alpha:  deg(120),
		Width:  200,
		Height: 100,
		Want: []vec.Vec2{
			pt(100-50/math.Sqrt(3), 100),
			pt(0, 100),
			pt(0, 0),
			pt(100+50/math.Sqrt(3), 0),
		},
	},
	{
		// Both diagonal corners are hit; left and right take precedence
		// over top and bottom.
		Name:   "diagonal",
		Alpha:  math.Pi / 4,
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(0, 0), pt(0, 200), pt(200, 200), pt(200, 200)},
	},
}
