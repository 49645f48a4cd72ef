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

import "seehuhn.de/go/geom/vec"

// Lines which cut off one corner of the rectangle.
var cornerCases = []TestCase{
	{
		Name:   "top_left",
		X:      -80,
		Y:      -80,
		Alpha:  deg(135),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(0, 40), pt(0, 0), pt(40, 0)},
	},
	{
		Name:   "top_left_reversed",
		X:      -80,
		Y:      -80,
		Alpha:  deg(-45),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(40, 0), pt(200, 0), pt(200, 200), pt(0, 200), pt(0, 40)},
	},
	{
		Name:   "bottom_left",
		X:      -80,
		Y:      80,
		Alpha:  deg(45),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(0, 160), pt(0, 200), pt(40, 200)},
	},
	{
		Name:   "bottom_left_reversed",
		X:      -80,
		Y:      80,
		Alpha:  deg(-135),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(0, 160), pt(0, 0), pt(200, 0), pt(200, 200), pt(40, 200)},
	},
	{
		Name:   "top_right",
		X:      80,
		Y:      -80,
		Alpha:  deg(-135),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(160, 0), pt(200, 0), pt(200, 40)},
	},
	{
		Name:   "top_right_reversed",
		X:      80,
		Y:      -80,
		Alpha:  deg(45),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(200, 40), pt(200, 200), pt(0, 200), pt(0, 0), pt(160, 0)},
	},
	{
		Name:   "bottom_right",
		X:      80,
		Y:      80,
		Alpha:  deg(-45),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(200, 160), pt(200, 200), pt(160, 200)},
	},
	{
		Name:   "bottom_right_reversed",
		X:      80,
		Y:      80,
		Alpha:  deg(135),
		Width:  200,
		Height: 200,
		Want:   []vec.Vec2{pt(160, 200), pt(0, 200), pt(0, 0), pt(200, 0), pt(200, 160)},
	},
}
