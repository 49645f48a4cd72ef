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
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testLines avoids vertical lines, where the reflection formula loses
// precision.
var testLines = []struct{ x, y, alpha float64 }{
	{0, 0, 0},
	{0, 20, 0},
	{10, -5, 0.3},
	{-30, 12, -1.1},
	{5, 5, 2.2},
	{-8, 40, -2.7},
	{0, 0, math.Pi},
}

func TestReflectInvolution(t *testing.T) {
	for _, l := range testLines {
		m := New(l.x, l.y, l.alpha)
		for _, p := range [][2]float64{{0, 0}, {13, -7}, {-50, 25}, {100, 100}} {
			rx, ry := m.Reflect(p[0], p[1])
			qx, qy := m.Reflect(rx, ry)
			assert.InDelta(t, p[0], qx, 1e-9, "line %v, point %v", l, p)
			assert.InDelta(t, p[1], qy, 1e-9, "line %v, point %v", l, p)
		}
	}
}

func TestReflectFixesLine(t *testing.T) {
	for _, l := range testLines {
		m := New(l.x, l.y, l.alpha)
		sin, cos := math.Sincos(m.Alpha())
		for _, s := range []float64{-20, 0, 3.5, 70} {
			px, py := l.x+s*cos, l.y+s*sin
			rx, ry := m.Reflect(px, py)
			assert.InDelta(t, px, rx, 1e-9)
			assert.InDelta(t, py, ry, 1e-9)
		}
	}
}

// TestSides checks that reflection swaps the real and the mirrored side.
func TestSides(t *testing.T) {
	for _, l := range testLines {
		m := New(l.x, l.y, l.alpha)
		sin, cos := math.Sincos(m.Alpha())
		for px := -60.0; px <= 60; px += 7 {
			for py := -60.0; py <= 60; py += 7 {
				// signed distance from the line
				dist := (py-l.y)*cos - (px-l.x)*sin
				if math.Abs(dist) < 1e-6 {
					continue
				}
				rx, ry := m.Reflect(px, py)
				assert.NotEqual(t, m.Contains(px, py), m.Contains(rx, ry),
					"line %v, point (%g,%g)", l, px, py)
			}
		}
	}
}

func TestContainsVertical(t *testing.T) {
	cases := []struct {
		alpha float64
		px    float64
		want  bool
	}{
		{math.Pi / 2, 49, true},
		{math.Pi / 2, 50, true},
		{math.Pi / 2, 51, false},
		{-math.Pi / 2, 49, false},
		{-math.Pi / 2, 50, true},
		{-math.Pi / 2, 51, true},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%.2f_%g", c.alpha, c.px), func(t *testing.T) {
			m := New(50, 0, c.alpha)
			assert.Equal(t, c.want, m.Contains(c.px, 1000))
		})
	}
}

func TestContainsHorizontal(t *testing.T) {
	m := New(0, 20, 0)
	assert.True(t, m.Contains(0, 21))
	assert.True(t, m.Contains(-100, 20))
	assert.False(t, m.Contains(0, 19))

	// turning the line around swaps the sides
	m.SetAlpha(math.Pi)
	assert.False(t, m.Contains(0, 21))
	assert.True(t, m.Contains(0, 19))
}
