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

// Package mirror draws the mirror image of a picture onto the picture
// itself.
//
// A [Mirror] is an infinite line, given by a reference point and an angle.
// The reference point is measured from the centre of the image, in pixels,
// with y pointing down.  The line splits the image into a real side and a
// mirrored side.  The mirage of an image is its reflection in the line;
// masked to the mirrored side and drawn over the original, it gives the
// impression that the real side is reflected in a mirror.
//
// The mirage can be computed for a whole image ([Mirror.FullMirage],
// [Mirror.MaskedMirage]), for single pixels given by their coordinates
// ([Mirror.DrawPoint]), or for single pixels given by their index in a
// flat pixel buffer ([Mirror.DrawIndex], [ReflectIndex]).
package mirror

import (
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/mirror/raster"
)

// Mirror is a mirror line together with the settings used to draw
// mirages.  The zero value is not usable; use [New].
//
// A Mirror caches the clip polygon and masks for the most recently used
// image size.  Changing the line discards the cache.
//
// A Mirror is not safe for concurrent use.  Use one Mirror per goroutine,
// or protect it with a lock.
type Mirror struct {
	x, y  float64
	alpha float64

	// UseMask restricts drawing to the mirrored side of the line.
	UseMask bool

	// Transparent leaves the background of a mirage transparent.  If it is
	// false, the mirage is drawn over Background.
	Transparent bool

	// Background is the colour behind the mirage when Transparent is false.
	Background color.Color

	// Transformer draws the reflected image.  Nil means
	// [draw.NearestNeighbor].
	Transformer draw.Transformer

	// Target is the image used by the methods without an explicit
	// destination, like [Mirror.DrawTarget].
	Target draw.Image

	tint Tint

	dirty bool
	cache maskCache
	ras   *raster.Rasteriser
}

// New returns a mirror through the point (x, y), relative to the image
// centre, at angle alpha (in radians).
func New(x, y, alpha float64) *Mirror {
	m := &Mirror{
		UseMask:     true,
		Transparent: true,
		Background:  color.Transparent,
		ras:         raster.NewRasteriser(rectOf(Bounds{})),
	}
	m.SetLine(x, y, alpha)
	return m
}

// X returns the horizontal position of the reference point.
func (m *Mirror) X() float64 {
	return m.x
}

// Y returns the vertical position of the reference point.
func (m *Mirror) Y() float64 {
	return m.y
}

// Alpha returns the angle of the line, in the range (-π, π].
func (m *Mirror) Alpha() float64 {
	return m.alpha
}

// SetX moves the reference point horizontally.
func (m *Mirror) SetX(x float64) {
	if x != m.x {
		m.x = x
		m.dirty = true
	}
}

// SetY moves the reference point vertically.
func (m *Mirror) SetY(y float64) {
	if y != m.y {
		m.y = y
		m.dirty = true
	}
}

// SetAlpha sets the angle of the line.  The angle is reduced to the range
// (-π, π].
func (m *Mirror) SetAlpha(alpha float64) {
	alpha = normalizeAngle(alpha)
	if alpha != m.alpha {
		m.alpha = alpha
		m.dirty = true
	}
}

// IncAlpha turns the line by delta radians about the reference point.
func (m *Mirror) IncAlpha(delta float64) {
	m.SetAlpha(m.alpha + delta)
}

// SetPosition moves the reference point.
func (m *Mirror) SetPosition(x, y float64) {
	m.SetX(x)
	m.SetY(y)
}

// SetLine sets reference point and angle.
func (m *Mirror) SetLine(x, y, alpha float64) {
	m.SetX(x)
	m.SetY(y)
	m.SetAlpha(alpha)
}

// Rotate turns the line by delta radians about the image centre.
// The reference point keeps its distance from the centre.
func (m *Mirror) Rotate(delta float64) {
	r := math.Hypot(m.x, m.y)
	sin, cos := math.Sincos(math.Atan2(m.y, m.x) + delta)
	m.SetLine(r*cos, r*sin, m.alpha+delta)
}

// normalizeAngle reduces alpha to the range (-π, π].
func normalizeAngle(alpha float64) float64 {
	alpha = math.Mod(alpha, 2*math.Pi)
	if alpha > math.Pi {
		alpha -= 2 * math.Pi
	} else if alpha <= -math.Pi {
		alpha += 2 * math.Pi
	}
	return alpha
}
