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
	"math"

	"golang.org/x/image/draw"
)

// DrawPoint reflects a single pixel of dst.  The pixel is given in
// coordinates relative to the image centre.  If UseMask is set and the
// point is on the real side of the line, nothing is drawn.  Otherwise the
// pixel is replaced by the pixel at the reflected position.  Points which
// fall outside the image are ignored.
func (m *Mirror) DrawPoint(dst draw.Image, vx, vy float64) {
	if m.UseMask && !m.Contains(vx, vy) {
		return
	}
	r := dst.Bounds()
	w, h := r.Dx(), r.Dy()

	rx, ry := m.Reflect(vx, vy)
	dx, dy := pixelOf(vx, w), pixelOf(vy, h)
	sx, sy := pixelOf(rx, w), pixelOf(ry, h)
	if !inImage(dx, dy, w, h) || !inImage(sx, sy, w, h) {
		return
	}

	c := dst.At(r.Min.X+sx, r.Min.Y+sy)
	if m.tint.Enabled {
		c = m.tint.blend(c, dst.At(r.Min.X+dx, r.Min.Y+dy))
	}
	dst.Set(r.Min.X+dx, r.Min.Y+dy, c)
}

// DrawIndex reflects the pixel with index i of dst, where pixels are
// numbered row by row starting from the top-left corner.  Reflections
// which land outside the image are ignored.
func (m *Mirror) DrawIndex(dst draw.Image, i int) {
	r := dst.Bounds()
	w, h := r.Dx(), r.Dy()
	j, ok := m.sourceIndex(w, h, i)
	if !ok {
		return
	}

	c := dst.At(r.Min.X+j%w, r.Min.Y+j/w)
	if m.tint.Enabled {
		c = m.tint.blend(c, dst.At(r.Min.X+i%w, r.Min.Y+i/w))
	}
	dst.Set(r.Min.X+i%w, r.Min.Y+i/w, c)
}

// DrawPointTarget is like [Mirror.DrawPoint], but draws on m.Target.
// Nothing happens if Target is nil.
func (m *Mirror) DrawPointTarget(vx, vy float64) {
	if m.Target != nil {
		m.DrawPoint(m.Target, vx, vy)
	}
}

// DrawIndexTarget is like [Mirror.DrawIndex], but draws on m.Target.
// Nothing happens if Target is nil.
func (m *Mirror) DrawIndexTarget(i int) {
	if m.Target != nil {
		m.DrawIndex(m.Target, i)
	}
}

// ReflectIndex reflects entry i of a flat pixel buffer holding an image of
// the given size, row by row.  Pixel values are copied without tinting.
// Reflections which land outside the buffer are ignored.
func ReflectIndex[P any](m *Mirror, pix []P, width, height, i int) {
	if i >= len(pix) {
		return
	}
	j, ok := m.sourceIndex(width, height, i)
	if !ok || j >= len(pix) {
		return
	}
	pix[i] = pix[j]
}

// sourceIndex returns the index of the pixel which is reflected onto
// pixel i of a w×h image.  The second return value is false if pixel i is
// not drawn.
func (m *Mirror) sourceIndex(w, h, i int) (int, bool) {
	n := w * h
	if w <= 0 || i < 0 || i >= n {
		return 0, false
	}
	px := i % w
	py := (i - px) / w
	vx := float64(px - w/2)
	vy := float64(py - h/2)
	if m.UseMask && !m.Contains(vx, vy) {
		return 0, false
	}

	rx, ry := m.Reflect(vx, vy)
	j := pixelOf(ry, h)*w + pixelOf(rx, w)
	if j < 0 || j >= n {
		return 0, false
	}
	return j, true
}

// pixelOf converts a coordinate relative to the image centre into a pixel
// column or row.
func pixelOf(v float64, size int) int {
	return int(math.Floor(float64(size/2) + v + 0.5))
}

func inImage(x, y, w, h int) bool {
	return x >= 0 && x < w && y >= 0 && y < h
}
