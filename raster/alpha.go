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

import "image"

// AlphaWriter returns an EmitFunc which stores coverage in dst,
// replacing the previous values.  Device pixel (x, y) corresponds to
// dst pixel (x, y) + dst.Rect.Min.
func AlphaWriter(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.PixOffset(dst.Rect.Min.X+xMin, dst.Rect.Min.Y+y)
		for i, c := range coverage {
			dst.Pix[row+i] = toByte(c)
		}
	}
}

// AlphaPainter returns an EmitFunc which paints coverage over the existing
// contents of dst, like a fill with an opaque colour.
func AlphaPainter(dst *image.Alpha) EmitFunc {
	return func(y, xMin int, coverage []float32) {
		row := dst.PixOffset(dst.Rect.Min.X+xMin, dst.Rect.Min.Y+y)
		for i, c := range coverage {
			old := uint32(dst.Pix[row+i])
			a := uint32(toByte(c))
			dst.Pix[row+i] = uint8(a + old*(255-a)/255)
		}
	}
}

// Complement returns a new image with every alpha value a replaced by
// 255-a.
func Complement(src *image.Alpha) *image.Alpha {
	dst := image.NewAlpha(src.Rect)
	w := src.Rect.Dx()
	for y := src.Rect.Min.Y; y < src.Rect.Max.Y; y++ {
		in := src.Pix[src.PixOffset(src.Rect.Min.X, y):][:w]
		out := dst.Pix[dst.PixOffset(dst.Rect.Min.X, y):][:w]
		for i, a := range in {
			out[i] = 255 - a
		}
	}
	return dst
}

// toByte converts coverage in [0, 1] to an alpha value.
func toByte(c float32) uint8 {
	return uint8(max(0, min(255, int(c*255+0.5))))
}
