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
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Transform returns the affine map which reflects an image of size b in
// the mirror line.  The map acts on pixel coordinates with the origin at
// the top-left corner of the image, and is its own inverse.
func (m *Mirror) Transform(b Bounds) matrix.Matrix {
	cx, cy := float64(b.Width/2), float64(b.Height/2)

	// The factors are listed in the order they are applied.
	return matrix.Translate(-cx, -cy).
		Mul(matrix.Translate(-m.x, -m.y)).
		Mul(matrix.Rotate(-m.alpha)).
		Mul(matrix.Scale(1, -1)).
		Mul(matrix.Rotate(m.alpha)).
		Mul(matrix.Translate(m.x, m.y)).
		Mul(matrix.Translate(cx, cy))
}

// FullMirage returns the reflection of src in the mirror line, covering
// the whole image.  Pixels which receive no data are transparent, or
// Background if Transparent is false.
func (m *Mirror) FullMirage(src image.Image) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	b := BoundsOf(src)
	dst := image.NewNRGBA(b.Rect())
	if !m.Transparent && m.Background != nil {
		draw.Draw(dst, dst.Rect, image.NewUniform(m.Background), image.Point{}, draw.Src)
	}

	tr := m.Transformer
	if tr == nil {
		tr = draw.NearestNeighbor
	}
	sr := src.Bounds()
	s2d := matrix.Translate(-float64(sr.Min.X), -float64(sr.Min.Y)).Mul(m.Transform(b))
	tr.Transform(dst, aff3(s2d), src, sr, draw.Over, nil)
	return dst, nil
}

// MaskedMirage returns the reflection of src, restricted to the mirrored
// side of the line.  The mask cache is rebound to the size of src.
// If UseMask is false, the full mirage is returned.
func (m *Mirror) MaskedMirage(src image.Image) (*image.NRGBA, error) {
	full, err := m.FullMirage(src)
	if err != nil || !m.UseMask {
		return full, err
	}
	mask, err := m.Mask(BoundsOf(src), true)
	if err != nil {
		return nil, err
	}
	return applyMask(full, mask), nil
}

// MaskedMirageShape returns the reflection of src, restricted to the
// given shape.  The shape is in pixel coordinates and is filled with the
// nonzero winding rule.  The mask cache is not used.
func (m *Mirror) MaskedMirageShape(src image.Image, shape *path.Data) (*image.NRGBA, error) {
	full, err := m.FullMirage(src)
	if err != nil {
		return nil, err
	}
	return applyMask(full, m.ShapeMask(BoundsOf(src), shape)), nil
}

// Draw replaces the mirrored side of dst by the reflection of the real
// side.
func (m *Mirror) Draw(dst draw.Image) error {
	if dst == nil {
		return ErrNoSource
	}
	mirage, err := m.MaskedMirage(dst)
	if err != nil {
		return err
	}
	draw.Draw(dst, dst.Bounds(), mirage, image.Point{}, draw.Over)
	return nil
}

// DrawTarget is like [Mirror.Draw], but uses m.Target.
func (m *Mirror) DrawTarget() error {
	if m.Target == nil {
		return ErrNoSource
	}
	return m.Draw(m.Target)
}

func applyMask(full *image.NRGBA, mask *image.Alpha) *image.NRGBA {
	res := image.NewNRGBA(full.Rect)
	draw.DrawMask(res, res.Rect, full, full.Rect.Min, mask, mask.Rect.Min, draw.Src)
	return res
}

// aff3 converts M to the row-major layout used by x/image/draw.
func aff3(M matrix.Matrix) f64.Aff3 {
	return f64.Aff3{M[0], M[2], M[4], M[1], M[3], M[5]}
}

