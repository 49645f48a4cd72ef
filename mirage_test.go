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
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// newTestImage returns an opaque image where every pixel has a
// different colour.
func newTestImage(r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(30 * (x - r.Min.X)),
				G: uint8(30 * (y - r.Min.Y)),
				B: 7,
				A: 255,
			})
		}
	}
	return img
}

func TestNoSource(t *testing.T) {
	m := New(0, 0, 0)

	_, err := m.FullMirage(nil)
	assert.ErrorIs(t, err, ErrNoSource)
	_, err = m.MaskedMirage(nil)
	assert.ErrorIs(t, err, ErrNoSource)
	_, err = m.MaskedMirageShape(nil, &path.Data{})
	assert.ErrorIs(t, err, ErrNoSource)
	assert.ErrorIs(t, m.Draw(nil), ErrNoSource)
	assert.ErrorIs(t, m.DrawTarget(), ErrNoSource)
}

func TestFullMirageHorizontal(t *testing.T) {
	src := newTestImage(image.Rect(10, 20, 16, 24))
	m := New(0, 0, 0)

	dst, err := m.FullMirage(src)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 6, 4), dst.Rect)

	for y := range 4 {
		for x := range 6 {
			assert.Equal(t, src.NRGBAAt(10+x, 23-y), dst.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFullMirageVertical(t *testing.T) {
	src := newTestImage(image.Rect(0, 0, 6, 4))
	m := New(0, 0, math.Pi/2)

	dst, err := m.FullMirage(src)
	require.NoError(t, err)
	for y := range 4 {
		for x := range 6 {
			assert.Equal(t, src.NRGBAAt(5-x, y), dst.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestFullMirageBackground(t *testing.T) {
	src := newTestImage(image.Rect(0, 0, 4, 4))
	red := color.NRGBA{R: 255, A: 255}

	// The line is at row 3, so rows 0 and 1 have no source pixels.
	m := New(0, 1, 0)
	dst, err := m.FullMirage(src)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(2, 0))
	assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(2, 1))

	m.Transparent = false
	m.Background = red
	dst, err = m.FullMirage(src)
	require.NoError(t, err)
	for x := range 4 {
		assert.Equal(t, red, dst.NRGBAAt(x, 0))
		assert.Equal(t, red, dst.NRGBAAt(x, 1))
		assert.Equal(t, src.NRGBAAt(x, 3), dst.NRGBAAt(x, 2))
		assert.Equal(t, src.NRGBAAt(x, 2), dst.NRGBAAt(x, 3))
	}
}

func TestMaskedMirage(t *testing.T) {
	src := newTestImage(image.Rect(0, 0, 4, 4))
	m := New(0, 0, 0)

	dst, err := m.MaskedMirage(src)
	require.NoError(t, err)
	for x := range 4 {
		assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(x, 0))
		assert.Equal(t, color.NRGBA{}, dst.NRGBAAt(x, 1))
		assert.Equal(t, src.NRGBAAt(x, 1), dst.NRGBAAt(x, 2))
		assert.Equal(t, src.NRGBAAt(x, 0), dst.NRGBAAt(x, 3))
	}

	m.UseMask = false
	full, err := m.FullMirage(src)
	require.NoError(t, err)
	unmasked, err := m.MaskedMirage(src)
	require.NoError(t, err)
	assert.Equal(t, full.Pix, unmasked.Pix)
}

func TestMaskedMirageShape(t *testing.T) {
	src := newTestImage(image.Rect(0, 0, 4, 4))
	m := New(0, 0, 0)
	left := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 0}).
		LineTo(vec.Vec2{X: 2, Y: 4}).
		LineTo(vec.Vec2{X: 0, Y: 4}).
		Close()

	full, err := m.FullMirage(src)
	require.NoError(t, err)
	dst, err := m.MaskedMirageShape(src, left)
	require.NoError(t, err)
	for y := range 4 {
		for x := range 4 {
			want := color.NRGBA{}
			if x < 2 {
				want = full.NRGBAAt(x, y)
			}
			assert.Equal(t, want, dst.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.True(t, m.cache.bounds.IsZero())
}

func TestDraw(t *testing.T) {
	orig := newTestImage(image.Rect(0, 0, 4, 4))
	img := newTestImage(image.Rect(0, 0, 4, 4))
	m := New(0, 0, 0)
	m.SetTint(color.White)

	require.NoError(t, m.Draw(img))
	for x := range 4 {
		assert.Equal(t, orig.NRGBAAt(x, 0), img.NRGBAAt(x, 0))
		assert.Equal(t, orig.NRGBAAt(x, 1), img.NRGBAAt(x, 1))
		assert.Equal(t, orig.NRGBAAt(x, 1), img.NRGBAAt(x, 2))
		assert.Equal(t, orig.NRGBAAt(x, 0), img.NRGBAAt(x, 3))
	}

	target := newTestImage(image.Rect(0, 0, 4, 4))
	m.Target = target
	require.NoError(t, m.DrawTarget())
	assert.Equal(t, img.Pix, target.Pix)
}

func TestDrawTint(t *testing.T) {
	plain := newTestImage(image.Rect(0, 0, 5, 6))
	require.NoError(t, New(0.5, 0, 0.3).Draw(plain))

	tinted := newTestImage(image.Rect(0, 0, 5, 6))
	m := New(0.5, 0, 0.3)
	m.SetTint(color.NRGBA{R: 255, A: 255})
	m.SetOpacity(0.5)
	require.NoError(t, m.Draw(tinted))
	assert.Equal(t, plain.Pix, tinted.Pix)
}

func TestDrawIllegalLine(t *testing.T) {
	img := newTestImage(image.Rect(0, 0, 4, 4))
	m := New(0, 100, 0)
	assert.ErrorIs(t, m.Draw(img), ErrIllegalLine)
}

func TestTransformMatchesReflect(t *testing.T) {
	b := Bounds{Width: 60, Height: 40}
	for _, l := range testLines {
		m := New(l.x, l.y, l.alpha)
		M := m.Transform(b)
		for _, p := range []vec.Vec2{{X: 0, Y: 0}, {X: 12.5, Y: 3}, {X: 60, Y: 40}, {X: -7, Y: 55}} {
			rx, ry := m.Reflect(p.X-30, p.Y-20)
			gx := M[0]*p.X + M[2]*p.Y + M[4]
			gy := M[1]*p.X + M[3]*p.Y + M[5]
			assert.InDelta(t, rx+30, gx, 1e-9, "line %v, point %v", l, p)
			assert.InDelta(t, ry+20, gy, 1e-9, "line %v, point %v", l, p)
		}
	}
}

func TestTransformInvolution(t *testing.T) {
	for _, alpha := range []float64{0, 0.7, math.Pi / 2, -2} {
		m := New(5, -3, alpha)
		M := m.Transform(Bounds{Width: 9, Height: 7})
		MM := M.Mul(M)
		for i := range MM {
			assert.InDelta(t, matrix.Identity[i], MM[i], 1e-9, "alpha=%g, entry %d", alpha, i)
		}
	}
}

func TestTransformHorizontal(t *testing.T) {
	// y is reflected in the centre row, x is unchanged
	M := New(0, 0, 0).Transform(Bounds{Width: 9, Height: 7})
	want := matrix.Matrix{1, 0, 0, -1, 0, 6}
	for i := range want {
		assert.InDelta(t, want[i], M[i], 1e-9, "entry %d", i)
	}

	// a reference point below the centre moves the axis down
	M = New(0, 1, 0).Transform(Bounds{Width: 9, Height: 7})
	want = matrix.Matrix{1, 0, 0, -1, 0, 8}
	for i := range want {
		assert.InDelta(t, want[i], M[i], 1e-9, "entry %d", i)
	}
}
