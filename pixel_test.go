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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestGray(r image.Rectangle) *image.Gray {
	img := image.NewGray(r)
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}
	return img
}

// TestDrawIndexOutside checks that reflections landing outside the
// image are skipped.
func TestDrawIndexOutside(t *testing.T) {
	img := newTestGray(image.Rect(0, 0, 50, 50))
	orig := slices.Clone(img.Pix)

	m := New(0, 20, 0)
	m.UseMask = false

	// row 0 reflects to row 90
	for i := range 50 {
		m.DrawIndex(img, i)
	}
	m.DrawIndex(img, -1)
	m.DrawIndex(img, 2500)
	assert.Equal(t, orig, img.Pix)

	// row 46 reflects to row 44
	m.DrawIndex(img, 46*50+3)
	assert.Equal(t, orig[44*50+3], img.Pix[46*50+3])

	pix := slices.Clone(orig)
	for i := range 50 {
		ReflectIndex(m, pix, 50, 50, i)
	}
	ReflectIndex(m, pix, 50, 50, -1)
	ReflectIndex(m, pix, 50, 50, 2500)
	assert.Equal(t, orig, pix)
}

func TestDrawIndex(t *testing.T) {
	img := newTestGray(image.Rect(0, 0, 4, 4))
	orig := slices.Clone(img.Pix)
	m := New(0, 0, 0)

	for i := range 16 {
		m.DrawIndex(img, i)
	}

	// rows 0 and 1 are on the real side, row 2 is on the line
	assert.Equal(t, orig[:12], img.Pix[:12])
	assert.Equal(t, orig[4:8], img.Pix[12:])
}

func TestReflectIndex(t *testing.T) {
	pix := make([]uint32, 16)
	for i := range pix {
		pix[i] = 0xff000000 | uint32(i)
	}
	orig := slices.Clone(pix)
	m := New(0, 0, 0)

	for i := range pix {
		ReflectIndex(m, pix, 4, 4, i)
	}
	assert.Equal(t, orig[:12], pix[:12])
	assert.Equal(t, orig[4:8], pix[12:])

	// a short buffer is never indexed out of range
	short := slices.Clone(orig[:10])
	for i := range 16 {
		ReflectIndex(m, short, 4, 4, i)
	}
	assert.Equal(t, orig[:10], short)
}

func TestDrawPoint(t *testing.T) {
	r := image.Rect(5, 5, 9, 9)
	img := newTestGray(r)
	orig := newTestGray(r)
	m := New(0, 0, 0)

	for vy := -2.0; vy < 2; vy++ {
		for vx := -2.0; vx < 2; vx++ {
			m.DrawPoint(img, vx, vy)
		}
	}
	for x := 5; x < 9; x++ {
		assert.Equal(t, orig.GrayAt(x, 5), img.GrayAt(x, 5))
		assert.Equal(t, orig.GrayAt(x, 6), img.GrayAt(x, 6))
		assert.Equal(t, orig.GrayAt(x, 7), img.GrayAt(x, 7))
		assert.Equal(t, orig.GrayAt(x, 6), img.GrayAt(x, 8))
	}

	// points outside the image are ignored
	m.UseMask = false
	m.DrawPoint(img, 10, 10)
	m.DrawPoint(img, 0, -10)
}

func TestTargetForms(t *testing.T) {
	m := New(0, 0, 0)
	m.DrawPointTarget(0, 1)
	m.DrawIndexTarget(13)

	img := newTestGray(image.Rect(0, 0, 4, 4))
	m.Target = img
	m.DrawIndexTarget(13)
	assert.Equal(t, uint8(5), img.Pix[13])

	m.DrawPointTarget(-2, 1)
	assert.Equal(t, uint8(4), img.Pix[12])
}

func TestTint(t *testing.T) {
	m := New(0, 0, 0)
	m.SetTint(color.Gray{Y: 100})
	m.SetOpacity(2)
	tint := m.Tint()
	assert.True(t, tint.Enabled)
	assert.Equal(t, 1.0, tint.Opacity)
	assert.Equal(t, color.Gray{Y: 100}, tint.Color)

	img := newTestGray(image.Rect(0, 0, 4, 4))
	m.DrawIndex(img, 13)
	assert.Equal(t, uint8(5), img.Pix[13])

	m.DisableTint()
	assert.False(t, m.Tint().Enabled)
	assert.Equal(t, color.Gray{Y: 100}, m.Tint().Color)
}
