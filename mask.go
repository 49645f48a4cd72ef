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

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/mirror/raster"
)

// maskCache holds the clip polygon and masks for one image size.
// Entries are computed on demand.
type maskCache struct {
	bounds Bounds
	poly   Polygon
	mask   *image.Alpha
	inv    *image.Alpha
}

// Reset discards all cached geometry, including the cached image size.
func (m *Mirror) Reset() {
	m.cache = maskCache{}
	m.dirty = false
}

// revalidate drops the cached geometry, including the cached image size,
// if the line has changed.
func (m *Mirror) revalidate() {
	if m.dirty {
		Logger().Debug("mirror: line changed, dropping cached masks",
			"x", m.x, "y", m.y, "alpha", m.alpha)
		m.cache = maskCache{}
		m.dirty = false
	}
}

// keep reports whether results for b are to be stored in the cache.  A
// blank cache adopts b.  If reset is set, the cache is rebound to b.
func (m *Mirror) keep(b Bounds, reset bool) bool {
	if m.cache.bounds.IsZero() {
		m.cache.bounds = b
	}
	if b == m.cache.bounds {
		return true
	}
	if !reset {
		return false
	}
	Logger().Debug("mirror: rebinding mask cache",
		"width", b.Width, "height", b.Height)
	m.cache = maskCache{bounds: b}
	return true
}

// Polygon returns the clip polygon for an image of size b.  The result is
// cached if b is the cached image size; see [Mirror.Mask] for the cache
// rules.
func (m *Mirror) Polygon(b Bounds) (Polygon, error) {
	m.revalidate()
	if b == m.cache.bounds && m.cache.poly != nil {
		return m.cache.poly, nil
	}
	poly, err := m.ClipPolygon(b)
	if err != nil {
		return nil, err
	}
	if m.keep(b, false) {
		m.cache.poly = poly
	}
	return poly, nil
}

// Mask returns an alpha mask of size b which is opaque on the mirrored
// side of the line and transparent on the real side.  Edge pixels are
// antialiased.
//
// The mask is cached for one image size.  If b differs from the cached
// size, the mask is computed without touching the cache, unless reset is
// set; in this case the cache is rebound to b.  The returned image is
// shared with the cache and must not be modified.
func (m *Mirror) Mask(b Bounds, reset bool) (*image.Alpha, error) {
	m.revalidate()
	if b == m.cache.bounds && m.cache.mask != nil {
		return m.cache.mask, nil
	}

	poly, err := m.Polygon(b)
	if err != nil {
		return nil, err
	}
	Logger().Debug("mirror: rasterising mask",
		"width", b.Width, "height", b.Height, "vertices", len(poly))
	mask := m.rasterise(b, func(emit raster.EmitFunc) {
		m.ras.FillPolygon(poly, emit)
	})

	if m.keep(b, reset) {
		m.cache.poly = poly
		m.cache.mask = mask
	}
	return mask, nil
}

// InverseMask returns the complement of [Mirror.Mask]: opaque on the real
// side of the line.  Caching follows the same rules as for Mask.
func (m *Mirror) InverseMask(b Bounds, reset bool) (*image.Alpha, error) {
	m.revalidate()
	if b == m.cache.bounds && m.cache.inv != nil {
		return m.cache.inv, nil
	}

	mask, err := m.Mask(b, reset)
	if err != nil {
		return nil, err
	}
	inv := raster.Complement(mask)
	if b == m.cache.bounds {
		m.cache.inv = inv
	}
	return inv, nil
}

// ShapeMask rasterises an arbitrary shape into a new mask of size b,
// using the nonzero winding rule.  The cache is not used.
func (m *Mirror) ShapeMask(b Bounds, shape *path.Data) *image.Alpha {
	return m.rasterise(b, func(emit raster.EmitFunc) {
		m.ras.FillNonZero(shape, emit)
	})
}

func (m *Mirror) rasterise(b Bounds, fill func(raster.EmitFunc)) *image.Alpha {
	mask := image.NewAlpha(b.Rect())
	m.ras.Reset(rectOf(b))
	fill(raster.AlphaWriter(mask))
	return mask
}
