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

import "image/color"

// Tint describes a colour wash applied to reflected pixels.
type Tint struct {
	Color   color.Color
	Opacity float64 // in [0, 1]
	Enabled bool
}

// Tint returns the current tint settings.
func (m *Mirror) Tint() Tint {
	return m.tint
}

// SetTint sets the tint colour and enables tinting.
func (m *Mirror) SetTint(c color.Color) {
	m.tint.Color = c
	m.tint.Enabled = true
}

// SetOpacity sets the tint opacity and enables tinting.
func (m *Mirror) SetOpacity(opacity float64) {
	m.tint.Opacity = max(0, min(1, opacity))
	m.tint.Enabled = true
}

// DisableTint switches tinting off.  Colour and opacity are kept.
func (m *Mirror) DisableTint() {
	m.tint.Enabled = false
}

// blend combines a reflected pixel with the pixel it replaces.
//
// TODO: mix in t.Color with weight t.Opacity once the colour space
// for blending is decided, and apply the same blend in [Mirror.Draw],
// which currently skips tinting.  For now the reflected pixel is used
// as is.
func (t Tint) blend(src, _ color.Color) color.Color {
	return src
}
