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
	"errors"
	"fmt"
)

// ErrNoSource is returned when a mirage is requested without a source
// image.
var ErrNoSource = errors.New("mirror: no source")

// ErrIllegalLine indicates that no clip polygon exists for the mirror
// line and the given bounds.  Errors of type [*IllegalLineError] match
// this value in [errors.Is].
var ErrIllegalLine = errors.New("mirror: illegal line")

// IllegalLineError describes a mirror line for which no clip polygon
// could be constructed.
type IllegalLineError struct {
	Alpha  float64
	Bounds Bounds

	// Edges names the pair of rectangle edges the line crosses, or is
	// empty if the line misses the rectangle.
	Edges string
}

func (err *IllegalLineError) Error() string {
	if err.Edges == "" {
		return fmt.Sprintf("mirror: illegal line: alpha=%g misses %dx%d",
			err.Alpha, err.Bounds.Width, err.Bounds.Height)
	}
	return fmt.Sprintf("mirror: illegal line: alpha=%g crossing %s of %dx%d",
		err.Alpha, err.Edges, err.Bounds.Width, err.Bounds.Height)
}

// Is makes errors.Is(err, ErrIllegalLine) succeed.
func (err *IllegalLineError) Is(target error) bool {
	return target == ErrIllegalLine
}
