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

// Command genpdf generates reference images for the mask tests.
//
// For every legal test case, the expected clip polygon is filled in white
// on black and rendered to testdata/reference/NAME.png using Ghostscript.
// A second file, testdata/overview/NAME.pdf, shows the polygon together
// with the image outline and the mirror line, for visual review.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/mirror/testcases"
)

const (
	refDir      = "testdata/reference"
	overviewDir = "testdata/overview"
)

func main() {
	for _, dir := range []string{refDir, overviewDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if tc.Illegal() {
				continue
			}
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generateMask(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generateOverview(tc, filepath.Join(overviewDir, name+".pdf")); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

// generateMask writes a page which shows the clip polygon as coverage:
// white inside, black outside.
func generateMask(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.MoveTo(tc.Want[0].X, tc.Want[0].Y)
	for _, v := range tc.Want[1:] {
		page.LineTo(v.X, v.Y)
	}
	page.ClosePath()
	page.Fill()

	return page.Close()
}

// generateOverview writes a page with the clip polygon in grey, the image
// outline and the mirror line.
func generateOverview(tc testcases.TestCase, pdfPath string) error {
	w, h := float64(tc.Width), float64(tc.Height)
	page, err := document.CreateSinglePage(pdfPath, &pdf.Rectangle{URx: w, URy: h}, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})

	page.SetFillColor(color.DeviceGray(0.4))
	page.MoveTo(tc.Want[0].X, tc.Want[0].Y)
	for _, v := range tc.Want[1:] {
		page.LineTo(v.X, v.Y)
	}
	page.ClosePath()
	page.Fill()

	page.SetLineWidth(2)
	page.SetStrokeColor(color.DeviceGray(1))
	page.Rectangle(1, 1, w-2, h-2)
	page.Stroke()

	// the reference point, in pixel coordinates
	p0 := vec.Vec2{X: float64(tc.Width/2) + tc.X, Y: float64(tc.Height/2) + tc.Y}
	sin, cos := math.Sincos(tc.Alpha)
	dir := vec.Vec2{X: cos, Y: sin}.Mul(w + h)
	a, b := p0.Sub(dir), p0.Add(dir)

	page.SetLineWidth(1)
	page.SetLineCap(graphics.LineCapRound)
	page.SetStrokeColor(color.DeviceGray(0.8))
	page.MoveTo(a.X, a.Y)
	page.LineTo(b.X, b.Y)
	page.Stroke()

	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(p0.X-2, p0.Y-2, 4, 4)
	page.Fill()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
