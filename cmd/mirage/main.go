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

// Command mirage reflects an image in a mirror line.
//
// Usage:
//
//	mirage [flags] INPUT OUTPUT
//
// The mirror line passes through the point given by -x and -y, measured
// in pixels from the image centre with y pointing down, at the angle
// given by --angle.  By default, the part of the image on the mirrored
// side of the line is replaced by the reflection of the other side.
// PNG and TIFF files are supported, chosen by file name extension.
package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/raster"
)

type options struct {
	x, y, angle float64

	full      bool
	composite bool
	mask      bool
	inverse   bool

	lineWidth float64
	lineCap   string
	interp    string
	verbose   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	cmd := &cobra.Command{
		Use:          "mirage [flags] INPUT OUTPUT",
		Short:        "Reflect an image in a mirror line",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&opt.x, "x", "x", 0, "reference x relative to the centre")
	f.Float64VarP(&opt.y, "y", "y", 0, "reference y relative to the centre")
	f.Float64VarP(&opt.angle, "angle", "a", 0, "mirror angle in degrees")
	f.BoolVar(&opt.full, "full", false, "write the unmasked mirage")
	f.BoolVar(&opt.composite, "composite", true, "draw the mirage over the input")
	f.BoolVar(&opt.mask, "mask", false, "write the mask instead of an image")
	f.BoolVar(&opt.inverse, "inverse", false, "with --mask, write the inverse mask")
	f.Float64Var(&opt.lineWidth, "line-width", 0, "overlay the mirror line with this width (0 = off)")
	f.StringVar(&opt.lineCap, "cap", "butt", "line cap for the overlay: butt|round|square")
	f.StringVar(&opt.interp, "interp", "nearest", "nearest|bilinear|catmullrom")
	f.BoolVarP(&opt.verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.MarkFlagsMutuallyExclusive("full", "mask")

	return cmd
}

func run(opt *options, inName, outName string) error {
	if opt.verbose {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		mirror.SetLogger(slog.New(h))
	}

	transformer, err := parseInterp(opt.interp)
	if err != nil {
		return err
	}
	lineCap, err := parseCap(opt.lineCap)
	if err != nil {
		return err
	}

	src, err := readImage(inName)
	if err != nil {
		return err
	}
	b := mirror.BoundsOf(src)

	m := mirror.New(opt.x, opt.y, opt.angle*math.Pi/180)
	m.Transformer = transformer

	var out draw.Image
	switch {
	case opt.mask:
		var mask *image.Alpha
		if opt.inverse {
			mask, err = m.InverseMask(b, true)
		} else {
			mask, err = m.Mask(b, true)
		}
		if err != nil {
			return err
		}
		// the cached mask must not be modified
		out = image.NewAlpha(mask.Rect)
		draw.Draw(out, mask.Rect, mask, image.Point{}, draw.Src)
	case opt.full:
		out, err = m.FullMirage(src)
		if err != nil {
			return err
		}
	case opt.composite:
		img := image.NewNRGBA(b.Rect())
		draw.Draw(img, img.Rect, src, src.Bounds().Min, draw.Src)
		if err := m.Draw(img); err != nil {
			return err
		}
		out = img
	default:
		out, err = m.MaskedMirage(src)
		if err != nil {
			return err
		}
	}

	if opt.lineWidth > 0 {
		drawLine(out, m, opt.lineWidth, lineCap)
	}

	return writeImage(outName, out)
}

// drawLine paints the mirror line over img.
func drawLine(img draw.Image, m *mirror.Mirror, width float64, lineCap graphics.LineCapStyle) {
	b := mirror.BoundsOf(img)
	r := raster.NewRasteriser(rect.Rect{URx: float64(b.Width), URy: float64(b.Height)})
	r.Width = width
	r.Cap = lineCap

	// The segment is long enough to cross the whole image.  The
	// rasteriser clips it.
	p0 := vec.Vec2{X: float64(b.Width/2) + m.X(), Y: float64(b.Height/2) + m.Y()}
	sin, cos := math.Sincos(m.Alpha())
	dir := vec.Vec2{X: cos, Y: sin}.Mul(float64(b.Width + b.Height))
	a, z := p0.Sub(dir), p0.Add(dir)

	if alpha, ok := img.(*image.Alpha); ok {
		r.StrokeSegment(a, z, raster.AlphaPainter(alpha))
		return
	}

	line := image.NewAlpha(b.Rect())
	r.StrokeSegment(a, z, raster.AlphaWriter(line))
	ink := image.NewUniform(color.NRGBA{R: 255, A: 255})
	draw.DrawMask(img, img.Bounds(), ink, image.Point{}, line, image.Point{}, draw.Over)
}

func parseInterp(name string) (draw.Transformer, error) {
	switch name {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("unknown interpolator %q", name)
}

func parseCap(name string) (graphics.LineCapStyle, error) {
	switch name {
	case "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap %q", name)
}

var errFormat = errors.New("unsupported file format")

func readImage(fname string) (img image.Image, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext(fname) {
	case ".png":
		img, err = png.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("%s: %w", fname, errFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

func writeImage(fname string, img image.Image) (err error) {
	format := ext(fname)
	if format != ".png" && format != ".tif" && format != ".tiff" {
		return fmt.Errorf("%s: %w", fname, errFormat)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == ".png" {
		err = png.Encode(f, img)
	} else {
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

func ext(fname string) string {
	return strings.ToLower(filepath.Ext(fname))
}
