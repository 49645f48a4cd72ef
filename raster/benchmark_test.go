package raster

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var benchSizes = []int{20, 200, 2000}

// benchPolygon is a clip polygon for a steep line, as used for masks.
func benchPolygon(size int) []vec.Vec2 {
	s := float64(size)
	return []vec.Vec2{{X: 0.3 * s, Y: 0}, {X: s, Y: 0}, {X: s, Y: s}, {X: 0.6 * s, Y: s}}
}

func BenchmarkFillPolygon(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			emit := AlphaWriter(dst)
			poly := benchPolygon(size)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillPolygon(poly, emit)
			}
		})
	}
}

func BenchmarkVectorPolygon(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			poly := benchPolygon(size)

			b.ReportAllocs()
			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
				for _, v := range poly[1:] {
					z.LineTo(float32(v.X), float32(v.Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillEvenOddO fills an "O" shape, to exercise curve flattening.
func BenchmarkFillEvenOddO(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasteriser(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			emit := AlphaWriter(dst)

			c := float64(size) / 2
			p := &path.Data{}
			addCircle(p, c, c, float64(size)*0.45, false)
			addCircle(p, c, c, float64(size)*0.30, true)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillEvenOdd(p, emit)
			}
		})
	}
}

// addCircle appends a circle made from four cubic Bézier curves.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) {
	const k = 0.5522847498
	kr := k * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p.CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy))
		p.CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r))
		p.CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy))
		p.CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p.CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy))
		p.CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r))
		p.CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy))
		p.CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	p.Close()
}
