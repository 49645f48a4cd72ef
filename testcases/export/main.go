// Command export writes all test cases, together with the clip polygons
// computed for them, to testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/mirror"
	"seehuhn.de/go/mirror/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name    string      `json:"name"`
	X       float64     `json:"x"`
	Y       float64     `json:"y"`
	Alpha   float64     `json:"alpha"`
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Illegal bool        `json:"illegal,omitempty"`
	Want    [][]float64 `json:"want,omitempty"`
	Got     [][]float64 `json:"got,omitempty"`
	Edges   string      `json:"edges,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:    category + "_" + tc.Name,
		X:       tc.X,
		Y:       tc.Y,
		Alpha:   tc.Alpha,
		Width:   tc.Width,
		Height:  tc.Height,
		Illegal: tc.Illegal(),
		Want:    pointsToJSON(tc.Want),
	}

	m := mirror.New(tc.X, tc.Y, tc.Alpha)
	poly, err := m.ClipPolygon(mirror.Bounds{Width: tc.Width, Height: tc.Height})
	var illegal *mirror.IllegalLineError
	switch {
	case errors.As(err, &illegal):
		jtc.Edges = illegal.Edges
	case err != nil:
		return jtc, err
	default:
		jtc.Got = pointsToJSON(poly)
	}
	return jtc, nil
}

func pointsToJSON(pts []vec.Vec2) [][]float64 {
	if pts == nil {
		return nil
	}
	res := make([][]float64, len(pts))
	for i, p := range pts {
		res[i] = []float64{p.X, p.Y}
	}
	return res
}
