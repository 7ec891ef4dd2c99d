// Package fixtures loads test polygons from embedded SVG files rather than
// hand-writing coordinate literals in every test, the way the corpus's own
// fixture loader does. It is deliberately not a general SVG parser: a
// single-polygon fixture is one <polygon> element and nothing else; a
// scenario fixture is an outer <polygon>, zero or more hole <polygon>
// elements, and exactly one <line> carrying the cut segment endpoints as
// its x1/y1/x2/y2 attributes. Load panics unless the document holds exactly
// one <polygon>; LoadScenario panics unless it holds at least one <polygon>
// and exactly one <line>. Other elements are ignored.
package fixtures

import (
	"embed"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/wrenfield/polyslice/geom"
)

//go:embed fixtures
var files embed.FS

func open(name string) *svgparser.Element {
	f, err := files.Open("fixtures/" + name + ".svg")
	if err != nil {
		panic("fixtures: could not open " + name + ": " + err.Error())
	}
	defer f.Close()

	root, err := svgparser.Parse(f, true)
	if err != nil {
		panic("fixtures: could not parse " + name + ": " + err.Error())
	}
	return root
}

// Load reads the single-polygon fixture named name (without extension) and
// returns it as a CCW loop of points.
func Load(name string) []geom.Point {
	root := open(name)

	polygons := root.FindAll("polygon")
	if len(polygons) != 1 {
		panic("fixtures: expected exactly one <polygon> in " + name)
	}

	points := parsePoints(polygons[0].Attributes["points"])
	if !geom.IsCCW(points) {
		points = geom.Reverse(points)
	}
	return points
}

// LoadScenario reads a scenario fixture named name (without extension): its
// first <polygon> is the outer loop, any further <polygon> elements are
// holes, and its single <line> carries the cut segment. It returns them
// ready to hand straight to Slice, windings already normalized.
func LoadScenario(name string) (poly geom.PolygonWithHoles, cutStart, cutEnd geom.Point) {
	root := open(name)

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		panic("fixtures: expected at least one <polygon> in scenario " + name)
	}
	lines := root.FindAll("line")
	if len(lines) != 1 {
		panic("fixtures: expected exactly one <line> in scenario " + name)
	}

	poly.Outer = geom.EnsureWinding(parsePoints(polygons[0].Attributes["points"]), true)
	for _, hole := range polygons[1:] {
		poly.Holes = append(poly.Holes, geom.EnsureWinding(parsePoints(hole.Attributes["points"]), false))
	}

	cutStart, cutEnd = parseLine(lines[0].Attributes)
	return poly, cutStart, cutEnd
}

func parseLine(attrs map[string]string) (start, end geom.Point) {
	return geom.Point{X: parseFloat(attrs["x1"]), Y: parseFloat(attrs["y1"])},
		geom.Point{X: parseFloat(attrs["x2"]), Y: parseFloat(attrs["y2"])}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("fixtures: malformed coordinate " + s)
	}
	return v
}

func parsePoints(attr string) []geom.Point {
	fields := strings.Fields(attr)
	points := make([]geom.Point, 0, len(fields))
	for _, field := range fields {
		xy := strings.Split(field, ",")
		if len(xy) != 2 {
			panic("fixtures: malformed point " + field)
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			panic("fixtures: malformed x in " + field)
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			panic("fixtures: malformed y in " + field)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points
}
