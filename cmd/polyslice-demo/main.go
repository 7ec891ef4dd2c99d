// Command polyslice-demo cuts a polygon and renders the resulting fragments
// to a PNG, for eyeballing the pipeline the way the teacher's own
// dbgDraw helper renders a PolygonList while debugging ear clipping.
//
// Input on stdin is newline-separated "x y" points, blocks separated by a
// blank line: the first block is the two-point cut segment, the second is
// the outer loop, and any further blocks are hole loops.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/wrenfield/polyslice"
	"github.com/wrenfield/polyslice/geom"
)

const dbgDrawPadding = 20

func main() {
	scale := flag.Float64("scale", 40, "pixels per world unit")
	out := flag.String("out", "/tmp/polyslice.png", "output PNG path")
	flag.Parse()

	blocks := readBlocks(os.Stdin)
	if len(blocks) < 2 {
		log.Fatalf("expected at least a cut segment and an outer loop, got %d blocks", len(blocks))
	}
	if len(blocks[0]) != 2 {
		log.Fatalf("cut segment block must have exactly 2 points, got %d", len(blocks[0]))
	}

	poly := geom.PolygonWithHoles{Outer: blocks[1], Holes: blocks[2:]}
	cutStart, cutEnd := blocks[0][0], blocks[0][1]
	ref := boundingRect(poly.Outer)

	meshes, err := polyslice.Slice(poly, cutStart, cutEnd, ref, polyslice.WithWarnf(func(format string, args ...any) {
		log.Printf(format, args...)
	}))
	if err != nil {
		log.Fatalf("slice failed: %v", err)
	}

	fmt.Printf("produced %d fragment(s)\n", len(meshes))
	if len(meshes) == 0 {
		meshes = []polyslice.Mesh{{Polygon: poly}}
	}
	draw(meshes, *scale, *out)
}

func readBlocks(f *os.File) [][]geom.Point {
	var blocks [][]geom.Point
	var current []geom.Point

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, parsePoint(line))
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// boundingRect derives a UVRect from outer's own bounding box, standing in
// for the reference rectangle a real host would supply from its own texture
// atlas; the demo has no such atlas so it maps UVs across the whole shape.
func boundingRect(outer []geom.Point) polyslice.UVRect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range outer {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	return polyslice.UVRect{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

func parsePoint(line string) geom.Point {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		log.Fatalf("malformed point line %q", line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		log.Fatalf("bad x in %q: %v", line, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		log.Fatalf("bad y in %q: %v", line, err)
	}
	return geom.Point{X: x, Y: y}
}

func draw(meshes []polyslice.Mesh, scale float64, path string) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, m := range meshes {
		for _, p := range boundaryPoints(m.Polygon) {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	palette := []struct{ r, g, b float64 }{
		{0, 0.6, 0.2}, {0.1, 0.4, 0.9}, {0.9, 0.5, 0.1}, {0.8, 0.1, 0.6},
	}
	c.SetLineWidth(2 / scale)
	for i, m := range meshes {
		col := palette[i%len(palette)]
		drawLoop(c, m.Polygon.Outer)
		for _, h := range m.Polygon.Holes {
			drawLoop(c, h)
		}
		c.SetRGB(col.r, col.g, col.b)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	if err := c.SavePNG(path); err != nil {
		log.Fatalf("saving %s: %v", path, err)
	}
	fmt.Printf("wrote %s\n", path)
}

func boundaryPoints(p geom.PolygonWithHoles) []geom.Point {
	pts := append([]geom.Point(nil), p.Outer...)
	for _, h := range p.Holes {
		pts = append(pts, h...)
	}
	return pts
}

func drawLoop(c *gg.Context, loop []geom.Point) {
	if len(loop) == 0 {
		return
	}
	c.MoveTo(loop[0].X, loop[0].Y)
	for _, p := range loop[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
