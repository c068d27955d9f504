package main

import (
	"fmt"
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/associahedron/advanced"
	"github.com/osuushi/associahedron/dbg"
	"github.com/pkg/errors"
)

const (
	svgPadding     = 24
	triangleStyle  = "fill:rgb(0,%d,%d);stroke:none"
	boundaryStyle  = "stroke:rgb(0,160,160);stroke-width:3"
	diagonalStyle  = "stroke:rgb(40,40,40);stroke-width:2"
	linkStyle      = "stroke:rgb(255,128,0);stroke-width:1;stroke-dasharray:4,3"
	vertexStyle    = "fill:rgb(40,40,40)"
	vertexLabelCSS = "font-family:sans-serif;font-size:12px;text-anchor:middle"
)

func edgeID(e advanced.Edge) string {
	return fmt.Sprintf(`id="edge-%d-%d"`, e.Start, e.End)
}

// writeSVG draws tri as an SVG of the given size: triangles shaded by depth,
// boundary and diagonal lines with their edges as ids, the dual tree and the
// numbered vertices. The tree gets linearized for its depths.
func writeSVG(w io.Writer, tri *advanced.Triangulation, size int) {
	radius := float64(size)/2 - svgPadding
	center := float64(size) / 2
	points := dbg.PolygonPoints(len(tri.Boundary), radius)
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for i, p := range points {
		xs[i] = int(math.Round(center + p.X))
		ys[i] = int(math.Round(center - p.Y))
	}
	links := tri.Tree.Linearize()
	maxDepth := math.Max(1, float64(tri.Tree.MaxDepth()))

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:rgb(255,255,255)")

	depths := make(map[advanced.Triangle]int, len(tri.Faces))
	for key, face := range tri.Faces {
		depths[face] = tri.Tree.Node(key).Depth
	}
	for _, t := range tri.Triangles {
		shade := 120 + int(120*float64(depths[t])/maxDepth)
		canvas.Polygon(
			[]int{xs[t[0]], xs[t[1]], xs[t[2]]},
			[]int{ys[t[0]], ys[t[1]], ys[t[2]]},
			fmt.Sprintf(triangleStyle, shade, shade),
			`class="triangle"`,
		)
	}
	for _, e := range tri.Boundary {
		canvas.Line(xs[e.Start], ys[e.Start], xs[e.End], ys[e.End], boundaryStyle, `class="boundary"`, edgeID(e))
	}
	for _, e := range tri.Diagonals {
		canvas.Line(xs[e.Start], ys[e.Start], xs[e.End], ys[e.End], diagonalStyle, `class="diagonal"`, edgeID(e))
	}
	for _, link := range links {
		from := tri.Tree.Node(link.From).Edge
		to := tri.Tree.Node(link.To).Edge
		canvas.Line(
			(xs[from.Start]+xs[from.End])/2, (ys[from.Start]+ys[from.End])/2,
			(xs[to.Start]+xs[to.End])/2, (ys[to.Start]+ys[to.End])/2,
			linkStyle, `class="link"`,
		)
	}
	for i := range points {
		canvas.Circle(xs[i], ys[i], 4, vertexStyle)
		// Labels sit just outside the polygon
		lx := int(math.Round(center + points[i].X*(radius+14)/radius))
		ly := int(math.Round(center - points[i].Y*(radius+14)/radius))
		canvas.Text(lx, ly+4, fmt.Sprint(i), vertexLabelCSS)
	}
	canvas.End()
}

func saveSVG(path string, tri *advanced.Triangulation) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "closing %s", path)
		}
	}()
	writeSVG(file, tri, svgSize)
	return nil
}
