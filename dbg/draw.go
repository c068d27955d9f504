package dbg

import (
	"image"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/associahedron/advanced"
	"github.com/pkg/errors"
)

// Padding around the polygon, in pixels
const drawPadding = 20

type Point struct {
	X, Y float64
}

// PolygonPoints lays out a regular polygon on a circle of the given radius
// around the origin, y up. Vertex 0 sits just left of the top and the rest
// follow counterclockwise, so the root edge (V-1, 0) runs across the top.
func PolygonPoints(vertexCount int, radius float64) []Point {
	points := make([]Point, vertexCount)
	step := 2 * math.Pi / float64(vertexCount)
	for k := range points {
		angle := math.Pi/2 + step/2 + step*float64(k)
		points[k] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

func midpoint(points []Point, e advanced.Edge) Point {
	a, b := points[e.Start], points[e.End]
	return Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Render draws tri on a polygon of unit radius scaled by scale: triangles
// shaded by the depth of their dual tree node, the boundary, the diagonals and
// the dual tree itself between edge midpoints. It linearizes the tree to get
// depths.
func Render(tri *advanced.Triangulation, scale float64) image.Image {
	points := PolygonPoints(len(tri.Boundary), 1)
	links := tri.Tree.Linearize()
	maxDepth := math.Max(1, float64(tri.Tree.MaxDepth()))

	size := int(2*scale) + drawPadding*2
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Flip the context so y points up, then center the polygon
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	c.Translate(float64(size)/2, float64(size)/2)
	c.Scale(scale, scale)

	for key, triangle := range tri.Faces {
		shade := 0.15 + 0.5*float64(tri.Tree.Node(key).Depth)/maxDepth
		c.MoveTo(points[triangle[0]].X, points[triangle[0]].Y)
		c.LineTo(points[triangle[1]].X, points[triangle[1]].Y)
		c.LineTo(points[triangle[2]].X, points[triangle[2]].Y)
		c.ClosePath()
		c.SetRGB(0, shade, shade/2)
		c.Fill()
	}

	c.SetLineWidth(3 / scale)
	c.SetRGB(0, 1, 1)
	for _, e := range tri.Boundary {
		c.DrawLine(points[e.Start].X, points[e.Start].Y, points[e.End].X, points[e.End].Y)
	}
	c.Stroke()

	c.SetLineWidth(2 / scale)
	c.SetRGB(1, 1, 1)
	for _, e := range tri.Diagonals {
		c.DrawLine(points[e.Start].X, points[e.Start].Y, points[e.End].X, points[e.End].Y)
	}
	c.Stroke()

	c.SetLineWidth(1 / scale)
	c.SetRGB(1, 0.5, 0)
	for _, link := range links {
		from := midpoint(points, tri.Tree.Node(link.From).Edge)
		to := midpoint(points, tri.Tree.Node(link.To).Edge)
		c.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	c.Stroke()
	return c.Image()
}

// DrawTriangulation renders tri and saves it as a PNG at path.
func DrawTriangulation(tri *advanced.Triangulation, scale float64, path string) error {
	if err := gg.SavePNG(path, Render(tri, scale)); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Cat prints the image at path in the terminal (iTerm only).
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
