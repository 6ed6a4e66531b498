/*

Package visualize renders the point configurations a predicate is
asked to decide, as an SVG diagram, so a degenerate or surprising
evaluation can be inspected by eye instead of by re-deriving the
cascade by hand.

*/

package visualize

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/colornames"

	"github.com/robustgeom/sos/vec"
)

const (
	pointRadius = 4
	margin      = 20
)

// Triangle draws the three points of an orient_2d call and colours
// the connecting path green if the orientation is positive (CCW), red
// otherwise, so a degenerate call's near-collinearity is visible.
func Triangle(w io.Writer, a, b, c vec.Vec, positive bool, scale float64) {
	canvas := svg.New(w)
	width, height := 400, 400
	canvas.Start(width, height)
	defer canvas.End()

	col := colornames.Firebrick
	if positive {
		col = colornames.Forestgreen
	}

	px, py := project([]vec.Vec{a, b, c}, width, height, scale)
	canvas.Polygon(px, py, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", hex(col)))
	for i, p := range []vec.Vec{a, b, c} {
		canvas.Circle(px[i], py[i], pointRadius, fmt.Sprintf("fill:%s", hex(colornames.Steelblue)))
		canvas.Text(px[i]+6, py[i]-6, fmt.Sprintf("%d", i), "font-size:12px")
	}
}

// Circumcircle draws the triangle a, b, c in grey alongside the query
// point p, colouring p green if in_circle reports it inside and red
// otherwise. The circle through a, b, c is not drawn.
func Circumcircle(w io.Writer, a, b, c, p vec.Vec, inside bool, scale float64) {
	canvas := svg.New(w)
	width, height := 400, 400
	canvas.Start(width, height)
	defer canvas.End()

	px, py := project([]vec.Vec{a, b, c, p}, width, height, scale)
	canvas.Polygon(px[:3], py[:3], fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", hex(colornames.Gray)))

	pcol := colornames.Firebrick
	if inside {
		pcol = colornames.Forestgreen
	}
	for i := 0; i < 3; i++ {
		canvas.Circle(px[i], py[i], pointRadius, fmt.Sprintf("fill:%s", hex(colornames.Steelblue)))
	}
	canvas.Circle(px[3], py[3], pointRadius, fmt.Sprintf("fill:%s", hex(pcol)))
}

// project maps a batch of points into SVG pixel space: y is flipped
// (SVG's origin is top-left) and the origin is placed at the centre of
// the canvas. The margin constant is not applied.
func project(pts []vec.Vec, width, height int, scale float64) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	cx, cy := width/2, height/2
	for i, p := range pts {
		xs[i] = cx + int(p.X*scale)
		ys[i] = cy - int(p.Y*scale)
	}
	return xs, ys
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
