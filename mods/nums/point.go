package nums

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in screen space, in pixels. X grows rightward
// and Y grows downward, the usual raster convention.
type Point r2.Vec

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point(r2.Add(r2.Vec(p), r2.Vec(q)))
}

func (p Point) Sub(q Point) Point {
	return Point(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

func (p Point) Scale(f float64) Point {
	return Point(r2.Scale(f, r2.Vec(p)))
}

// Rotate rotates p by alpha radians around the pivot. The rotation is
// counter-clockwise in the mathematical sense, which reads clockwise
// on a y-down screen.
func (p Point) Rotate(alpha float64, pivot Point) Point {
	return Point(r2.Rotate(r2.Vec(p), alpha, r2.Vec(pivot)))
}

// Ceil rounds both coordinates up to the nearest integer.
func (p Point) Ceil() Point {
	return Point{X: math.Ceil(p.X), Y: math.Ceil(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("[%v,%v]", p.X, p.Y)
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([]float64{p.X, p.Y})
}

func (p Point) Array() []float64 {
	return []float64{p.X, p.Y}
}
