package nums

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
)

// Extent is a rectangle accumulated from points. It starts out empty
// and only becomes valid once a point has been added, which keeps the
// origin from sneaking into bounds it was never part of. The same type
// serves screen space (pixels) and geographic space (longitude in X,
// latitude in Y).
type Extent struct {
	bound orb.Bound
	valid bool
}

// NewExtent returns an extent covering the given points. With no
// arguments the extent is empty.
func NewExtent(pts ...Point) *Extent {
	ext := &Extent{}
	for _, p := range pts {
		ext.ExtendSelf(p)
	}
	return ext
}

// ExtendSelf grows the extent in place to include p.
func (ext *Extent) ExtendSelf(p Point) *Extent {
	op := orb.Point{p.X, p.Y}
	if !ext.valid {
		ext.bound = orb.Bound{Min: op, Max: op}
		ext.valid = true
		return ext
	}
	ext.bound = ext.bound.Extend(op)
	return ext
}

// UnionSelf grows the extent in place to include other.
func (ext *Extent) UnionSelf(other *Extent) *Extent {
	if other == nil || !other.valid {
		return ext
	}
	if !ext.valid {
		ext.bound = other.bound
		ext.valid = true
		return ext
	}
	ext.bound = ext.bound.Union(other.bound)
	return ext
}

func (ext *Extent) IsEmpty() bool {
	return !ext.valid
}

func (ext *Extent) Min() Point {
	return Pt(ext.bound.Min.X(), ext.bound.Min.Y())
}

func (ext *Extent) Max() Point {
	return Pt(ext.bound.Max.X(), ext.bound.Max.Y())
}

func (ext *Extent) Center() Point {
	c := ext.bound.Center()
	return Pt(c.X(), c.Y())
}

func (ext *Extent) Width() float64 {
	if !ext.valid {
		return 0
	}
	return ext.bound.Right() - ext.bound.Left()
}

func (ext *Extent) Height() float64 {
	if !ext.valid {
		return 0
	}
	return ext.bound.Top() - ext.bound.Bottom()
}

func (ext *Extent) Contains(p Point) bool {
	return ext.valid && ext.bound.Contains(orb.Point{p.X, p.Y})
}

// Bound returns the extent as an orb.Bound; an empty extent yields a
// bound for which orb.Bound.IsEmpty reports true.
func (ext *Extent) Bound() orb.Bound {
	if !ext.valid {
		return orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{-1, -1}}
	}
	return ext.bound
}

func (ext *Extent) String() string {
	if !ext.valid {
		return "[]"
	}
	return fmt.Sprintf("[%v,%v,%v,%v]",
		ext.bound.Min.X(), ext.bound.Min.Y(), ext.bound.Max.X(), ext.bound.Max.Y())
}

// MarshalJSON renders the extent as [minx,miny,maxx,maxy], an empty
// extent as [].
func (ext *Extent) MarshalJSON() ([]byte, error) {
	if !ext.valid {
		return []byte("[]"), nil
	}
	return json.Marshal([]float64{
		ext.bound.Min.X(), ext.bound.Min.Y(), ext.bound.Max.X(), ext.bound.Max.Y()})
}
