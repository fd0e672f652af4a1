package viewport

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/mapsmith/mapview/mods/nums"
)

// Viewport maps WGS84 locations onto a rotatable pixel screen through
// the spherical Web Mercator projection. Screen y grows downward and a
// positive rotation turns the content clockwise about the screen
// center. Every operation corrects bad input silently (clamp, wrap,
// ceil) instead of returning errors.
//
// A Viewport is not safe for concurrent mutation; callers either keep
// a single writer or synchronize outside.
type Viewport struct {
	trans Transform
	dims  nums.Point
}

// New builds a viewport from the default transform and zero
// dimensions, then applies the options.
func New(opts ...Option) *Viewport {
	v := &Viewport{trans: DefaultTransform()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Transform returns a copy of the current transform.
func (v *Viewport) Transform() Transform {
	return v.trans
}

// SetTransform applies the options to the current state. Fields
// without an option keep their value, so it works as a partial update.
func (v *Viewport) SetTransform(opts ...Option) *Viewport {
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Viewport) Translate() (x, y float64) {
	return v.trans.X, v.trans.Y
}

func (v *Viewport) SetTranslate(x, y float64) *Viewport {
	v.trans.X, v.trans.Y = x, y
	return v
}

func (v *Viewport) Scale() float64 {
	return v.trans.K
}

func (v *Viewport) SetScale(k float64) *Viewport {
	v.trans.K = nums.ClampScale(k)
	return v
}

// Zoom reports the scale as a tile-pyramid zoom level.
func (v *Viewport) Zoom() float64 {
	return nums.ScaleToZoom(v.trans.K)
}

func (v *Viewport) SetZoom(zoom float64) *Viewport {
	return v.SetScale(nums.ZoomToScale(zoom))
}

func (v *Viewport) Rotation() float64 {
	return v.trans.R
}

func (v *Viewport) SetRotation(r float64) *Viewport {
	v.trans.R = nums.WrapAngle(r)
	return v
}

func (v *Viewport) Dimensions() nums.Point {
	return v.dims
}

func (v *Viewport) SetDimensions(width, height float64) *Viewport {
	v.dims = nums.Pt(width, height).Ceil()
	return v
}

// Center returns the middle of the screen.
func (v *Viewport) Center() nums.Point {
	return v.dims.Scale(0.5)
}

// Project maps a WGS84 location (lon/lat in degrees) to screen pixels.
// With rotate the point is additionally rotated by the viewport
// rotation about the screen center. Longitude passes through
// unbounded; latitude clamps at the Mercator limit.
func (v *Viewport) Project(loc orb.Point, rotate bool) nums.Point {
	mx, my := nums.LonLatToMercator(loc.Lon(), loc.Lat())
	pt := nums.Pt(mx*v.trans.K+v.trans.X, v.trans.Y-my*v.trans.K)
	if rotate && v.trans.R != 0 {
		pt = pt.Rotate(v.trans.R, v.Center())
	}
	return pt
}

// Unproject maps screen pixels back to a WGS84 location, inverting
// Project. The Mercator y ordinate clamps to [-π, π] on the way back,
// so any screen point lands on a projectable latitude.
func (v *Viewport) Unproject(pt nums.Point, rotate bool) orb.Point {
	if rotate && v.trans.R != 0 {
		pt = pt.Rotate(-v.trans.R, v.Center())
	}
	mx := (pt.X - v.trans.X) / v.trans.K
	my := (v.trans.Y - pt.Y) / v.trans.K
	lon, lat := nums.MercatorToLonLat(mx, my)
	return orb.Point{lon, lat}
}

// CenterAt retranslates the viewport so loc lands on the screen
// center. Rotation turns about the center, so the location stays put
// under any rotation.
func (v *Viewport) CenterAt(loc orb.Point) *Viewport {
	mx, my := nums.LonLatToMercator(loc.Lon(), loc.Lat())
	c := v.Center()
	v.trans.X = c.X - mx*v.trans.K
	v.trans.Y = c.Y + my*v.trans.K
	return v
}

// VisiblePolygon returns the screen-space outline of the region a
// renderer has to cover: the smallest rectangle with sides parallel to
// the rotated axes that circumscribes the screen. The ring is closed
// (five vertices, first repeated last) and collapses to the screen
// rectangle [0,0] [0,h] [w,h] [w,0] [0,0] when the rotation is zero;
// the zero case falls out of the same formula.
func (v *Viewport) VisiblePolygon() []nums.Point {
	width, height := v.dims.X, v.dims.Y
	sinr := math.Abs(math.Sin(v.trans.R))
	cosr := math.Abs(math.Cos(v.trans.R))
	ae := width * sinr
	af := height * cosr
	ex, ey := ae*sinr, ae*cosr
	fx, fy := af*sinr, af*cosr
	e := nums.Pt(ex, 0-ey)
	f := nums.Pt(0-fx, fy)
	g := nums.Pt(width-ex, height+ey)
	h := nums.Pt(width+fx, height-fy)
	return []nums.Point{e, f, g, h, e}
}

// VisibleDimensions returns the width and height of the visible
// region, rounded up to whole pixels.
func (v *Viewport) VisibleDimensions() nums.Point {
	width, height := v.dims.X, v.dims.Y
	sinr := math.Abs(math.Sin(v.trans.R))
	cosr := math.Abs(math.Cos(v.trans.R))
	return nums.Pt(width*cosr+height*sinr, height*cosr+width*sinr).Ceil()
}

// VisibleCenter returns the middle of the visible region.
func (v *Viewport) VisibleCenter() nums.Point {
	return v.VisibleDimensions().Scale(0.5)
}

// Extent returns the geographic bound of the visible region: the four
// distinct polygon vertices unprojected with rotation and accumulated
// into an extent, longitude in X and latitude in Y. With zero
// dimensions the extent degenerates to the location under the origin.
func (v *Viewport) Extent() *nums.Extent {
	ext := nums.NewExtent()
	poly := v.VisiblePolygon()
	for _, pt := range poly[:len(poly)-1] {
		loc := v.Unproject(pt, true)
		ext.ExtendSelf(nums.Pt(loc.Lon(), loc.Lat()))
	}
	return ext
}

// Bound returns the visible extent as an orb.Bound.
func (v *Viewport) Bound() orb.Bound {
	return v.Extent().Bound()
}
