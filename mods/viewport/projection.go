package viewport

import (
	"github.com/paulmach/orb"

	"github.com/mapsmith/mapview/mods/nums"
)

// Projection is the plain fixed-orientation mapper that predates
// Viewport: translation and scale only, no rotation and no screen
// bookkeeping. It shares the Mercator math with Viewport and keeps the
// same silent clamping rules.
type Projection struct {
	x, y, k float64
}

// NewProjection returns a projection at the default transform.
func NewProjection() *Projection {
	def := DefaultTransform()
	return &Projection{x: def.X, y: def.Y, k: def.K}
}

func (p *Projection) Translate() (x, y float64) {
	return p.x, p.y
}

func (p *Projection) SetTranslate(x, y float64) *Projection {
	p.x, p.y = x, y
	return p
}

func (p *Projection) Scale() float64 {
	return p.k
}

func (p *Projection) SetScale(k float64) *Projection {
	p.k = nums.ClampScale(k)
	return p
}

// Project maps a WGS84 location to screen pixels.
func (p *Projection) Project(loc orb.Point) nums.Point {
	mx, my := nums.LonLatToMercator(loc.Lon(), loc.Lat())
	return nums.Pt(mx*p.k+p.x, p.y-my*p.k)
}

// Unproject maps screen pixels back to a WGS84 location.
func (p *Projection) Unproject(pt nums.Point) orb.Point {
	lon, lat := nums.MercatorToLonLat((pt.X-p.x)/p.k, (p.y-pt.Y)/p.k)
	return orb.Point{lon, lat}
}
