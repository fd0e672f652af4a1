package nums

import "math"

// mercator.go holds the spherical Web Mercator projection on the unit
// sphere: the forward/inverse conversions shared by the viewport
// package and the scale bookkeeping of the 256px tile pyramid.

const (
	// TileSize is the side length of one map tile, in pixels.
	TileSize = 256.0

	Tau     = 2 * math.Pi
	HalfPi  = math.Pi / 2
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi

	// MaxLatitude is the latitude where the Mercator y ordinate reaches
	// π. Latitudes beyond it are clamped so the projection stays finite.
	MaxLatitude = 85.0511287798
	MaxPhi      = MaxLatitude * Deg2Rad
	MinPhi      = -MaxPhi

	MinZoom = 0
	MaxZoom = 24

	// MinScale and MaxScale bracket the projection scale k, in pixels
	// per radian: zoom 0 renders the whole world onto a single tile,
	// zoom 24 onto 2^24 tiles per side.
	MinScale = TileSize / Tau
	MaxScale = MinScale * (1 << MaxZoom)

	// DefaultScale is zoom level 1.
	DefaultScale = TileSize / math.Pi
)

// LonLatToMercator projects WGS84 lon/lat (degrees) onto the
// unit-sphere Mercator plane: x = λ, y = ln(tan(π/4 + φ/2)), computed
// as asinh(tan φ) which is the same curve without the precision loss
// near the equator. Longitude passes through unbounded; latitude is
// clamped to ±MaxLatitude so y stays within [-π, π].
func LonLatToMercator(lon, lat float64) (float64, float64) {
	phi := Clamp(lat*Deg2Rad, MinPhi, MaxPhi)
	x := lon * Deg2Rad
	y := math.Asinh(math.Tan(phi))
	return x, y
}

// MercatorToLonLat is the inverse of LonLatToMercator. The y ordinate
// is clamped to [-π, π] first, so any finite input maps to a latitude
// within ±MaxLatitude.
func MercatorToLonLat(x, y float64) (float64, float64) {
	y = Clamp(y, -math.Pi, math.Pi)
	lon := x * Rad2Deg
	lat := math.Atan(math.Sinh(y)) * Rad2Deg
	return lon, lat
}

// ZoomToScale converts a tile-pyramid zoom level to the projection
// scale k (pixels per radian).
func ZoomToScale(zoom float64) float64 {
	return MinScale * math.Exp2(zoom)
}

// ScaleToZoom converts a projection scale k back to a zoom level.
func ScaleToZoom(scale float64) float64 {
	return math.Log2(scale / MinScale)
}

// ClampScale forces k into [MinScale, MaxScale]; zero and negative
// scales collapse to MinScale.
func ClampScale(k float64) float64 {
	return Clamp(k, MinScale, MaxScale)
}

// WrapAngle normalizes an angle in radians into [0, 2π).
func WrapAngle(r float64) float64 {
	return Wrap(r, 0, Tau)
}
