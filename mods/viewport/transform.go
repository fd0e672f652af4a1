package viewport

import (
	"fmt"

	"github.com/mapsmith/mapview/mods/nums"
)

// Transform carries the four scalars that map the Mercator plane onto
// the screen: translation X/Y in pixels, scale K in pixels per radian,
// rotation R in radians about the screen center.
type Transform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
	R float64 `json:"r"`
}

// DefaultTransform is zoom level 1 with no offset and no rotation.
func DefaultTransform() Transform {
	return Transform{X: 0, Y: 0, K: nums.DefaultScale, R: 0}
}

func (t Transform) String() string {
	return fmt.Sprintf("translate(%v,%v) scale(%v) rotate(%v)", t.X, t.Y, t.K, t.R)
}

// Option mutates a viewport under construction or update. Every option
// validates its own field (scales re-clamp, rotations re-wrap,
// dimensions round up) and fields without an option keep their value.
type Option func(*Viewport)

// WithTranslate sets the translation offset in pixels.
func WithTranslate(x, y float64) Option {
	return func(v *Viewport) {
		v.trans.X, v.trans.Y = x, y
	}
}

// WithScale sets the scale k, clamped into [MinScale, MaxScale].
func WithScale(k float64) Option {
	return func(v *Viewport) {
		v.trans.K = nums.ClampScale(k)
	}
}

// WithZoom sets the scale via a tile-pyramid zoom level.
func WithZoom(zoom float64) Option {
	return WithScale(nums.ZoomToScale(zoom))
}

// WithRotation sets the rotation in radians, wrapped into [0, 2π).
func WithRotation(r float64) Option {
	return func(v *Viewport) {
		v.trans.R = nums.WrapAngle(r)
	}
}

// WithDimensions sets the screen size in pixels, rounded up to whole
// pixels.
func WithDimensions(width, height float64) Option {
	return func(v *Viewport) {
		v.dims = nums.Pt(width, height).Ceil()
	}
}
