package viewport_test

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/mapsmith/mapview/mods/nums"
	"github.com/mapsmith/mapview/mods/viewport"
)

func TestNewDefaults(t *testing.T) {
	v := viewport.New()
	trans := v.Transform()
	require.Equal(t, 0.0, trans.X)
	require.Equal(t, 0.0, trans.Y)
	require.Equal(t, nums.DefaultScale, trans.K)
	require.Equal(t, 0.0, trans.R)
	require.Equal(t, nums.Pt(0, 0), v.Dimensions())
	require.InDelta(t, 1.0, v.Zoom(), 1e-12)

	// construction always starts from defaults; absent options do not
	// inherit anything
	v2 := viewport.New(viewport.WithZoom(5), viewport.WithDimensions(800, 600))
	x, y := v2.Translate()
	require.Equal(t, 0.0, x)
	require.Equal(t, 0.0, y)
	require.Equal(t, 0.0, v2.Rotation())
	require.InDelta(t, 5.0, v2.Zoom(), 1e-12)
}

func TestProjectFixedPoint(t *testing.T) {
	v := viewport.New()
	pt := v.Project(orb.Point{0, 0}, true)
	require.Equal(t, 0.0, pt.X)
	require.Equal(t, 0.0, pt.Y)

	loc := v.Unproject(nums.Pt(0, 0), true)
	require.Equal(t, 0.0, loc.Lon())
	require.Equal(t, 0.0, loc.Lat())
}

func TestProjectMercatorExtremes(t *testing.T) {
	v := viewport.New()

	pt := v.Project(orb.Point{180, -85.0511287798}, false)
	require.InDelta(t, 256, pt.X, 1e-6)
	require.InDelta(t, 256, pt.Y, 1e-6)

	pt = v.Project(orb.Point{-180, 85.0511287798}, false)
	require.InDelta(t, -256, pt.X, 1e-6)
	require.InDelta(t, -256, pt.Y, 1e-6)

	loc := v.Unproject(nums.Pt(256, 256), false)
	require.InDelta(t, 180, loc.Lon(), 1e-6)
	require.InDelta(t, -85.0511287798, loc.Lat(), 1e-6)
}

func TestProjectPoleSafety(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600), viewport.WithRotation(1.1))
	for _, lat := range []float64{90, -90, 89.999, -89.999} {
		pt := v.Project(orb.Point{10, lat}, true)
		require.False(t, math.IsNaN(pt.X) || math.IsInf(pt.X, 0), "lat %v -> %v", lat, pt)
		require.False(t, math.IsNaN(pt.Y) || math.IsInf(pt.Y, 0), "lat %v -> %v", lat, pt)
	}
	// far off-screen points unproject to clamped latitudes, never NaN
	for _, pt := range []nums.Point{{X: 1e9, Y: 1e9}, {X: -1e9, Y: 1e9}, {X: 0, Y: -1e12}} {
		loc := v.Unproject(pt, true)
		require.False(t, math.IsNaN(loc.Lat()))
		require.LessOrEqual(t, math.Abs(loc.Lat()), 85.0511287798+1e-9)
	}
}

func TestRoundTrip(t *testing.T) {
	views := map[string]*viewport.Viewport{
		"default":    viewport.New(),
		"translated": viewport.New(viewport.WithTranslate(-320.5, 1024)),
		"zoomed":     viewport.New(viewport.WithZoom(7.5), viewport.WithDimensions(1024, 768)),
		"rotated":    viewport.New(viewport.WithRotation(0.7), viewport.WithDimensions(800, 600)),
		"everything": viewport.New(
			viewport.WithTranslate(123.4, -567.8),
			viewport.WithZoom(17.25),
			viewport.WithRotation(5.5),
			viewport.WithDimensions(1920, 1080)),
	}
	locs := []orb.Point{
		{0, 0},
		{126.978, 37.5665},
		{-77.0365, 38.8977},
		{18.4241, -33.9249},
		{179.9, 84.9},
		{-179.9, -84.9},
	}
	for name, v := range views {
		t.Run(name, func(t *testing.T) {
			for _, loc := range locs {
				got := v.Unproject(v.Project(loc, true), true)
				require.InDelta(t, loc.Lon(), got.Lon(), 1e-9, "lon of %v", loc)
				require.InDelta(t, loc.Lat(), got.Lat(), 1e-9, "lat of %v", loc)

				got = v.Unproject(v.Project(loc, false), false)
				require.InDelta(t, loc.Lon(), got.Lon(), 1e-9, "lon of %v, unrotated", loc)
				require.InDelta(t, loc.Lat(), got.Lat(), 1e-9, "lat of %v, unrotated", loc)
			}
		})
	}
}

func TestSetterClampWrap(t *testing.T) {
	v := viewport.New()

	require.Equal(t, nums.MinScale, v.SetScale(0).Scale())
	require.Equal(t, nums.MinScale, v.SetScale(-42).Scale())
	require.Equal(t, nums.MaxScale, v.SetScale(1e18).Scale())
	require.Equal(t, nums.MinScale, v.SetZoom(-3).Scale())
	require.Equal(t, nums.MaxScale, v.SetZoom(30).Scale())

	require.Equal(t, 0.0, v.SetRotation(2*math.Pi).Rotation())
	require.InDelta(t, 3*math.Pi/2, v.SetRotation(-math.Pi/2).Rotation(), 1e-12)

	// rotate(2π+θ) lands on the same transform as rotate(θ)
	for _, theta := range []float64{0, 0.25, 1, math.Pi, 5.9} {
		a := viewport.New(viewport.WithRotation(theta)).Transform()
		b := viewport.New(viewport.WithRotation(2*math.Pi + theta)).Transform()
		require.InDelta(t, a.R, b.R, 1e-9, "theta %v", theta)
	}

	require.Equal(t, nums.Pt(801, 601), v.SetDimensions(800.2, 600.7).Dimensions())
	require.Equal(t, nums.Pt(800, 600), v.SetDimensions(800, 600).Dimensions())
}

func TestChaining(t *testing.T) {
	v := viewport.New().
		SetTranslate(10, 20).
		SetScale(2 * nums.DefaultScale).
		SetRotation(math.Pi / 4).
		SetDimensions(800, 600)

	x, y := v.Translate()
	require.Equal(t, 10.0, x)
	require.Equal(t, 20.0, y)
	require.Equal(t, 2*nums.DefaultScale, v.Scale())
	require.Equal(t, math.Pi/4, v.Rotation())
	require.Equal(t, nums.Pt(800, 600), v.Dimensions())
}

func TestSetTransformPartial(t *testing.T) {
	v := viewport.New(
		viewport.WithTranslate(10, 20),
		viewport.WithZoom(4),
		viewport.WithRotation(1),
		viewport.WithDimensions(640, 480))

	// only the named field changes
	v.SetTransform(viewport.WithRotation(2))
	x, y := v.Translate()
	require.Equal(t, 10.0, x)
	require.Equal(t, 20.0, y)
	require.InDelta(t, 4.0, v.Zoom(), 1e-12)
	require.Equal(t, 2.0, v.Rotation())
	require.Equal(t, nums.Pt(640, 480), v.Dimensions())

	// several at once, each validated independently
	v.SetTransform(viewport.WithScale(-1), viewport.WithRotation(2*math.Pi))
	require.Equal(t, nums.MinScale, v.Scale())
	require.Equal(t, 0.0, v.Rotation())
	x, y = v.Translate()
	require.Equal(t, 10.0, x)
	require.Equal(t, 20.0, y)

	// no options, no change
	before := v.Transform()
	require.Equal(t, before, v.SetTransform().Transform())

	// the returned transform is a copy, not a live reference
	snap := v.Transform()
	v.SetRotation(3)
	require.Equal(t, 0.0, snap.R)
}

func TestCenter(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600))
	require.Equal(t, nums.Pt(400, 300), v.Center())
	require.Equal(t, nums.Pt(0, 0), viewport.New().Center())
}

func TestVisiblePolygonUnrotated(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600))
	poly := v.VisiblePolygon()
	expected := []nums.Point{
		{X: 0, Y: 0}, {X: 0, Y: 600}, {X: 800, Y: 600}, {X: 800, Y: 0}, {X: 0, Y: 0},
	}
	require.Equal(t, expected, poly)
}

func TestVisiblePolygonRotated(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600), viewport.WithRotation(math.Pi/4))
	poly := v.VisiblePolygon()
	require.Len(t, poly, 5)
	expected := []nums.Point{
		{X: 400, Y: -400}, {X: -300, Y: 300}, {X: 400, Y: 1000}, {X: 1100, Y: 300}, {X: 400, Y: -400},
	}
	for i := range expected {
		require.InDelta(t, expected[i].X, poly[i].X, 1e-9, "vertex %d", i)
		require.InDelta(t, expected[i].Y, poly[i].Y, 1e-9, "vertex %d", i)
	}

	// the ring is closed
	require.Equal(t, poly[0], poly[4])

	// a quarter turn wraps the frame back onto the screen rectangle
	v.SetRotation(math.Pi / 2)
	poly = v.VisiblePolygon()
	quarter := []nums.Point{
		{X: 800, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 600}, {X: 800, Y: 600}, {X: 800, Y: 0},
	}
	for i := range quarter {
		require.InDelta(t, quarter[i].X, poly[i].X, 1e-9, "vertex %d", i)
		require.InDelta(t, quarter[i].Y, poly[i].Y, 1e-9, "vertex %d", i)
	}
}

func TestVisibleDimensions(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600))
	require.Equal(t, nums.Pt(800, 600), v.VisibleDimensions())
	require.Equal(t, nums.Pt(400, 300), v.VisibleCenter())

	v.SetRotation(math.Pi / 4)
	// 1400/√2 = 989.94…, rounded up
	require.Equal(t, nums.Pt(990, 990), v.VisibleDimensions())
	require.Equal(t, nums.Pt(495, 495), v.VisibleCenter())
}

// The visible polygon must be a rectangle of exactly the size
// VisibleDimensions reports (before rounding up), centered on the
// screen center, at every rotation. Aligning the ring with its own
// first edge and taking the bounding box makes both checks at once.
func TestVisibleGeometryConsistency(t *testing.T) {
	const w, h = 800.0, 600.0
	v := viewport.New(viewport.WithDimensions(w, h))
	center := v.Center()
	for _, r := range []float64{0, 0.3, math.Pi / 4, 1.2, math.Pi / 2, 2.4, math.Pi, 4.0, 3 * math.Pi / 2, 5.9} {
		v.SetRotation(r)
		sinr, cosr := math.Abs(math.Sin(r)), math.Abs(math.Cos(r))
		wantW := w*cosr + h*sinr
		wantH := h*cosr + w*sinr

		poly := v.VisiblePolygon()

		// side lengths agree with the reported dimensions
		width := math.Hypot(poly[3].X-poly[0].X, poly[3].Y-poly[0].Y)
		height := math.Hypot(poly[1].X-poly[0].X, poly[1].Y-poly[0].Y)
		require.InDelta(t, wantW, width, 1e-9, "rotation %v", r)
		require.InDelta(t, wantH, height, 1e-9, "rotation %v", r)

		theta := math.Atan2(poly[3].Y-poly[0].Y, poly[3].X-poly[0].X)
		box := nums.NewExtent()
		for _, pt := range poly[:4] {
			box.ExtendSelf(pt.Rotate(-theta, center))
		}
		require.InDelta(t, wantW, box.Width(), 1e-9, "rotation %v", r)
		require.InDelta(t, wantH, box.Height(), 1e-9, "rotation %v", r)
		require.InDelta(t, center.X, box.Center().X, 1e-9, "rotation %v", r)
		require.InDelta(t, center.Y, box.Center().Y, 1e-9, "rotation %v", r)

		dims := v.VisibleDimensions()
		require.Equal(t, math.Ceil(wantW), dims.X, "rotation %v", r)
		require.Equal(t, math.Ceil(wantH), dims.Y, "rotation %v", r)
	}
}

func TestExtentScenario(t *testing.T) {
	v := viewport.New(viewport.WithDimensions(800, 600))
	ext := v.Extent()
	require.False(t, ext.IsEmpty())

	min, max := ext.Min(), ext.Max()
	require.InDelta(t, 0, min.X, 1e-9)              // west: origin meridian
	require.InDelta(t, -85.0511287798, min.Y, 1e-6) // south: clamped
	require.InDelta(t, 562.5, max.X, 1e-9)          // east: 800px at zoom 1
	require.InDelta(t, 0, max.Y, 1e-9)              // north: equator

	bound := v.Bound()
	require.InDelta(t, 562.5, bound.Right(), 1e-9)
}

func TestExtentRotated(t *testing.T) {
	// a rotated viewport sees more of the world than the same screen
	// unrotated
	plain := viewport.New(viewport.WithDimensions(800, 600), viewport.WithZoom(4))
	plain.CenterAt(orb.Point{14.1, 48.2})
	rotated := viewport.New(viewport.WithDimensions(800, 600), viewport.WithZoom(4), viewport.WithRotation(math.Pi/4))
	rotated.CenterAt(orb.Point{14.1, 48.2})

	pe, re := plain.Extent(), rotated.Extent()
	require.Greater(t, re.Width(), pe.Width())
	require.Greater(t, re.Height(), pe.Height())

	// both contain the shared center location
	require.True(t, pe.Contains(nums.Pt(14.1, 48.2)))
	require.True(t, re.Contains(nums.Pt(14.1, 48.2)))
}

func TestExtentZeroDimensions(t *testing.T) {
	v := viewport.New()
	ext := v.Extent()
	require.False(t, ext.IsEmpty())
	require.Equal(t, ext.Min(), ext.Max())
	require.Equal(t, 0.0, ext.Min().X)
	require.Equal(t, 0.0, ext.Min().Y)
}

func TestCenterAt(t *testing.T) {
	v := viewport.New(
		viewport.WithDimensions(800, 600),
		viewport.WithZoom(10),
		viewport.WithRotation(0.7))
	seoul := orb.Point{126.978, 37.5665}
	v.CenterAt(seoul)

	pt := v.Project(seoul, true)
	require.InDelta(t, 400, pt.X, 1e-6)
	require.InDelta(t, 300, pt.Y, 1e-6)

	// the centered location round-trips through the screen center
	loc := v.Unproject(v.Center(), true)
	require.InDelta(t, seoul.Lon(), loc.Lon(), 1e-9)
	require.InDelta(t, seoul.Lat(), loc.Lat(), 1e-9)
}
