package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMercatorRoundTrip(t *testing.T) {
	cases := []struct {
		lat, lon float64
	}{
		{-7.557155997491524, 110.77170252731288}, // surakarta
		{47.61302496243479, -122.32065717425126}, // seattle
		{0, 0},
		{59.95, 30.3}, // high latitude
	}

	for _, c := range cases {
		p := FromLatLon(c.lat, c.lon)
		back := ToLatLon(p)
		assert.InDelta(t, c.lat, back.Lat, 1e-9)
		assert.InDelta(t, c.lon, back.Lon, 1e-9)
	}
}

func TestMercatorDistanceOnEarth(t *testing.T) {
	p1 := FromLatLon(-7.557155997491524, 110.77170252731288)
	p2 := FromLatLon(-7.550209300671982, 110.78942094938256)

	dist := DistanceOnEarth(p1, p2)
	assert.InDelta(t, 2100.0, dist, 100.0)
}

func TestMetersToXY(t *testing.T) {
	lat, lon := -7.55, 110.78

	rect := MetersToXY(lat, lon, 50.0)
	center := FromLatLon(lat, lon)
	assert.True(t, rect.IsPointInside(center))

	// 40m north stays inside the 50m rect, 80m north falls outside
	inside := FromLatLon(lat+40.0*degreeInMeters, lon)
	outside := FromLatLon(lat+80.0*degreeInMeters, lon)
	assert.True(t, rect.IsPointInside(inside))
	assert.False(t, rect.IsPointInside(outside))

	if rect.MaxX <= rect.MinX || rect.MaxY <= rect.MinY {
		t.Errorf("degenerate rect %+v", rect)
	}
}

func TestMetersToXYNearPole(t *testing.T) {
	rect := MetersToXY(89.9999, 0, 100.0)
	if math.IsNaN(rect.MinX) || math.IsNaN(rect.MaxX) {
		t.Errorf("rect must stay finite near the pole, got %+v", rect)
	}
	assert.True(t, rect.MaxX > rect.MinX)
}

func TestAngleToBearing(t *testing.T) {
	cases := []struct {
		angle    float64
		expected float64
	}{
		{0, 90},    // east
		{90, 0},    // north
		{180, 270}, // west
		{-90, 180}, // south
		{45, 45},   // north east
	}

	for _, c := range cases {
		assert.InDelta(t, c.expected, AngleToBearing(c.angle), 1e-9)
	}
}
