package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 40.7128, -74.0060, 40.7128, -74.0060, 0, 0.001},
		{"one degree latitude", 40.0, -74.0, 41.0, -74.0, 111195, 200},
		{"short hop", 40.7128, -74.0060, 40.7138, -74.0060, 111.2, 1},
	}
	for _, c := range cases {
		got := HaversineDistance(c.lat1, c.lng1, c.lat2, c.lng2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: HaversineDistance = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestIsWithinRadius_BoundaryInclusive(t *testing.T) {
	centerLat, centerLng := 40.7128, -74.0060

	// Walk north until we find a point just about 150m out, then test both
	// sides of the boundary using the measured distance itself.
	pointLat := centerLat + 150.0/111195.0
	dist := HaversineDistance(pointLat, centerLng, centerLat, centerLng)

	if !IsWithinRadius(pointLat, centerLng, centerLat, centerLng, dist) {
		t.Errorf("point exactly at radius %f should be inside", dist)
	}
	if IsWithinRadius(pointLat, centerLng, centerLat, centerLng, dist-1.0) {
		t.Errorf("point 1m beyond radius %f should be outside", dist-1.0)
	}
}

func TestIsWithinRadius_Center(t *testing.T) {
	if !IsWithinRadius(35.0, 139.0, 35.0, 139.0, 0) {
		t.Error("center point should be inside a zero radius fence")
	}
}
