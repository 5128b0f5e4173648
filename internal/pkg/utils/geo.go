package utils

import "math"

// earthRadiusMeters is the mean Earth radius used for great-circle distance.
const earthRadiusMeters = 6371000

// HaversineDistance returns the great-circle distance between two
// coordinates in meters.
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLng := (lng2 - lng1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// IsWithinRadius reports whether (lat, lng) falls inside the circular
// geofence centered at (centerLat, centerLng). The boundary is inclusive:
// a point exactly radiusMeters from the center still counts.
func IsWithinRadius(lat, lng, centerLat, centerLng, radiusMeters float64) bool {
	return HaversineDistance(lat, lng, centerLat, centerLng) <= radiusMeters
}
