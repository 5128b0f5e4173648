package dealership

// Shop is a dealership location with a circular clock-in geofence.
type Shop struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CenterLat    float64 `json:"center_lat"`
	CenterLng    float64 `json:"center_lng"`
	RadiusMeters float64 `json:"radius_meters"`
}
