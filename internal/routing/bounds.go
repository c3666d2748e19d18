package routing

// Approximate bounding boxes for the 50 US states: continental, Alaska,
// Hawaii.
var usaBounds = [][4]float64{
	{24.5, -125.0, 49.5, -66.0},
	{51.0, -180.0, 71.5, -129.0},
	{18.9, -160.3, 22.3, -154.8},
}

// InUSA reports whether (lat, lon) falls inside any USA bounding box.
func InUSA(lat, lon float64) bool {
	for _, b := range usaBounds {
		if lat >= b[0] && lat <= b[2] && lon >= b[1] && lon <= b[3] {
			return true
		}
	}
	return false
}
