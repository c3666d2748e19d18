package geo

import (
	"math"

	"github.com/roadtriplabs/fuelroute/internal/models"
)

const earthRadiusMiles = 3958.8

// Haversine returns the great-circle distance between two points in miles.
func Haversine(a, b models.LatLon) float64 {
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

// PathLength returns the total great-circle length of a polyline in miles.
func PathLength(points []models.LatLon) float64 {
	var total float64
	for i := 0; i < len(points)-1; i++ {
		total += Haversine(points[i], points[i+1])
	}
	return total
}

// Advance walks the polyline from startIndex until targetDistance miles have
// been covered and returns the interpolated stopping position, the index of
// the segment the position lies on, and the distance actually traveled. The
// returned index stays at the segment start until a later call crosses it.
// If the polyline ends before targetDistance is reached, the last point, the
// last index and the true remaining length are returned.
func Advance(points []models.LatLon, startIndex int, targetDistance float64) (models.LatLon, int, float64) {
	index := startIndex
	traveled := 0.0
	position := points[index]

	for index < len(points)-1 {
		next := points[index+1]
		segment := Haversine(position, next)

		if traveled+segment >= targetDistance {
			remaining := targetDistance - traveled
			fraction := 0.0
			if segment > 0 {
				fraction = remaining / segment
			}
			interpolated := models.LatLon{
				Latitude:  position.Latitude + (next.Latitude-position.Latitude)*fraction,
				Longitude: position.Longitude + (next.Longitude-position.Longitude)*fraction,
			}
			return interpolated, index, targetDistance
		}

		traveled += segment
		position = next
		index++
	}

	return points[len(points)-1], len(points) - 1, traveled
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
