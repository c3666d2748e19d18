package catalog

import (
	"sort"

	"github.com/roadtriplabs/fuelroute/internal/geo"
	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/internal/region"
)

// Nearby filters stations to those whose state reference coordinate is
// within region.RouteRadiusMiles of position, annotates each with its
// distance from position and returns them sorted ascending by price. The
// sort is stable so equal prices keep catalog order. An empty result is not
// an error.
func Nearby(position models.LatLon, stations []models.Station) []models.Station {
	states := region.Near(position)

	nearby := make([]models.Station, 0)
	for _, station := range stations {
		if _, ok := states[region.Normalize(station.State)]; !ok {
			continue
		}
		station.Distance = geo.Haversine(position, models.LatLon{
			Latitude:  station.Latitude,
			Longitude: station.Longitude,
		})
		nearby = append(nearby, station)
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].PricePerGallon < nearby[j].PricePerGallon
	})
	return nearby
}

// Nearby is the method form used through the planner's StationSource.
func (c *Catalog) Nearby(position models.LatLon, stations []models.Station) []models.Station {
	return Nearby(position, stations)
}
