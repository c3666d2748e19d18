package planner

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/geo"
	"github.com/roadtriplabs/fuelroute/internal/models"
)

// Vehicle and planning constants. Fixed for this system.
const (
	MaxRangeMiles     = 500.0
	MPG               = 10.0
	RefuelBufferMiles = 100.0

	// DefaultPricePerGallon is charged at estimated stops when no station
	// at all was found along the route.
	DefaultPricePerGallon = 3.50

	estimatedStationName = "Estimated Station"
)

// StationSource supplies the stations considered during planning.
type StationSource interface {
	StationsNearRoute(ctx context.Context, points []models.LatLon) ([]models.Station, error)
	Nearby(position models.LatLon, stations []models.Station) []models.Station
}

// Service plans fuel stops along a route polyline.
type Service struct {
	stations StationSource
}

func NewService(stations StationSource) *Service {
	return &Service{stations: stations}
}

// Plan walks the route, refueling at the cheapest nearby station whenever
// remaining range drops below RefuelBufferMiles before the trip is done.
// When no station qualifies, a synthetic estimated stop is emitted at the
// mean route-level price (or DefaultPricePerGallon if no stations loaded).
// Total gallons are computed directly from trip distance and MPG; per-stop
// gallons decompose that figure and may differ from its sum by rounding.
func (s *Service) Plan(ctx context.Context, points []models.LatLon, totalDistanceMiles float64) (*models.Plan, error) {
	if len(points) == 0 {
		return nil, ErrEmptyRoute
	}

	routeStations, err := s.stations.StationsNearRoute(ctx, points)
	if err != nil {
		return nil, err
	}

	stops := make([]models.FuelStop, 0)
	totalFuelCost := 0.0
	remainingRange := MaxRangeMiles
	distanceCovered := 0.0
	routeIndex := 0

	for distanceCovered < totalDistanceMiles {
		distanceToNextFuel := math.Min(remainingRange, totalDistanceMiles-distanceCovered)

		position, newIndex, traveled := geo.Advance(points, routeIndex, distanceToNextFuel)
		if traveled <= 0 {
			// Polyline exhausted before the reported trip distance.
			log.Warn().
				Float64("distance_covered", distanceCovered).
				Float64("total_distance", totalDistanceMiles).
				Msg("Route polyline ended before total distance, stopping early")
			break
		}
		routeIndex = newIndex
		distanceCovered += traveled
		remainingRange -= traveled

		if distanceCovered >= totalDistanceMiles || remainingRange >= RefuelBufferMiles {
			continue
		}

		gallons := (MaxRangeMiles - remainingRange) / MPG
		nearby := s.stations.Nearby(position, routeStations)

		var stop models.FuelStop
		if len(nearby) > 0 {
			best := nearby[0]
			cost := gallons * best.PricePerGallon
			stop = models.FuelStop{
				StationName: best.Name,
				City:        best.City,
				State:       best.State,
				Position: models.LatLon{
					Latitude:  best.Latitude,
					Longitude: best.Longitude,
				},
				PricePerGallon:    best.PricePerGallon,
				GallonsPurchased:  round2(gallons),
				Cost:              round2(cost),
				DistanceFromStart: round2(distanceCovered),
			}
			totalFuelCost += cost
		} else {
			price := averagePrice(routeStations)
			cost := gallons * price
			stop = models.FuelStop{
				StationName:       estimatedStationName,
				City:              "Unknown",
				Position:          position,
				PricePerGallon:    round2(price),
				GallonsPurchased:  round2(gallons),
				Cost:              round2(cost),
				DistanceFromStart: round2(distanceCovered),
				Estimated:         true,
				Note:              "No stations found nearby, using estimated price",
			}
			totalFuelCost += cost
		}

		stops = append(stops, stop)
		remainingRange = MaxRangeMiles
	}

	totalGallons := totalDistanceMiles / MPG
	log.Info().
		Int("stops", len(stops)).
		Float64("total_cost", totalFuelCost).
		Float64("total_gallons", totalGallons).
		Msg("Planned fuel stops")

	return &models.Plan{
		Stops:         stops,
		TotalFuelCost: round2(totalFuelCost),
		TotalGallons:  round2(totalGallons),
		NumberOfStops: len(stops),
		Vehicle: models.VehicleProfile{
			MaxRangeMiles: MaxRangeMiles,
			MPG:           MPG,
		},
	}, nil
}

func averagePrice(stations []models.Station) float64 {
	if len(stations) == 0 {
		return DefaultPricePerGallon
	}
	sum := 0.0
	for _, s := range stations {
		sum += s.PricePerGallon
	}
	return sum / float64(len(stations))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
