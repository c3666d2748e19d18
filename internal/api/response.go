package api

import (
	"fmt"
	"math"

	"github.com/roadtriplabs/fuelroute/internal/models"
)

// RouteResponse is the body of a successful POST /route.
type RouteResponse struct {
	Route         RouteSummary       `json:"route"`
	FuelStrategy  FuelStrategy       `json:"fuel_strategy"`
	FuelStops     []FuelStopResponse `json:"fuel_stops"`
	TotalFuelCost float64            `json:"total_fuel_cost"`
}

type RouteSummary struct {
	StartLocation            string  `json:"start_location"`
	EndLocation              string  `json:"end_location"`
	TotalDistanceMiles       float64 `json:"total_distance_miles"`
	EstimatedDurationMinutes int     `json:"estimated_duration_minutes"`
}

type FuelStrategy struct {
	VehicleRangeMiles      float64 `json:"vehicle_range_miles"`
	VehicleMPG             float64 `json:"vehicle_mpg"`
	TotalFuelNeededGallons float64 `json:"total_fuel_needed_gallons"`
}

type FuelStopResponse struct {
	StopNumber             int     `json:"stop_number"`
	StationName            string  `json:"station_name"`
	City                   string  `json:"city"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	DistanceFromStartMiles float64 `json:"distance_from_start_miles"`
	FuelPricePerGallon     float64 `json:"fuel_price_per_gallon"`
	FuelAddedGallons       float64 `json:"fuel_added_gallons"`
	CostForThisStop        float64 `json:"cost_for_this_stop"`
	Estimated              bool    `json:"estimated,omitempty"`
	Note                   string  `json:"note,omitempty"`
}

// NewRouteResponse shapes a plan and its route into the response body.
func NewRouteResponse(start, finish string, route *models.RouteResult, plan *models.Plan) *RouteResponse {
	stops := make([]FuelStopResponse, len(plan.Stops))
	for i, stop := range plan.Stops {
		city := stop.City
		if city == "" {
			city = "Unknown"
		}
		if stop.State != "" {
			city = fmt.Sprintf("%s, %s", city, stop.State)
		}
		stops[i] = FuelStopResponse{
			StopNumber:             i + 1,
			StationName:            stop.StationName,
			City:                   city,
			Latitude:               stop.Position.Latitude,
			Longitude:              stop.Position.Longitude,
			DistanceFromStartMiles: stop.DistanceFromStart,
			FuelPricePerGallon:     stop.PricePerGallon,
			FuelAddedGallons:       stop.GallonsPurchased,
			CostForThisStop:        stop.Cost,
			Estimated:              stop.Estimated,
			Note:                   stop.Note,
		}
	}

	return &RouteResponse{
		Route: RouteSummary{
			StartLocation:            start,
			EndLocation:              finish,
			TotalDistanceMiles:       round2(route.DistanceMiles),
			EstimatedDurationMinutes: int(math.Round(route.DurationSeconds / 60)),
		},
		FuelStrategy: FuelStrategy{
			VehicleRangeMiles:      plan.Vehicle.MaxRangeMiles,
			VehicleMPG:             plan.Vehicle.MPG,
			TotalFuelNeededGallons: plan.TotalGallons,
		},
		FuelStops:     stops,
		TotalFuelCost: plan.TotalFuelCost,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
