package routing

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/geo"
	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/pkg/http/client"
)

const (
	metersPerMile = 1609.34

	// Fallback route parameters: interpolated point spacing and assumed
	// average speed for the duration estimate.
	fallbackPointSpacingMiles = 50.0
	fallbackAverageMPH        = 60.0
)

// RouteFetcher retrieves a driving route between two coordinates from the
// OpenRouteService directions API. When the provider is unavailable it
// degrades to a straight-line route with interpolated points.
type RouteFetcher struct {
	httpClient client.Interface
	apiKey     string
	baseURL    string
}

func NewRouteFetcher(httpClient client.Interface, apiKey, baseURL string) *RouteFetcher {
	return &RouteFetcher{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

func (f *RouteFetcher) GetRoute(ctx context.Context, start, end models.LatLon) (*models.RouteResult, error) {
	// ORS expects [longitude, latitude]
	body, err := json.Marshal(map[string][][]float64{
		"coordinates": {
			{start.Longitude, start.Latitude},
			{end.Longitude, end.Latitude},
		},
	})
	if err != nil {
		return nil, err
	}

	resp, err := f.httpClient.Post(ctx, f.baseURL+"/v2/directions/driving-car/geojson", body, map[string]string{
		"Authorization": f.apiKey,
		"Content-Type":  "application/json",
	})
	if err != nil {
		log.Warn().Err(err).Msg("ORS route request failed, using fallback")
		return fallbackRoute(start, end), nil
	}
	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Msg("ORS route returned non-OK status, using fallback")
		return fallbackRoute(start, end), nil
	}

	var orsResp struct {
		Features []struct {
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
			} `json:"geometry"`
			Properties struct {
				Summary struct {
					Distance float64 `json:"distance"` // meters
					Duration float64 `json:"duration"` // seconds
				} `json:"summary"`
			} `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(resp.Body, &orsResp); err != nil {
		log.Warn().Err(err).Msg("Decoding ORS route response failed, using fallback")
		return fallbackRoute(start, end), nil
	}
	if len(orsResp.Features) == 0 || len(orsResp.Features[0].Geometry.Coordinates) == 0 {
		log.Warn().Msg("ORS route response empty, using fallback")
		return fallbackRoute(start, end), nil
	}

	feature := orsResp.Features[0]
	points := make([]models.LatLon, len(feature.Geometry.Coordinates))
	for i, coord := range feature.Geometry.Coordinates {
		points[i] = models.LatLon{Latitude: coord[1], Longitude: coord[0]}
	}

	distanceMiles := feature.Properties.Summary.Distance / metersPerMile
	log.Info().Float64("distance_miles", distanceMiles).Int("points", len(points)).Msg("Route from ORS")

	return &models.RouteResult{
		Points:          points,
		DistanceMeters:  feature.Properties.Summary.Distance,
		DistanceMiles:   distanceMiles,
		DurationSeconds: feature.Properties.Summary.Duration,
	}, nil
}

// fallbackRoute interpolates a straight line between start and end with a
// point roughly every fallbackPointSpacingMiles.
func fallbackRoute(start, end models.LatLon) *models.RouteResult {
	distanceMiles := geo.Haversine(start, end)

	numSegments := int(distanceMiles / fallbackPointSpacingMiles)
	if numSegments < 2 {
		numSegments = 2
	}

	points := make([]models.LatLon, 0, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		fraction := float64(i) / float64(numSegments)
		points = append(points, models.LatLon{
			Latitude:  start.Latitude + (end.Latitude-start.Latitude)*fraction,
			Longitude: start.Longitude + (end.Longitude-start.Longitude)*fraction,
		})
	}

	durationSeconds := distanceMiles / fallbackAverageMPH * 3600
	log.Info().Float64("distance_miles", distanceMiles).Int("points", len(points)).
		Msg("Fallback straight-line route")

	return &models.RouteResult{
		Points:          points,
		DistanceMeters:  distanceMiles * metersPerMile,
		DistanceMiles:   distanceMiles,
		DurationSeconds: math.Round(durationSeconds),
		Fallback:        true,
	}
}
