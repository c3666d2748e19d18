package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtriplabs/fuelroute/internal/api"
	"github.com/roadtriplabs/fuelroute/internal/cache"
	"github.com/roadtriplabs/fuelroute/internal/catalog"
	"github.com/roadtriplabs/fuelroute/internal/config"
	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/internal/routing"
)

type stubGeocoder struct {
	positions map[string]models.LatLon
	err       error
	calls     int
}

func (s *stubGeocoder) Geocode(_ context.Context, place string) (models.LatLon, error) {
	s.calls++
	if s.err != nil {
		return models.LatLon{}, s.err
	}
	return s.positions[place], nil
}

type stubRouteFetcher struct {
	route *models.RouteResult
	err   error
}

func (s *stubRouteFetcher) GetRoute(_ context.Context, _, _ models.LatLon) (*models.RouteResult, error) {
	return s.route, s.err
}

type stubPlanner struct {
	plan *models.Plan
	err  error
}

func (s *stubPlanner) Plan(_ context.Context, _ []models.LatLon, _ float64) (*models.Plan, error) {
	return s.plan, s.err
}

func workingStubs() (*stubGeocoder, *stubRouteFetcher, *stubPlanner) {
	geocoder := &stubGeocoder{
		positions: map[string]models.LatLon{
			"New York, NY": {Latitude: 40.7128, Longitude: -74.0060},
			"Boston, MA":   {Latitude: 42.3601, Longitude: -71.0589},
		},
	}
	routes := &stubRouteFetcher{
		route: &models.RouteResult{
			Points: []models.LatLon{
				{Latitude: 40.7128, Longitude: -74.0060},
				{Latitude: 42.3601, Longitude: -71.0589},
			},
			DistanceMiles:   215.0,
			DurationSeconds: 14400,
		},
	}
	planner := &stubPlanner{
		plan: &models.Plan{
			Stops:         []models.FuelStop{},
			TotalFuelCost: 0,
			TotalGallons:  21.5,
			Vehicle:       models.VehicleProfile{MaxRangeMiles: 500, MPG: 10},
		},
	}
	return geocoder, routes, planner
}

func routeRequest(start, finish string) events.APIGatewayProxyRequest {
	body, _ := json.Marshal(api.RouteRequest{Start: start, Finish: finish})
	return events.APIGatewayProxyRequest{Body: string(body)}
}

func TestHandleRequestSuccess(t *testing.T) {
	t.Parallel()

	geocoder, routes, planner := workingStubs()
	h := NewRouteHandler(geocoder, routes, planner, nil)

	resp, err := h.HandleRequest(context.Background(), routeRequest("New York, NY", "Boston, MA"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var body api.RouteResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "New York, NY", body.Route.StartLocation)
	assert.Equal(t, "Boston, MA", body.Route.EndLocation)
	assert.InDelta(t, 215.0, body.Route.TotalDistanceMiles, 1e-9)
	assert.InDelta(t, 21.5, body.FuelStrategy.TotalFuelNeededGallons, 1e-9)
	assert.Equal(t, 2, geocoder.calls)
}

func TestHandleRequestInvalidBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"start":`},
		{name: "missing finish", body: `{"start":"New York, NY"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			geocoder, routes, planner := workingStubs()
			h := NewRouteHandler(geocoder, routes, planner, nil)

			resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: tt.body})
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &errResp))
			assert.Equal(t, "Invalid input", errResp.Error)
			assert.Zero(t, geocoder.calls)
		})
	}
}

func TestHandleRequestLocationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		geocodeErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "outside usa",
			geocodeErr: &routing.OutsideUSAError{Place: "London, UK"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Location error",
		},
		{
			name:       "geocode failed",
			geocodeErr: &routing.GeocodeError{Place: "Nowhere", Err: errors.New("no results")},
			wantStatus: http.StatusBadRequest,
			wantError:  "Location error",
		},
		{
			name:       "unexpected",
			geocodeErr: errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, routes, planner := workingStubs()
			h := NewRouteHandler(&stubGeocoder{err: tt.geocodeErr}, routes, planner, nil)

			resp, err := h.HandleRequest(context.Background(), routeRequest("New York, NY", "Boston, MA"))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var errResp api.ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &errResp))
			assert.Equal(t, tt.wantError, errResp.Error)
		})
	}
}

func TestHandleRequestRouteError(t *testing.T) {
	t.Parallel()

	geocoder, _, planner := workingStubs()
	routes := &stubRouteFetcher{err: errors.New("provider down")}
	h := NewRouteHandler(geocoder, routes, planner, nil)

	resp, err := h.HandleRequest(context.Background(), routeRequest("New York, NY", "Boston, MA"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleRequestPriceDataError(t *testing.T) {
	t.Parallel()

	geocoder, routes, _ := workingStubs()
	planner := &stubPlanner{err: catalog.NewDataSourceError("opening fuel prices file", errors.New("no such file"))}
	h := NewRouteHandler(geocoder, routes, planner, nil)

	resp, err := h.HandleRequest(context.Background(), routeRequest("New York, NY", "Boston, MA"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var errResp api.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &errResp))
	assert.Equal(t, "Server error", errResp.Error)
	assert.Equal(t, "fuel price data unavailable", errResp.Details)
}

func TestHandleRequestPlanCache(t *testing.T) {
	t.Parallel()

	geocoder, routes, planner := workingStubs()
	planCache, err := cache.NewPlanCache(&config.CacheConfig{
		PlanLRUSize:       10,
		PlanLRUTTLMinutes: 5,
	})
	require.NoError(t, err)

	h := NewRouteHandler(geocoder, routes, planner, planCache)
	ctx := context.Background()

	first, err := h.HandleRequest(ctx, routeRequest("New York, NY", "Boston, MA"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, first.StatusCode)
	assert.Equal(t, 2, geocoder.calls)

	// Same trip again, normalized differently: served from cache without
	// geocoding.
	second, err := h.HandleRequest(ctx, routeRequest("  new york, ny ", "BOSTON, MA"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, second.StatusCode)
	assert.JSONEq(t, first.Body, second.Body)
	assert.Equal(t, 2, geocoder.calls, "cache hit must skip geocoding")
}
