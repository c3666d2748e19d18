package routing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadtriplabs/fuelroute/internal/geo"
	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/pkg/http/client"
)

func TestGetRouteFromORS(t *testing.T) {
	t.Parallel()

	var gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/directions/driving-car/geojson", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		fmt.Fprint(w, `{"features":[{
			"geometry":{"coordinates":[[-75.0,40.0],[-75.25,40.5],[-75.0,41.0]]},
			"properties":{"summary":{"distance":160934,"duration":5400}}
		}]}`)
	}))
	defer server.Close()

	f := NewRouteFetcher(client.New(client.Options{}), "test-key", server.URL)

	start := models.LatLon{Latitude: 40.0, Longitude: -75.0}
	end := models.LatLon{Latitude: 41.0, Longitude: -75.0}
	route, err := f.GetRoute(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAuth)
	// Coordinates go out in [lon, lat] order.
	assert.JSONEq(t, `{"coordinates":[[-75,40],[-75,41]]}`, gotBody)

	assert.False(t, route.Fallback)
	assert.InDelta(t, 100, route.DistanceMiles, 0.01)
	assert.InDelta(t, 160934, route.DistanceMeters, 1e-9)
	assert.InDelta(t, 5400, route.DurationSeconds, 1e-9)

	require.Len(t, route.Points, 3)
	assert.Equal(t, models.LatLon{Latitude: 40.0, Longitude: -75.0}, route.Points[0])
	assert.Equal(t, models.LatLon{Latitude: 40.5, Longitude: -75.25}, route.Points[1])
	assert.Equal(t, models.LatLon{Latitude: 41.0, Longitude: -75.0}, route.Points[2])
}

func TestGetRouteFallbackOnServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewRouteFetcher(client.New(client.Options{}), "", server.URL)

	start := models.LatLon{Latitude: 40.0, Longitude: -75.0}
	end := models.LatLon{Latitude: 41.0, Longitude: -75.0}
	route, err := f.GetRoute(context.Background(), start, end)
	require.NoError(t, err, "fallback must not surface provider errors")

	assert.True(t, route.Fallback)

	wantMiles := geo.Haversine(start, end)
	assert.InDelta(t, wantMiles, route.DistanceMiles, 1e-9)
	assert.InDelta(t, math.Round(wantMiles/60*3600), route.DurationSeconds, 1e-9)

	// ~69 miles at 50-mile spacing still interpolates at least two segments.
	require.Len(t, route.Points, 3)
	assert.Equal(t, start, route.Points[0])
	assert.Equal(t, end, route.Points[len(route.Points)-1])
}

func TestGetRouteFallbackOnBadJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not json")
	}))
	defer server.Close()

	f := NewRouteFetcher(client.New(client.Options{}), "", server.URL)

	route, err := f.GetRoute(context.Background(),
		models.LatLon{Latitude: 40.0, Longitude: -75.0},
		models.LatLon{Latitude: 41.0, Longitude: -75.0})
	require.NoError(t, err)
	assert.True(t, route.Fallback)
}

func TestGetRouteFallbackOnTransportError(t *testing.T) {
	t.Parallel()

	httpClient := client.New(client.Options{})
	httpClient.PostFunc = func(_ context.Context, _ string, _ []byte, _ map[string]string) (*client.Response, error) {
		return nil, errors.New("connection refused")
	}

	f := NewRouteFetcher(httpClient, "", "http://ors.invalid")

	route, err := f.GetRoute(context.Background(),
		models.LatLon{Latitude: 40.0, Longitude: -75.0},
		models.LatLon{Latitude: 41.0, Longitude: -75.0})
	require.NoError(t, err)
	assert.True(t, route.Fallback)
}

func TestFallbackRouteLongTrip(t *testing.T) {
	t.Parallel()

	// NYC to LA is ~2445 miles, so roughly one point per 50 miles.
	start := models.LatLon{Latitude: 40.7128, Longitude: -74.0060}
	end := models.LatLon{Latitude: 34.0522, Longitude: -118.2437}

	route := fallbackRoute(start, end)

	assert.True(t, route.Fallback)
	assert.Greater(t, len(route.Points), 40)
	assert.Equal(t, start, route.Points[0])
	assert.Equal(t, end, route.Points[len(route.Points)-1])
	assert.InDelta(t, route.DistanceMiles*metersPerMile, route.DistanceMeters, 1e-6)
}
