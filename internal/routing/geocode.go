package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/pkg/http/client"
)

// GeocodeCache persists resolved coordinates for place names. It is
// best-effort: failures are logged, never surfaced to the caller.
type GeocodeCache interface {
	Get(ctx context.Context, place string) (*models.LatLon, error)
	Save(ctx context.Context, place string, position models.LatLon) error
}

// Geocoder resolves free-text place names to coordinates using the
// OpenRouteService geocode API, falling back to Nominatim. Both providers'
// results must lie inside the USA.
type Geocoder struct {
	httpClient       client.Interface
	apiKey           string
	orsBaseURL       string
	nominatimBaseURL string
	cache            GeocodeCache
}

type GeocoderOptions struct {
	HTTPClient       client.Interface
	APIKey           string
	ORSBaseURL       string
	NominatimBaseURL string
	Cache            GeocodeCache
}

func NewGeocoder(opts GeocoderOptions) *Geocoder {
	return &Geocoder{
		httpClient:       opts.HTTPClient,
		apiKey:           opts.APIKey,
		orsBaseURL:       opts.ORSBaseURL,
		nominatimBaseURL: opts.NominatimBaseURL,
		cache:            opts.Cache,
	}
}

func (g *Geocoder) Geocode(ctx context.Context, place string) (models.LatLon, error) {
	if g.cache != nil {
		cached, err := g.cache.Get(ctx, place)
		if err != nil {
			log.Error().Err(err).Str("place", place).Msg("Error reading geocode cache")
		} else if cached != nil {
			log.Debug().Str("place", place).Msg("Geocode cache HIT")
			return *cached, nil
		}
	}

	position, err := g.geocodeORS(ctx, place)
	if err != nil {
		var outside *OutsideUSAError
		if errors.As(err, &outside) {
			return models.LatLon{}, err
		}
		log.Debug().Err(err).Str("place", place).Msg("ORS geocode failed, trying Nominatim")
		position, err = g.geocodeNominatim(ctx, place)
		if err != nil {
			return models.LatLon{}, err
		}
	}

	if g.cache != nil {
		if err := g.cache.Save(ctx, place, position); err != nil {
			log.Error().Err(err).Str("place", place).Msg("Error saving geocode cache")
		}
	}
	return position, nil
}

func (g *Geocoder) geocodeORS(ctx context.Context, place string) (models.LatLon, error) {
	query := url.Values{}
	query.Set("text", place)
	query.Set("size", "1")

	resp, err := g.httpClient.Get(ctx, g.orsBaseURL+"/geocode/search?"+query.Encode(), map[string]string{
		"Authorization": g.apiKey,
	})
	if err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("ORS status %d", resp.StatusCode)}
	}

	var orsResp struct {
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"` // [lon, lat]
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(resp.Body, &orsResp); err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(orsResp.Features) == 0 || len(orsResp.Features[0].Geometry.Coordinates) < 2 {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("no results")}
	}

	coords := orsResp.Features[0].Geometry.Coordinates
	lat, lon := coords[1], coords[0]
	if !InUSA(lat, lon) {
		log.Warn().Str("place", place).Float64("lat", lat).Float64("lon", lon).
			Msg("Non-USA location geocoded by ORS")
		return models.LatLon{}, &OutsideUSAError{Place: place}
	}

	log.Debug().Str("place", place).Float64("lat", lat).Float64("lon", lon).Msg("Geocoded via ORS")
	return models.LatLon{Latitude: lat, Longitude: lon}, nil
}

func (g *Geocoder) geocodeNominatim(ctx context.Context, place string) (models.LatLon, error) {
	query := url.Values{}
	query.Set("q", place)
	query.Set("format", "json")
	query.Set("limit", "1")

	resp, err := g.httpClient.Get(ctx, g.nominatimBaseURL+"/search?"+query.Encode(), map[string]string{
		"User-Agent": "fuelroute-planner",
	})
	if err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("nominatim status %d", resp.StatusCode)}
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(resp.Body, &results); err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(results) == 0 {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("no results")}
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("parsing latitude: %w", err)}
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.LatLon{}, &GeocodeError{Place: place, Err: fmt.Errorf("parsing longitude: %w", err)}
	}

	if !InUSA(lat, lon) {
		log.Warn().Str("place", place).Float64("lat", lat).Float64("lon", lon).
			Msg("Non-USA location geocoded by Nominatim")
		return models.LatLon{}, &OutsideUSAError{Place: place}
	}

	log.Info().Str("place", place).Float64("lat", lat).Float64("lon", lon).Msg("Geocoded via Nominatim")
	return models.LatLon{Latitude: lat, Longitude: lon}, nil
}
