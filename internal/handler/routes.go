package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/api"
	"github.com/roadtriplabs/fuelroute/internal/cache"
	"github.com/roadtriplabs/fuelroute/internal/catalog"
	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/internal/routing"
)

type Geocoder interface {
	Geocode(ctx context.Context, place string) (models.LatLon, error)
}

type RouteFetcher interface {
	GetRoute(ctx context.Context, start, end models.LatLon) (*models.RouteResult, error)
}

type TripPlanner interface {
	Plan(ctx context.Context, points []models.LatLon, totalDistanceMiles float64) (*models.Plan, error)
}

// RouteHandler serves POST /route: geocode both endpoints, fetch the route,
// plan fuel stops, shape the response.
type RouteHandler struct {
	geocoder  Geocoder
	routes    RouteFetcher
	planner   TripPlanner
	planCache *cache.PlanCache // optional
}

func NewRouteHandler(geocoder Geocoder, routes RouteFetcher, planner TripPlanner, planCache *cache.PlanCache) *RouteHandler {
	return &RouteHandler{
		geocoder:  geocoder,
		routes:    routes,
		planner:   planner,
		planCache: planCache,
	}
}

func (h *RouteHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	routeRequest, err := api.ParseRouteRequest(request.Body)
	if err != nil {
		var invalidErr api.InvalidRequestError
		if errors.As(err, &invalidErr) {
			return api.Error("Invalid input", invalidErr.Error(), http.StatusBadRequest)
		}
		return api.Error("Invalid input", "malformed request body", http.StatusBadRequest)
	}

	cacheKey := cache.PlanCacheKey(routeRequest.Start, routeRequest.Finish)
	if h.planCache != nil {
		if body, ok := h.planCache.Get(ctx, cacheKey); ok {
			log.Debug().Str("key", cacheKey).Msg("Plan cache HIT")
			return api.SuccessRaw(body), nil
		}
	}

	startCoords, err := h.geocoder.Geocode(ctx, routeRequest.Start)
	if err != nil {
		return locationError(err)
	}
	endCoords, err := h.geocoder.Geocode(ctx, routeRequest.Finish)
	if err != nil {
		return locationError(err)
	}

	route, err := h.routes.GetRoute(ctx, startCoords, endCoords)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching route")
		return api.Error("Server error", "fetching route", http.StatusInternalServerError)
	}

	plan, err := h.planner.Plan(ctx, route.Points, route.DistanceMiles)
	if err != nil {
		log.Error().Err(err).Msg("Error planning fuel stops")
		var dataErr *catalog.DataSourceError
		if errors.As(err, &dataErr) {
			return api.Error("Server error", "fuel price data unavailable", http.StatusInternalServerError)
		}
		return api.Error("Server error", "planning fuel stops", http.StatusInternalServerError)
	}

	response := api.NewRouteResponse(routeRequest.Start, routeRequest.Finish, route, plan)
	body, err := json.Marshal(response)
	if err != nil {
		return api.Error("Server error", "encoding response", http.StatusInternalServerError)
	}

	if h.planCache != nil {
		h.planCache.Add(ctx, cacheKey, string(body))
	}
	return api.SuccessRaw(string(body)), nil
}

func locationError(err error) (events.APIGatewayProxyResponse, error) {
	var outsideErr *routing.OutsideUSAError
	var geocodeErr *routing.GeocodeError
	if errors.As(err, &outsideErr) || errors.As(err, &geocodeErr) {
		return api.Error("Location error", err.Error(), http.StatusBadRequest)
	}
	log.Error().Err(err).Msg("Error geocoding location")
	return api.Error("Server error", "geocoding location", http.StatusInternalServerError)
}
