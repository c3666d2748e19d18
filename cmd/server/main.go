// Local development server exposing the same handlers as the Lambda
// entrypoints over plain HTTP.
package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/cache"
	"github.com/roadtriplabs/fuelroute/internal/catalog"
	"github.com/roadtriplabs/fuelroute/internal/config"
	"github.com/roadtriplabs/fuelroute/internal/handler"
	"github.com/roadtriplabs/fuelroute/internal/planner"
	"github.com/roadtriplabs/fuelroute/internal/routing"
	"github.com/roadtriplabs/fuelroute/pkg/http/client"
)

type lambdaHandler interface {
	HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)
}

// adapt bridges an API Gateway style handler onto net/http.
func adapt(h lambdaHandler, method string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "reading body", http.StatusBadRequest)
			return
		}

		params := make(map[string]string)
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

		resp, err := h.HandleRequest(r.Context(), events.APIGatewayProxyRequest{
			Body:                  string(body),
			QueryStringParameters: params,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write([]byte(resp.Body))
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()
	cacheConfig := config.GetCacheConfig()

	httpClient := client.New(client.Options{
		Timeout:    cfg.HTTPTimeout,
		MaxRetries: cfg.MaxRetries,
	})

	stationCatalog := catalog.New(catalog.LocalFile{Path: cfg.FuelPricesCSV})
	geocoder := routing.NewGeocoder(routing.GeocoderOptions{
		HTTPClient:       httpClient,
		APIKey:           cfg.ORSAPIKey,
		ORSBaseURL:       cfg.ORSBaseURL,
		NominatimBaseURL: cfg.NominatimBaseURL,
	})
	routeFetcher := routing.NewRouteFetcher(httpClient, cfg.ORSAPIKey, cfg.ORSBaseURL)
	planService := planner.NewService(stationCatalog)

	planCache, err := cache.NewPlanCache(cacheConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create plan cache")
	}

	mux := http.NewServeMux()
	mux.Handle("/api/route/", adapt(handler.NewRouteHandler(geocoder, routeFetcher, planService, planCache), http.MethodPost))
	mux.Handle("/api/health/", adapt(handler.NewHealthHandler(), http.MethodGet))

	addr := ":" + envOrDefault("PORT", "8080")
	log.Info().Str("addr", addr).Msg("Starting local server")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
