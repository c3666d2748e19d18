package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/cache"
	"github.com/roadtriplabs/fuelroute/internal/catalog"
	"github.com/roadtriplabs/fuelroute/internal/config"
	"github.com/roadtriplabs/fuelroute/internal/handler"
	"github.com/roadtriplabs/fuelroute/internal/planner"
	"github.com/roadtriplabs/fuelroute/internal/routing"
	"github.com/roadtriplabs/fuelroute/pkg/http/client"
)

var (
	lambdaStart  = lambda.Start // Allow mocking of lambda.Start in tests
	routeHandler *handler.RouteHandler
	setupOnce    sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()
		cacheConfig := config.GetCacheConfig()

		httpClient := client.New(client.Options{
			Timeout:    cfg.HTTPTimeout,
			MaxRetries: cfg.MaxRetries,
		})

		var source catalog.PriceSource = catalog.LocalFile{Path: cfg.FuelPricesCSV}
		if cfg.FuelPricesS3Bucket != "" {
			s3Client, err := cache.NewS3ClientFromEnv(context.Background())
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create S3 client")
			}
			source = cache.NewS3PriceSource(s3Client, cfg.FuelPricesS3Bucket, cfg.FuelPricesS3Key)
		}
		stationCatalog := catalog.New(source)

		var geocodeCache routing.GeocodeCache
		if cacheConfig.EnableGeocodeCache {
			dynamoClient, err := cache.NewDynamoClient(context.Background())
			if err != nil {
				log.Error().Err(err).Msg("Failed to create DynamoDB client, geocode cache disabled")
			} else {
				geocodeCache = cache.NewDynamoGeocodeCache(dynamoClient, cacheConfig)
			}
		}

		geocoder := routing.NewGeocoder(routing.GeocoderOptions{
			HTTPClient:       httpClient,
			APIKey:           cfg.ORSAPIKey,
			ORSBaseURL:       cfg.ORSBaseURL,
			NominatimBaseURL: cfg.NominatimBaseURL,
			Cache:            geocodeCache,
		})
		routeFetcher := routing.NewRouteFetcher(httpClient, cfg.ORSAPIKey, cfg.ORSBaseURL)
		planService := planner.NewService(stationCatalog)

		var planCache *cache.PlanCache
		if cacheConfig.EnablePlanCache {
			var err error
			planCache, err = cache.NewPlanCache(cacheConfig)
			if err != nil {
				log.Error().Err(err).Msg("Failed to create plan cache, continuing without")
			}
		}

		routeHandler = handler.NewRouteHandler(geocoder, routeFetcher, planService, planCache)
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return routeHandler.HandleRequest(ctx, request)
}

func main() {
	lambdaStart(handleRequest)
}
