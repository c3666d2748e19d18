package main

import (
	"context"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/roadtriplabs/fuelroute/internal/config"
	"github.com/roadtriplabs/fuelroute/internal/handler"
)

var (
	lambdaStart   = lambda.Start // Allow mocking of lambda.Start in tests
	healthHandler *handler.HealthHandler
	setupOnce     sync.Once
)

func init() {
	setupOnce.Do(func() {
		cfg := config.LoadFromEnv()
		cfg.InitializeLogging()

		healthHandler = handler.NewHealthHandler()
	})
}

func handleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return healthHandler.HandleRequest(ctx, request)
}

func main() {
	lambdaStart(handleRequest)
}
