package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"github.com/roadtriplabs/fuelroute/internal/api"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HandleRequest(_ context.Context, _ events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return api.Success(HealthResponse{
		Status:  "healthy",
		Service: "Fuel Route Planner API",
		Version: "1.0.0",
	})
}
