package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

const maxLocationLength = 200

// RouteRequest is the body of POST /route.
type RouteRequest struct {
	Start  string `json:"start"`
	Finish string `json:"finish"`
}

// ParseRouteRequest decodes and validates a route planning request body.
func ParseRouteRequest(body string) (*RouteRequest, error) {
	var request RouteRequest
	if err := json.Unmarshal([]byte(body), &request); err != nil {
		return nil, fmt.Errorf("decoding request body: %w", err)
	}

	request.Start = strings.TrimSpace(request.Start)
	request.Finish = strings.TrimSpace(request.Finish)

	if request.Start == "" {
		return nil, InvalidRequestError{Field: "start", Reason: "cannot be empty"}
	}
	if request.Finish == "" {
		return nil, InvalidRequestError{Field: "finish", Reason: "cannot be empty"}
	}
	if len(request.Start) > maxLocationLength {
		return nil, InvalidRequestError{Field: "start", Reason: "too long"}
	}
	if len(request.Finish) > maxLocationLength {
		return nil, InvalidRequestError{Field: "finish", Reason: "too long"}
	}

	return &request, nil
}

type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Response helpers
func Success(body interface{}) (events.APIGatewayProxyResponse, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return Error("Server error", "encoding response", http.StatusInternalServerError)
	}
	return SuccessRaw(string(jsonBody)), nil
}

// SuccessRaw returns an OK response with a pre-marshaled JSON body.
func SuccessRaw(body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}

func Error(message, details string, statusCode int) (events.APIGatewayProxyResponse, error) {
	body, _ := json.Marshal(ErrorResponse{Error: message, Details: details})

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}, nil
}
