package planner

import "errors"

// ErrEmptyRoute is returned when the route polyline has no points.
var ErrEmptyRoute = errors.New("route has no points")
