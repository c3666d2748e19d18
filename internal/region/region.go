package region

import (
	"strings"

	"github.com/roadtriplabs/fuelroute/internal/geo"
	"github.com/roadtriplabs/fuelroute/internal/models"
)

// RouteRadiusMiles is the state-to-point distance used both when loading
// stations along a route and when searching near a refuel point. The two
// checks must use the same radius or their candidate sets drift apart. The
// value is generous so a large state is not excluded when the route only
// clips a corner of it.
const RouteRadiusMiles = 250

// maxRouteSamples bounds the number of polyline points tested against the
// state table on long routes.
const maxRouteSamples = 15

// Normalize canonicalizes a state identifier for use as a lookup key.
func Normalize(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

// Reference returns the reference coordinate for a state, if known.
func Reference(state string) (models.LatLon, bool) {
	p, ok := stateCoords[Normalize(state)]
	return p, ok
}

// Near returns the set of states whose reference coordinate lies within
// RouteRadiusMiles of the given position.
func Near(position models.LatLon) map[string]struct{} {
	states := make(map[string]struct{})
	for state, ref := range stateCoords {
		if geo.Haversine(ref, position) <= RouteRadiusMiles {
			states[state] = struct{}{}
		}
	}
	return states
}

// NearRoute returns the set of states whose reference coordinate lies within
// RouteRadiusMiles of any point of the route. The polyline is downsampled to
// at most maxRouteSamples evenly spaced points, always keeping the final
// point, before testing.
func NearRoute(points []models.LatLon) map[string]struct{} {
	states := make(map[string]struct{})
	if len(points) == 0 {
		return states
	}

	step := len(points) / maxRouteSamples
	if step < 1 {
		step = 1
	}

	samples := make([]models.LatLon, 0, maxRouteSamples+1)
	for i := 0; i < len(points); i += step {
		samples = append(samples, points[i])
	}
	if last := points[len(points)-1]; samples[len(samples)-1] != last {
		samples = append(samples, last)
	}

	for _, sample := range samples {
		for state, ref := range stateCoords {
			if geo.Haversine(ref, sample) <= RouteRadiusMiles {
				states[state] = struct{}{}
			}
		}
	}
	return states
}
