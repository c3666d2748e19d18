package routing

import "fmt"

// GeocodeError indicates a place name could not be resolved to coordinates
// by any provider.
type GeocodeError struct {
	Place string
	Err   error
}

func (e *GeocodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocoding %q: %v", e.Place, e.Err)
	}
	return fmt.Sprintf("geocoding %q failed", e.Place)
}

func (e *GeocodeError) Unwrap() error {
	return e.Err
}

// OutsideUSAError indicates a place resolved to coordinates outside the 50
// US states, which this system does not serve.
type OutsideUSAError struct {
	Place string
}

func (e *OutsideUSAError) Error() string {
	return fmt.Sprintf("location %q is outside the USA", e.Place)
}
