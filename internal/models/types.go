package models

// LatLon is a geographic coordinate pair in decimal degrees.
type LatLon struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RawStationRecord is one row of the fuel price table before deduplication.
type RawStationRecord struct {
	Name    string
	City    string
	State   string
	Address string
	Price   float64
}

// Station is a deduplicated catalog entry. Its position is always the
// reference coordinate of its state, never the street address.
type Station struct {
	Name           string  `json:"name"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	PricePerGallon float64 `json:"pricePerGallon"`
	Distance       float64 `json:"distance,omitempty"`
}

// FuelStop is one refuel event along a planned route. Estimated stops are
// synthetic: no real station was found near the refuel point.
type FuelStop struct {
	StationName       string  `json:"stationName"`
	City              string  `json:"city"`
	State             string  `json:"state,omitempty"`
	Position          LatLon  `json:"position"`
	PricePerGallon    float64 `json:"pricePerGallon"`
	GallonsPurchased  float64 `json:"gallonsPurchased"`
	Cost              float64 `json:"cost"`
	DistanceFromStart float64 `json:"distanceFromStart"`
	Estimated         bool    `json:"estimated,omitempty"`
	Note              string  `json:"note,omitempty"`
}

// VehicleProfile holds the fixed vehicle constants used for planning.
type VehicleProfile struct {
	MaxRangeMiles float64 `json:"maxRangeMiles"`
	MPG           float64 `json:"mpg"`
}

// Plan is the result of planning fuel stops for one trip. TotalGallons is
// computed directly from trip distance and MPG; per-stop gallons are a
// decomposition of it and may differ from its sum by rounding.
type Plan struct {
	Stops         []FuelStop     `json:"fuelStops"`
	TotalFuelCost float64        `json:"totalFuelCost"`
	TotalGallons  float64        `json:"totalGallons"`
	NumberOfStops int            `json:"numberOfStops"`
	Vehicle       VehicleProfile `json:"vehicle"`
}

// RouteResult is the output of the route retrieval collaborator.
type RouteResult struct {
	Points          []LatLon `json:"points"`
	DistanceMeters  float64  `json:"distanceMeters"`
	DistanceMiles   float64  `json:"distanceMiles"`
	DurationSeconds float64  `json:"durationSeconds"`
	Fallback        bool     `json:"fallback,omitempty"`
}
