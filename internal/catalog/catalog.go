package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/models"
	"github.com/roadtriplabs/fuelroute/internal/region"
)

// Column headers of the fuel price table.
const (
	columnName  = "Truckstop Name"
	columnAddr  = "Address"
	columnCity  = "City"
	columnState = "State"
	columnPrice = "Retail Price"
)

// Catalog loads the fuel price table once per process and answers
// route-level station queries. The raw record list is populated on first use
// and read-only afterwards; concurrent first callers share a single load.
type Catalog struct {
	source  PriceSource
	mu      sync.Mutex
	loaded  bool
	records []models.RawStationRecord
}

func New(source PriceSource) *Catalog {
	return &Catalog{source: source}
}

// load parses the price table, caching the result. Any malformed required
// field fails the whole load with a DataSourceError.
func (c *Catalog) load(ctx context.Context) ([]models.RawStationRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.records, nil
	}

	reader, err := c.source.Open(ctx)
	if err != nil {
		return nil, NewDataSourceError("opening price table", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing price table source")
		}
	}()

	records, err := parsePriceTable(csv.NewReader(reader))
	if err != nil {
		return nil, err
	}

	c.records = records
	c.loaded = true
	log.Info().Int("station_count", len(records)).Msg("Loaded fuel price table")
	return c.records, nil
}

func parsePriceTable(r *csv.Reader) ([]models.RawStationRecord, error) {
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, NewDataSourceError("reading header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnName, columnCity, columnState, columnPrice} {
		if _, ok := columns[required]; !ok {
			return nil, NewDataSourceError(fmt.Sprintf("missing column %q", required), nil)
		}
	}

	var records []models.RawStationRecord
	line := 1
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, NewDataSourceError(fmt.Sprintf("reading row %d", line+1), err)
		}
		line++

		record, err := parseRow(row, columns)
		if err != nil {
			return nil, NewDataSourceError(fmt.Sprintf("row %d", line), err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string, columns map[string]int) (models.RawStationRecord, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	record := models.RawStationRecord{
		Name:    field(columnName),
		City:    field(columnCity),
		State:   field(columnState),
		Address: field(columnAddr),
	}
	if record.Name == "" || record.City == "" || record.State == "" {
		return models.RawStationRecord{}, fmt.Errorf("empty name, city or state")
	}

	price, err := strconv.ParseFloat(field(columnPrice), 64)
	if err != nil {
		return models.RawStationRecord{}, fmt.Errorf("parsing price: %w", err)
	}
	if price <= 0 {
		return models.RawStationRecord{}, fmt.Errorf("non-positive price %v", price)
	}
	record.Price = price

	return record, nil
}

type stationKey struct {
	name  string
	city  string
	state string
}

// StationsNearRoute returns one station per (name, city, state) key for
// every state whose reference coordinate is within region.RouteRadiusMiles
// of the route, keeping the lowest observed price among duplicates. Stations
// are positioned at their state's reference coordinate and returned in
// first-encounter table order.
func (c *Catalog) StationsNearRoute(ctx context.Context, points []models.LatLon) ([]models.Station, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	states := region.NearRoute(points)

	index := make(map[stationKey]int)
	stations := make([]models.Station, 0)
	for _, record := range records {
		state := region.Normalize(record.State)
		if _, ok := states[state]; !ok {
			continue
		}
		ref, ok := region.Reference(state)
		if !ok {
			continue
		}

		key := stationKey{name: record.Name, city: record.City, state: state}
		if i, seen := index[key]; seen {
			if record.Price < stations[i].PricePerGallon {
				stations[i].PricePerGallon = record.Price
			}
			continue
		}

		index[key] = len(stations)
		stations = append(stations, models.Station{
			Name:           record.Name,
			City:           record.City,
			State:          state,
			Latitude:       ref.Latitude,
			Longitude:      ref.Longitude,
			PricePerGallon: record.Price,
		})
	}

	log.Debug().
		Int("states", len(states)).
		Int("stations", len(stations)).
		Msg("Stations near route")
	return stations, nil
}
