package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"github.com/roadtriplabs/fuelroute/internal/config"
	"github.com/roadtriplabs/fuelroute/internal/models"
)

const geocodeTableName = "fuelroute-geocode-cache"

// GeocodeRecord is a cached geocoding result.
type GeocodeRecord struct {
	Place       string  `dynamodbav:"place"`
	Latitude    float64 `dynamodbav:"latitude"`
	Longitude   float64 `dynamodbav:"longitude"`
	LastUpdated int64   `dynamodbav:"lastUpdated"`
	TTL         int64   `dynamodbav:"ttl"`
}

// DynamoGeocodeCache persists geocoding results in DynamoDB. Geocoding is
// the slowest external call per request and place names repeat heavily, so
// results are kept for weeks.
type DynamoGeocodeCache struct {
	client DynamoDBClient
	config *config.CacheConfig
}

func NewDynamoGeocodeCache(client DynamoDBClient, cacheConfig *config.CacheConfig) *DynamoGeocodeCache {
	if cacheConfig == nil {
		cacheConfig = config.GetCacheConfig()
	}
	return &DynamoGeocodeCache{
		client: client,
		config: cacheConfig,
	}
}

func geocodeCacheKey(place string) string {
	return strings.ToLower(strings.TrimSpace(place))
}

// Get returns the cached position for a place, or nil on miss or expiry.
func (c *DynamoGeocodeCache) Get(ctx context.Context, place string) (*models.LatLon, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(geocodeTableName),
		Key: map[string]types.AttributeValue{
			"place": &types.AttributeValueMemberS{Value: geocodeCacheKey(place)},
		},
	}

	result, err := c.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("getting geocode result from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record GeocodeRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling geocode record: %w", err)
	}

	if time.Now().Unix() >= record.TTL {
		log.Debug().Str("place", place).Msg("Geocode cache expired")
		return nil, nil
	}

	return &models.LatLon{Latitude: record.Latitude, Longitude: record.Longitude}, nil
}

// Save stores a geocoding result with the configured TTL.
func (c *DynamoGeocodeCache) Save(ctx context.Context, place string, position models.LatLon) error {
	now := time.Now().Unix()
	record := GeocodeRecord{
		Place:       geocodeCacheKey(place),
		Latitude:    position.Latitude,
		Longitude:   position.Longitude,
		LastUpdated: now,
		TTL:         now + int64(c.config.GetGeocodeDynamoTTL().Seconds()),
	}

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshaling geocode record: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(geocodeTableName),
		Item:      item,
	}

	if _, err := c.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("putting geocode result in DynamoDB: %w", err)
	}

	log.Debug().Str("place", place).Msg("Saved geocode result to cache")
	return nil
}
