package cache

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// S3Client defines the interface for S3 operations we need
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3PriceSource reads the fuel price table from an S3 object. It satisfies
// catalog.PriceSource.
type S3PriceSource struct {
	client S3Client
	bucket string
	key    string
}

func NewS3PriceSource(client S3Client, bucket, key string) *S3PriceSource {
	return &S3PriceSource{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// NewS3ClientFromEnv builds an S3 client from the default AWS configuration.
func NewS3ClientFromEnv(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *S3PriceSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("empty bucket name")
	}

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting price table from S3: %w", err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", s.key).Msg("Opened price table from S3")
	return result.Body, nil
}
