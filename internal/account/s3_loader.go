package account

import (
	"context"
	"fmt"

	"cinema-tickets/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// objectGetter is the part of the S3 API the loader needs.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader reads gzipped account files from an S3 bucket.
type s3Loader struct {
	client objectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a loader for the bucket described by cfg. Credentials come
// from the default AWS chain. A non-empty cfg.Endpoint targets an S3-compatible
// store using path-style addressing.
func NewS3Loader(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) (Loader, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	loader := newS3Loader(client, cfg.Bucket, logger)
	loader.logger.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Msg("S3 account loader ready")

	return loader, nil
}

func newS3Loader(client objectGetter, bucket string, logger zerolog.Logger) *s3Loader {
	return &s3Loader{
		client: client,
		bucket: bucket,
		logger: logger.With().Str("component", "s3-account-loader").Str("bucket", bucket).Logger(),
	}
}

// Load fetches the object stored under key and parses it as an account file.
func (l *s3Loader) Load(ctx context.Context, key string) (AccountSet, error) {
	obj, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("failed to fetch account file")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer obj.Body.Close()

	parsed, err := readAccounts(ctx, obj.Body)
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("failed to parse account file")
		return nil, fmt.Errorf("failed to read account file from S3 %s: %w", key, err)
	}

	l.logger.Info().
		Str("key", key).
		Int("accounts_loaded", parsed.set.Size()).
		Int("skipped_lines", parsed.skipped).
		Msg("account file loaded from S3")

	return parsed.set, nil
}
