package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/meridianstudio/site-backend/config"
)

// SignedURLTTL is how long upload responses stay readable. The buckets are
// private, so consumers get a time-limited presigned link instead of a
// public URL.
const SignedURLTTL = 365 * 24 * time.Hour

// bucketSuffixes maps the route-level bucket name to the suffix appended to
// the configured prefix. These four buckets are the only upload targets.
var bucketSuffixes = map[string]string{
	"project-images":     "project-images",
	"team-photos":        "team-photos",
	"testimonial-photos": "testimonial-photos",
	"blog-images":        "blog-images",
}

// Store wraps the S3 client used for site imagery.
type Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	prefix  string
}

// NewStore builds a Store from environment configuration. S3_ENDPOINT may
// point at any S3-compatible service; path-style addressing is used so
// self-hosted endpoints work.
func NewStore(ctx context.Context, cfg map[string]string) (*Store, error) {
	region := config.GetString(cfg, "S3_REGION", "us-east-1")
	endpoint := config.GetString(cfg, "S3_ENDPOINT", "")
	accessKey := config.GetString(cfg, "S3_ACCESS_KEY", "")
	secretKey := config.GetString(cfg, "S3_SECRET_KEY", "")
	prefix := config.GetString(cfg, "S3_BUCKET_PREFIX", "meridian-site")

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = awsv2.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		prefix:  prefix,
	}, nil
}

// BucketFor resolves a route-level bucket name to its full bucket name.
func (s *Store) BucketFor(name string) (string, bool) {
	suffix, ok := bucketSuffixes[name]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s-%s", s.prefix, suffix), true
}

// EnsureBuckets creates each of the fixed buckets if it does not already
// exist. Idempotent; safe to run on every startup.
func (s *Store) EnsureBuckets(ctx context.Context) error {
	for name := range bucketSuffixes {
		bucket, _ := s.BucketFor(name)

		_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: awsv2.String(bucket),
		})
		if err == nil {
			continue
		}

		_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: awsv2.String(bucket),
		})
		if err != nil {
			return fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
		log.Info().Str("bucket", bucket).Msg("Created storage bucket")
	}
	return nil
}

// Upload stores an object and returns its key.
func (s *Store) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      awsv2.String(bucket),
		Key:         awsv2.String(key),
		ContentType: awsv2.String(contentType),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s/%s: %w", bucket, key, err)
	}
	return key, nil
}

// SignedURL returns a presigned GET link valid for SignedURLTTL.
func (s *Store) SignedURL(ctx context.Context, bucket, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}, s3.WithPresignExpires(SignedURLTTL))
	if err != nil {
		return "", fmt.Errorf("presigning %s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}
