package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"vidshare_backend/internal/feature/videos/usecase"
)

// S3Config holds configuration for the S3-compatible content store.
// A MinIO endpoint works the same way via BaseEndpoint.
type S3Config struct {
	Bucket       string
	Region       string
	BaseEndpoint string // Optional; set for MinIO or other S3-compatible stores
	AccessKey    string
	SecretKey    string
}

// LoadS3Config loads S3 content store configuration from environment variables.
// Bucket being empty means the S3 store is not configured.
func LoadS3Config() S3Config {
	return S3Config{
		Bucket:       os.Getenv("S3_BUCKET"),
		Region:       os.Getenv("S3_REGION"),
		BaseEndpoint: os.Getenv("S3_BASE_ENDPOINT"),
		AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		SecretKey:    os.Getenv("S3_SECRET_KEY"),
	}
}

// S3Store implements usecase.ContentStore against an S3-compatible bucket.
type S3Store struct {
	client *s3.Client
	bucket string
}

// Compile-time check to ensure S3Store implements ContentStore.
var _ usecase.ContentStore = (*S3Store)(nil)

// NewS3Store builds an S3 client from the given configuration.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(loadCtx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, bucket: cfg.Bucket}, nil
}

// Save uploads the content under the handle. S3 PUTs are atomic per key, so
// an interrupted upload never leaves partial bytes visible.
func (s *S3Store) Save(ctx context.Context, name string, content io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   content,
	})
	if err != nil {
		return fmt.Errorf("failed to put object %q: %w", name, err)
	}
	return nil
}

// Open retrieves the content for the handle.
func (s *S3Store) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %q: %w", name, err)
	}
	return out.Body, nil
}
