package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"domainsmarket/internal/config"
)

// Store holds listing and profile media in an S3 bucket, keyed by
// <folder>/<uuid><ext>. The key doubles as the public_id clients reference
// when deleting media.
type Store struct {
	client *s3.Client
	bucket string
	base   string
}

// NewClient builds the S3 client. A non-empty EndpointURL (MinIO/LocalStack)
// switches to path-style addressing.
func NewClient(cfg config.StorageConfig) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if cfg.EndpointURL != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true
		})
	}

	return s3.NewFromConfig(awsCfg, clientOpts...), nil
}

func NewStore(client *s3.Client, cfg config.StorageConfig) *Store {
	base := cfg.EndpointURL
	if base == "" {
		base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	} else {
		base = strings.TrimRight(base, "/") + "/" + cfg.Bucket
	}
	return &Store{client: client, bucket: cfg.Bucket, base: base}
}

// Upload streams a file to the bucket and returns its URL and object key.
func (s *Store) Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (url, key string, err error) {
	key = folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(filename))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", "", fmt.Errorf("s3 put object: %w", err)
	}
	return s.base + "/" + key, key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}
