package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"sistema_mdu/internal/config"
	"sistema_mdu/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Exporter uploads exported files to a single bucket (AWS S3 or MinIO).
type S3Exporter struct {
	client *s3.Client
	bucket string
}

var _ interfaces.IObjectStorage = (*S3Exporter)(nil)

// NewS3Exporter builds the client from the shared AWS configuration. An
// optional httpClient replaces the transport (tests use a fake one).
func NewS3Exporter(awsCfg aws.Config, cfg config.ExportConfig, httpClient *http.Client) (*S3Exporter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if httpClient != nil {
			o.HTTPClient = httpClient
		}
	})
	return &S3Exporter{client: client, bucket: cfg.Bucket}, nil
}

// Put stores body under key, replacing any previous object, and returns its
// s3:// location.
func (s *S3Exporter) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	// The SDK needs a seekable body to sign plain-HTTP endpoints.
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read export body: %w", err)
	}
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
