// Package archive uploads generated reports to an S3-compatible bucket.
package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"ukkm-backend/internal/config"
	"ukkm-backend/internal/metrics"
)

var ErrDisabled = errors.New("report archive is not configured")

// ObjectPutter is the part of the S3 client the archive needs
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Archive struct {
	client ObjectPutter
	bucket string
	prefix string
	logger *zap.Logger
}

// New returns a disabled archive when no bucket is configured
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Archive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !cfg.ArchiveEnabled() {
		return &Archive{logger: logger, prefix: cfg.Archive.Prefix}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Archive.Region),
	}
	if cfg.Archive.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("configure archive client: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Archive.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, cfg.Archive.Bucket, cfg.Archive.Prefix, logger), nil
}

// NewWithClient builds an archive over an existing client
func NewWithClient(client ObjectPutter, bucket, prefix string, logger *zap.Logger) *Archive {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Archive{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Enabled reports whether uploads go anywhere
func (a *Archive) Enabled() bool {
	return a.client != nil && a.bucket != ""
}

// Key joins name under the configured prefix
func (a *Archive) Key(name string) string {
	if a.prefix == "" {
		return name
	}
	return path.Join(a.prefix, name)
}

// Put uploads body under key and returns the key
func (a *Archive) Put(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if !a.Enabled() {
		return "", ErrDisabled
	}

	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		metrics.ArchiveUploads.WithLabelValues("error").Inc()
		a.logger.Error("archive upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	metrics.ArchiveUploads.WithLabelValues("ok").Inc()
	a.logger.Info("archived", zap.String("bucket", a.bucket), zap.String("key", key), zap.Int("bytes", len(body)))
	return key, nil
}
