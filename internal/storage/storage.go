// Package storage keeps tenant images in an S3-compatible bucket.
// Everything is re-encoded to webp on the way in so the public pages
// serve one predictable format.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dalevdmerwe/salon-booking/internal/config"
)

const imageCacheControl = "max-age=3600"

type ImageStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	// Custom endpoint + path style for MinIO-style deployments.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &ImageStore{
		client:        s3.New(opts),
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}
}

// UploadTenantImage re-encodes r as webp and uploads it under the
// tenant's fixed key, replacing any previous image. Returns the
// public URL.
func (st *ImageStore) UploadTenantImage(
	ctx context.Context,
	tenantID string,
	r io.Reader,
) (string, error) {

	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	encoded, err := EncodeWebP(raw)
	if err != nil {
		return "", err
	}

	key := tenantImageKey(tenantID)

	_, err = st.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(st.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(encoded),
		ContentType:  aws.String("image/webp"),
		CacheControl: aws.String(imageCacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("upload tenant image: %w", err)
	}

	return st.PublicURL(key), nil
}

func (st *ImageStore) DeleteTenantImage(ctx context.Context, tenantID string) error {
	_, err := st.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(st.bucket),
		Key:    aws.String(tenantImageKey(tenantID)),
	})
	if err != nil {
		return fmt.Errorf("delete tenant image: %w", err)
	}

	return nil
}

func (st *ImageStore) PublicURL(key string) string {
	return st.publicBaseURL + "/" + key
}

func tenantImageKey(tenantID string) string {
	return fmt.Sprintf("tenants/%s/logo.webp", tenantID)
}
