// Package objstore stores issue photos in MinIO (or any S3-compatible store).
package objstore

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// Client wraps a MinIO client bound to a single bucket.
type Client struct {
	mc      *minio.Client
	bucket  string
	baseURL string
	log     *slog.Logger
}

// NewClient creates a client from storage config. It does not contact the server.
func NewClient(cfg config.StorageConfig, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("objstore: endpoint is required")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("objstore: access key and secret key are required")
	}

	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("objstore: create client: %w", err)
	}

	return &Client{
		mc:      mc,
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
		log:     logger.With("component", "objstore"),
	}, nil
}

func publicBaseURL(cfg config.StorageConfig) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + cfg.Endpoint + "/" + cfg.Bucket
}

// EnsureBucket creates the bucket if it does not exist.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("objstore: check bucket: %w", err)
	}
	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("objstore: create bucket: %w", err)
		}
		c.log.Info("bucket created", slog.String("bucket", c.bucket))
	}
	return nil
}

// Ping checks that the bucket is reachable. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.mc.BucketExists(ctx, c.bucket)
	return err
}

// StorePhoto uploads p under issues/<issueID>/<n><ext> and returns its public URL.
func (c *Client) StorePhoto(ctx context.Context, issueID uuid.UUID, n int, p photo.Photo) (string, error) {
	key := PhotoKey(issueID, n, p.Extension)
	_, err := c.mc.PutObject(ctx, c.bucket, key, bytes.NewReader(p.Data), int64(len(p.Data)), minio.PutObjectOptions{
		ContentType: p.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("objstore: upload %s: %w", key, err)
	}
	return c.baseURL + "/" + key, nil
}

// DeletePhotos removes every object stored for issueID. Used to undo
// uploads when the report itself could not be saved.
func (c *Client) DeletePhotos(ctx context.Context, issueID uuid.UUID) error {
	prefix := fmt.Sprintf("issues/%s/", issueID)
	for obj := range c.mc.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return fmt.Errorf("objstore: list %s: %w", prefix, obj.Err)
		}
		if err := c.mc.RemoveObject(ctx, c.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("objstore: delete %s: %w", obj.Key, err)
		}
	}
	return nil
}

// PhotoKey builds the object key for the n-th photo of an issue.
func PhotoKey(issueID uuid.UUID, n int, ext string) string {
	return fmt.Sprintf("issues/%s/%d%s", issueID, n, ext)
}
