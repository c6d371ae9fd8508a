// Copyright (c) 2026 CollegeSathi. All rights reserved.

/*
Package objstore provides a managed client for S3-compatible object storage.

It stores the binary assets of the platform, currently college logo images,
and hands back the public URL callers persist alongside the owning record.

Core Responsibilities:

  - Durability: Assets survive independently of the application database.
  - Addressing: Every upload yields a stable, publicly reachable URL.
  - Portability: Any S3-compatible provider works (AWS, Spaces, MinIO).

This infrastructure component keeps binary payloads out of PostgreSQL.
*/
package objstore

import (
	"bytes"
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Opinionated default timeout for a single object operation.
const operationTimeout = 30 * time.Second

// Config carries the credentials and addressing for one bucket.
type Config struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string

	// CDNBase, when set, is preferred over the bucket endpoint when building
	// public URLs (e.g. "https://cdn.collegesathi.com").
	CDNBase string
}

// Client wraps an S3-compatible bucket behind upload/delete semantics.
type Client struct {
	s3Client *s3.S3
	bucket   string
	endpoint string
	cdnBase  string
	logger   *slog.Logger
}

// NewClient builds a Client from static credentials and validates nothing:
// S3-compatible providers reject bad credentials per request, not per session.
//
// # Parameters
//   - config: Bucket credentials and addressing.
//   - logger: Structured logger for object storage events.
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	awsSession, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(config.AccessKey, config.SecretKey, ""),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("objstore: create session: %w", err)
	}

	logger.Info("object storage client initialized",
		slog.String("bucket", config.Bucket),
		slog.String("endpoint", config.Endpoint),
	)

	return &Client{
		s3Client: s3.New(awsSession),
		bucket:   config.Bucket,
		endpoint: config.Endpoint,
		cdnBase:  config.CDNBase,
		logger:   logger,
	}, nil
}

/*
Upload stores an object under the given key with public-read access and
returns its public URL.

Parameters:
  - context: Request-scoped context, bounded further by operationTimeout.
  - key: Full object key, including any prefix (e.g. "logos/ku-som-17.png").
  - data: Raw object bytes.
  - contentType: MIME type served back to browsers.

Returns:
  - string: Public URL of the stored object.
  - error: Wrapped provider error on failure.
*/
func (client *Client) Upload(context stdctx.Context, key string, data []byte, contentType string) (string, error) {
	context, cancel := stdctx.WithTimeout(context, operationTimeout)
	defer cancel()

	_, err := client.s3Client.PutObjectWithContext(context, &s3.PutObjectInput{
		Bucket:      aws.String(client.bucket),
		Key:         aws.String(key),
		Body:        aws.ReadSeekCloser(bytes.NewReader(data)),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("objstore: upload %q: %w", key, err)
	}

	client.logger.Info("object uploaded",
		slog.String("key", key),
		slog.Int("size_bytes", len(data)),
	)
	return client.PublicURL(key), nil
}

/*
Delete removes an object. Deleting a missing key is not an error; providers
treat it as a successful no-op and so does this client.

Parameters:
  - context: Request-scoped context, bounded further by operationTimeout.
  - key: Full object key to remove.

Returns:
  - error: Wrapped provider error on failure.
*/
func (client *Client) Delete(context stdctx.Context, key string) error {
	context, cancel := stdctx.WithTimeout(context, operationTimeout)
	defer cancel()

	_, err := client.s3Client.DeleteObjectWithContext(context, &s3.DeleteObjectInput{
		Bucket: aws.String(client.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objstore: delete %q: %w", key, err)
	}
	return nil
}

// PublicURL builds the public address of a stored key without any I/O.
func (client *Client) PublicURL(key string) string {
	if client.cdnBase != "" {
		return fmt.Sprintf("%s/%s", client.cdnBase, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", client.bucket, client.endpoint, key)
}
