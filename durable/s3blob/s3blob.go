// Package s3blob stores each entry as an S3 object.
package s3blob

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/aligent/hybridstore/durable"
)

var ErrNilClient = errors.New("s3blob: nil client")

// Blob maps durable keys to objects named <prefix><key><suffix> in a single
// bucket. The S3 client is shared and owned by the caller; Close is a no-op.
type Blob struct {
	c      *s3.Client
	bucket string
	prefix string
	suffix string
}

var _ durable.Store = (*Blob)(nil)

type Config struct {
	Client *s3.Client
	Bucket string
	Prefix string // optional object key prefix, e.g. "storage/"
	Suffix string // object key suffix; "" => ".json"
}

func New(cfg Config) (*Blob, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3blob: bucket is required")
	}
	return &Blob{
		c:      cfg.Client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		suffix: coalesceSuffix(cfg.Suffix),
	}, nil
}

func coalesceSuffix(s string) string {
	if s == "" {
		return ".json"
	}
	return s
}

func (b *Blob) objectKey(key string) string { return b.prefix + key + b.suffix }

func (b *Blob) Read(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := b.c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.objectKey(key)),
	})
	var notFound *types.NoSuchKey
	if errors.As(err, &notFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer out.Body.Close()
	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (b *Blob) Write(ctx context.Context, key string, payload []byte) error {
	_, err := b.c.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.objectKey(key)),
		Body:   bytes.NewReader(payload),
	})
	return err
}

// Delete is idempotent: S3 treats deleting a missing object as success.
func (b *Blob) Delete(ctx context.Context, key string) error {
	_, err := b.c.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(b.objectKey(key)),
	})
	return err
}

func (b *Blob) Close(context.Context) error { return nil }
