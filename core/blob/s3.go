package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"feather/core/storage"

	"github.com/minio/minio-go/v7"
)

// S3Store keeps blobs as objects under a prefix in one bucket.
type S3Store struct {
	client storage.Client
	bucket string
	prefix string
}

// NewS3Store creates the store and makes sure the bucket exists.
func NewS3Store(ctx context.Context, client storage.Client, bucket, prefix string) (*S3Store, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}
	return &S3Store{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *S3Store) objectName(id string) string {
	return s.prefix + id
}

func (s *S3Store) Read(ctx context.Context, id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	reader, err := s.client.GetObject(ctx, s.bucket, s.objectName(id), minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", id, err)
	}
	defer reader.Close()

	// minio resolves the object lazily, so a missing key surfaces on the first read.
	data, err := io.ReadAll(reader)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read object %s: %w", id, err)
	}
	return data, nil
}

func (s *S3Store) Write(ctx context.Context, id string, data []byte) error {
	if err := validateID(id); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, s.bucket, s.objectName(id), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", id, err)
	}
	return nil
}

// Exists stats the single object; a missing key or bucket is not an error.
func (s *S3Store) Exists(ctx context.Context, id string) (bool, error) {
	if err := validateID(id); err != nil {
		return false, err
	}

	if _, err := s.client.StatObject(ctx, s.bucket, s.objectName(id), minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", id, err)
	}
	return true, nil
}
