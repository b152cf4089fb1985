// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the S3-backed dataset cache
// (core/blob) can be exercised against the testify mock in core/storage/mocks. Both AWS S3 and
// self-hosted MinIO endpoints are supported.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
