package blob

import (
	"context"
	"fmt"
	"strings"

	"feather/core/storage"
)

// Store reads and writes whole dataset payloads by id.
// Writes replace the previous payload entirely.
type Store interface {
	// Read returns the payload stored under id, or ErrNotFound.
	Read(ctx context.Context, id string) ([]byte, error)
	// Write stores data under id, overwriting any previous payload.
	Write(ctx context.Context, id string, data []byte) error
	// Exists reports whether a payload is stored under id.
	Exists(ctx context.Context, id string) (bool, error)
}

// New creates the store selected by cfg.Driver. The object storage client and bucket are only
// used by the s3 driver and may be nil/empty otherwise.
func New(ctx context.Context, cfg Config, client storage.Client, bucket string) (Store, error) {
	switch cfg.Driver {
	case DriverFile:
		return NewFileStore(cfg.Dir), nil
	case DriverS3:
		if client == nil {
			return nil, fmt.Errorf("s3 cache driver requires a storage client")
		}
		return NewS3Store(ctx, client, bucket, cfg.Prefix)
	case DriverRedis:
		return NewRedisStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q (supported: file, s3, redis)", ErrUnknownDriver, cfg.Driver)
	}
}

func validateID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}
