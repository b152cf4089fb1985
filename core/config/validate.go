package config

import (
	"errors"
	"fmt"

	"feather/core/blob"
	"feather/core/database"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks the values that would otherwise fail late, after datasets started loading.
func (c *Config) Validate() error {
	if !c.Cache.IsValidDriver() {
		return fmt.Errorf("%w: cache.driver %q (supported: file, s3, redis)", ErrInvalid, c.Cache.Driver)
	}
	if c.Cache.Driver == blob.DriverFile && c.Cache.Dir == "" {
		return fmt.Errorf("%w: cache.dir is required for the file driver", ErrInvalid)
	}
	if c.Cache.Driver == blob.DriverS3 && c.Storage.Bucket == "" {
		return fmt.Errorf("%w: storage.bucket is required for the s3 driver", ErrInvalid)
	}

	switch c.Database.Driver {
	case database.DriverMySQL, database.DriverSQLite:
	default:
		return fmt.Errorf("%w: database.driver %q (supported: mysql, sqlite)", ErrInvalid, c.Database.Driver)
	}

	if c.Fetch.Retries < 0 {
		return fmt.Errorf("%w: fetch.retries must be >= 0, got %d", ErrInvalid, c.Fetch.Retries)
	}
	if c.Fetch.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: fetch.timeout_seconds must be >= 1, got %d", ErrInvalid, c.Fetch.TimeoutSeconds)
	}

	if c.Sources.CatalogURL == "" || c.Sources.PricesURL == "" {
		return fmt.Errorf("%w: sources.catalog_url and sources.prices_url are required", ErrInvalid)
	}

	return nil
}
