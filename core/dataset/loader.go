package dataset

import (
	"context"
	"fmt"

	"feather/core/blob"
	"feather/core/logger"
	"feather/core/metrics"

	"go.uber.org/zap"
)

// Origin tells where a loaded value came from.
type Origin string

const (
	OriginCache  Origin = "cache"
	OriginRemote Origin = "remote"
)

// ParseFunc turns a raw payload into the dataset value.
type ParseFunc[T any] func(data []byte) (T, error)

// FetchFunc downloads the raw payload to persist. Any transformation that must happen before
// persisting (such as decompression) happens here.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Loader is a cache-backed dataset load: it prefers the payload stored under CacheID and only
// contacts the remote source when that payload is absent or unparsable.
type Loader[T any] struct {
	// Name identifies the dataset in logs and metrics.
	Name string
	// CacheID is the blob id holding the raw payload.
	CacheID string
	// Parse decodes a payload.
	Parse ParseFunc[T]
	// Fetch downloads a fresh payload. Nil means the dataset is cache-only.
	Fetch FetchFunc
	// Store holds the cached payload.
	Store blob.Store
	// Logger receives load progress.
	Logger *zap.Logger
}

// Load returns the cached value, refreshing from the remote source on a cache miss.
func (l *Loader[T]) Load(ctx context.Context) (T, Origin, error) {
	log := l.logger()

	value, err := l.ReadCache(ctx)
	if err == nil {
		log.Info("Loaded local cache", zap.String("cache_id", l.CacheID))
		metrics.RecordDatasetLoad(l.Name, string(OriginCache), nil)
		return value, OriginCache, nil
	}
	log.Info("Could not use local cache", zap.String("cache_id", l.CacheID), zap.Error(err))

	value, err = l.Refresh(ctx)
	if err != nil {
		return value, OriginRemote, err
	}
	return value, OriginRemote, nil
}

// ReadCache reads and parses the cached payload. Any failure is reported as ErrCacheMiss.
func (l *Loader[T]) ReadCache(ctx context.Context) (T, error) {
	var zero T

	data, err := l.Store.Read(ctx, l.CacheID)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrCacheMiss, err)
	}

	value, err := l.Parse(data)
	if err != nil {
		return zero, fmt.Errorf("%w: %w: %w", ErrCacheMiss, ErrParse, err)
	}
	return value, nil
}

// Refresh downloads, parses and persists a fresh payload, skipping the cache read.
// The cache is only overwritten after the new payload parsed successfully.
func (l *Loader[T]) Refresh(ctx context.Context) (T, error) {
	var zero T
	log := l.logger()

	if l.Fetch == nil {
		err := fmt.Errorf("%s: %w", l.Name, ErrNoRemote)
		metrics.RecordDatasetLoad(l.Name, string(OriginRemote), err)
		return zero, err
	}

	data, err := l.Fetch(ctx)
	if err != nil {
		log.Error("Failed to fetch dataset", zap.Error(err))
		metrics.RecordDatasetLoad(l.Name, string(OriginRemote), err)
		return zero, fmt.Errorf("%s: %w", l.Name, err)
	}

	value, err := l.Parse(data)
	if err != nil {
		log.Error("Fetched dataset could not be parsed", zap.Error(err))
		metrics.RecordDatasetLoad(l.Name, string(OriginRemote), err)
		return zero, fmt.Errorf("%w: %s: %w", ErrParse, l.Name, err)
	}

	if err := l.Store.Write(ctx, l.CacheID, data); err != nil {
		log.Warn("Failed to persist dataset cache", zap.String("cache_id", l.CacheID), zap.Error(err))
	} else {
		log.Info("Wrote new cache", zap.String("cache_id", l.CacheID), zap.Int("bytes", len(data)))
	}

	metrics.RecordDatasetLoad(l.Name, string(OriginRemote), nil)
	return value, nil
}

func (l *Loader[T]) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return logger.WithDataset(l.Logger, l.Name)
}

// LoadOrRefresh is the one-shot form of Loader.Load.
func LoadOrRefresh[T any](ctx context.Context, store blob.Store, cacheID string, parse ParseFunc[T], fetch FetchFunc) (T, error) {
	l := &Loader[T]{Name: cacheID, CacheID: cacheID, Parse: parse, Fetch: fetch, Store: store}
	value, _, err := l.Load(ctx)
	return value, err
}
