// Package blob provides the whole-payload cache store behind the dataset loaders.
//
// Every dataset (catalog, vendor prices, exchange rates, doppler phases) keeps its most recently
// fetched raw payload verbatim under a fixed id. The Store interface has three backends:
//
//   - file: one file per id in a directory, replaced through temp file + rename
//   - s3: one object per id in a MinIO/S3 bucket (core/storage)
//   - redis: one key per id
//
// A missing payload is reported as ErrNotFound so loaders can tell a cache miss from an I/O failure.
package blob
