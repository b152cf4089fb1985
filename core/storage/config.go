package storage

import "time"

// Config holds the object storage connection used by the s3 cache driver.
type Config struct {
	// Endpoint is host:port of the S3-compatible service; a scheme prefix is ignored.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey and SecretKey are static credentials.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL switches to https.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the dataset cache objects. It is created on first use.
	Bucket string `mapstructure:"bucket" default:"feather"`
	// Region is optional for minio.
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns TimeoutSeconds as a duration, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
