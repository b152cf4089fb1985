package fetch

// Config holds configuration for remote dataset downloads.
type Config struct {
	// TimeoutSeconds bounds a single download attempt.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// Retries is the number of extra attempts after a retryable failure.
	Retries int `mapstructure:"retries" default:"2"`
	// RetryBackoffMillis is the base delay between attempts; attempt n waits n times this value.
	RetryBackoffMillis int `mapstructure:"retry_backoff_millis" default:"1000"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"feather/1.0"`
}
