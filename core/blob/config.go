package blob

// Config holds configuration for the dataset cache store.
type Config struct {
	// Driver selects the backend (file, s3, redis).
	Driver string `mapstructure:"driver" default:"file"`
	// Dir is the directory used by the file driver.
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is prepended to object names (s3) and keys (redis).
	Prefix string `mapstructure:"prefix" default:"cache/"`
	// RedisAddr is the host:port of the redis server.
	RedisAddr string `mapstructure:"redis_addr" default:"localhost:6379"`
	// RedisPassword is the optional redis password.
	RedisPassword string `mapstructure:"redis_password" default:""`
	// RedisDB is the redis logical database.
	RedisDB int `mapstructure:"redis_db" default:"0"`
}

const (
	DriverFile  = "file"
	DriverS3    = "s3"
	DriverRedis = "redis"
)

// IsValidDriver checks if the configured driver is supported.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverFile, DriverS3, DriverRedis:
		return true
	default:
		return false
	}
}
