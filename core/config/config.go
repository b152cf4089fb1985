package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"feather/core/blob"
	"feather/core/database"
	"feather/core/fetch"
	"feather/core/logger"
	"feather/core/server"
	"feather/core/storage"
	"feather/feature/pricing"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage used by the s3 cache driver.
	Storage storage.Config `mapstructure:"storage"`
	// Cache selects where raw dataset payloads are kept.
	Cache blob.Config `mapstructure:"cache"`
	// Fetch holds configuration for remote downloads.
	Fetch fetch.Config `mapstructure:"fetch"`
	// Sources holds the dataset endpoints and currency policy.
	Sources pricing.Config `mapstructure:"sources"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the price history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig reads the .env file in path (when present) over the process environment, applies
// the struct tag defaults and validates the result.
func LoadConfig(path string) (*Config, error) {
	// Missing .env is fine outside development.
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()
	bindValues(v, Config{}, "")

	// SOURCES_PRICES_URL -> sources.prices_url
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindValues registers every 'mapstructure' key of the struct with its 'default' tag value.
// Keys are registered even when the default is empty, otherwise AutomaticEnv never sees them.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for _, field := range reflect.VisibleFields(t) {
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.Zero(field.Type).Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
