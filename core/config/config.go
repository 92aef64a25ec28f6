package config

import (
	"reflect"
	"strings"

	"font-catalog/core/database"
	"font-catalog/core/logger"
	"font-catalog/core/server"
	"font-catalog/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Font source backends.
const (
	SourceDirs     = "dirs"
	SourceBucket   = "bucket"
	SourceDatabase = "database"
)

// Fonts holds configuration for the font enumeration source.
type Fonts struct {
	// Source selects the enumeration backend: dirs (scan font directories),
	// bucket (object storage) or database (font registry).
	Source string `mapstructure:"source" default:"dirs"`
	// Dirs is a comma-separated list of directories for the dirs source.
	// Empty means the platform's default font directories.
	Dirs string `mapstructure:"dirs" default:""`
}

// IsValidSource checks if the configured font source is valid.
func (f Fonts) IsValidSource() bool {
	switch f.Source {
	case SourceDirs, SourceBucket, SourceDatabase:
		return true
	default:
		return false
	}
}

// DirList splits the configured directory list.
func (f Fonts) DirList() []string {
	if f.Dirs == "" {
		return nil
	}
	parts := strings.Split(f.Dirs, ",")
	dirs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the font registry database.
	Database database.Config `mapstructure:"database"`
	// Fonts holds configuration for the font enumeration source.
	Fonts Fonts `mapstructure:"fonts"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists; ignore the error if it doesn't
	// (e.g. production).
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values
// in Viper based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
