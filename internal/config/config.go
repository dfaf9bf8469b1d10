package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	Mode           string   `mapstructure:"mode"` // gin mode: debug, release, test
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

// S3Config is optional. Profile photos are stored inline when BucketName is empty.
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
}

// Enabled reports whether object storage is configured.
func (c S3Config) Enabled() bool {
	return c.BucketName != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Validate reports every missing required key at once.
func (c Config) Validate() error {
	var missing []string
	if c.Database.URI == "" {
		missing = append(missing, "database.uri (DATABASE_URI or MONGO_URL)")
	}
	if c.Database.Name == "" {
		missing = append(missing, "database.name (DATABASE_NAME or DB_NAME)")
	}
	if c.JWT.Secret == "" {
		missing = append(missing, "jwt.secret (JWT_SECRET)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// LoadConfig reads configuration from <path>/config.yaml, <path>/.env and the
// environment, in increasing order of precedence. It fails when a required key
// is missing.
func LoadConfig(path string) (config Config, err error) {
	// .env only fills variables that are not already set.
	if err = godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Use replacer for nested keys e.g., server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Older deployments use these names.
	_ = v.BindEnv("database.uri", "DATABASE_URI", "MONGO_URL")
	_ = v.BindEnv("database.name", "DATABASE_NAME", "DB_NAME")
	_ = v.BindEnv("jwt.secret", "JWT_SECRET")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("jwt.expiration", "30m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("seed.enabled", true)
	// Registered so AutomaticEnv can see S3_* without a config file.
	for _, k := range []string{"endpoint", "region", "access_key_id", "secret_access_key", "bucket_name"} {
		v.SetDefault("s3."+k, "")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config file: %w", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	return config, config.Validate()
}
