package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	LocalStore LocalStoreConfig `mapstructure:"local_store"`
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Storage    StorageConfig
	Tracing    TracingConfig   `mapstructure:"tracing"`
	CORS       CORSConfig      `mapstructure:"cors"`
	RateLimit  RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// LocalStoreConfig locates the on-device SQLite state file.
type LocalStoreConfig struct {
	Path string `mapstructure:"path"`
}

// DatabaseConfig configures the remote MySQL replica. Remote sync is
// optional: with Enabled false the tracker runs local-only.
type DatabaseConfig struct {
	Enabled   bool `mapstructure:"enabled"`
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	PublicBase    string `mapstructure:"public_base"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("DSA_TRACKER")
	viper.AutomaticEnv()

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Local store
	viper.BindEnv("local_store.path", "LOCAL_STORE_PATH")

	// Remote database
	viper.BindEnv("database.enabled", "DATABASE_ENABLED")
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.local_path", "STORAGE_LOCAL_PATH")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	if cfg.LocalStore.Path == "" {
		cfg.LocalStore.Path = filepath.Join("data", "tracker.db")
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
