package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/hupe1980/roletree/codec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the CLI configuration, read from ROLETREE_* variables.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"` // text or json

	Codec       string `envconfig:"CODEC" default:"go-json"`
	Compression string `envconfig:"COMPRESSION" default:""` // empty derives it from the name
	Workers     int    `envconfig:"WORKERS" default:"0"`    // 0 means GOMAXPROCS
	IOLimit     int64  `envconfig:"IO_LIMIT" default:"0"`   // bytes per second, 0 disables

	Store    string `envconfig:"STORE" default:"local"` // local, s3 or minio
	Root     string `envconfig:"ROOT" default:"."`
	Bucket   string `envconfig:"BUCKET"`
	Prefix   string `envconfig:"PREFIX"`
	Region   string `envconfig:"REGION"`
	Endpoint string `envconfig:"ENDPOINT"`

	MinioAccessKey string `envconfig:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `envconfig:"MINIO_SECRET_KEY"`
	MinioSecure    bool   `envconfig:"MINIO_SECURE" default:"false"`

	MetricsAddr string `envconfig:"METRICS_ADDR"` // empty disables the /metrics endpoint
}

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidCodec     = errors.New("invalid codec")
	ErrInvalidWorkers   = errors.New("workers must not be negative")
	ErrInvalidIOLimit   = errors.New("io limit must not be negative")
	ErrInvalidStore     = errors.New("invalid store")
	ErrMissingBucket    = errors.New("bucket is required")
	ErrMissingEndpoint  = errors.New("endpoint is required")
)

// LoadConfig reads envFile, if it exists, and then the environment.
// Variables already set take precedence over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("ROLETREE", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, ValidateConfig(cfg)
}

// ValidateConfig checks cfg for inconsistent settings.
func ValidateConfig(cfg Config) error {
	if _, err := cfg.Level(); err != nil {
		return err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.LogFormat)
	}
	if _, err := codec.ByName(cfg.Codec); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCodec, err)
	}
	if _, err := codec.ParseCompression(cfg.Compression); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return ErrInvalidWorkers
	}
	if cfg.IOLimit < 0 {
		return ErrInvalidIOLimit
	}

	switch cfg.Store {
	case "local":
	case "s3":
		if cfg.Bucket == "" {
			return fmt.Errorf("s3: %w", ErrMissingBucket)
		}
	case "minio":
		if cfg.Bucket == "" {
			return fmt.Errorf("minio: %w", ErrMissingBucket)
		}
		if cfg.Endpoint == "" {
			return fmt.Errorf("minio: %w", ErrMissingEndpoint)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStore, cfg.Store)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return l, nil
}
