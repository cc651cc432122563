package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Store drivers.
const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080" validate:"gt=0,lt=65536"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	Store  StoreConfig
	AWS    AWSConfig
	Export ExportConfig
	Auth   AuthConfig
}

type StoreConfig struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"dynamodb" validate:"oneof=dynamodb sqlite memory"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"mdu.db"`
}

// AWSConfig is shared by the DynamoDB store and the S3 export sink.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1" validate:"required"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	TablePrefix      string `env:"DYNAMODB_TABLE_PREFIX" envDefault:"mdu_"`
	AutoCreate       bool   `env:"DYNAMODB_AUTO_CREATE" envDefault:"true"`
}

// ExportConfig enables uploads of exported files when Bucket is set.
type ExportConfig struct {
	Bucket    string `env:"EXPORT_BUCKET"`
	Endpoint  string `env:"S3_ENDPOINT" validate:"omitempty,url"`
	PathStyle bool   `env:"S3_PATH_STYLE"`
}

type AuthConfig struct {
	JWTSecret   string        `env:"AUTH_JWT_SECRET" validate:"required,min=32"`
	TokenTTL    time.Duration `env:"AUTH_TOKEN_TTL" envDefault:"1h" validate:"gt=0"`
	MinPassword int           `env:"AUTH_MIN_PASSWORD" envDefault:"6" validate:"gte=1"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
