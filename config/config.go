package config

import (
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer         HttpServerConfig
	Database           DatabaseConfig
	Redis              RedisConfig
	MessageStream      MessageStreamConfig
	HttpClient         HttpClientConfig
	JWT                JWTConfig
	PaymentGateway     PaymentGatewayConfig
	DocumentExtraction DocumentExtractionConfig
	Upload             UploadConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_PORT" default:"3000"`
}

type DatabaseConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	Username      string `envconfig:"DB_USERNAME" default:"postgres"`
	Password      string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name          string `envconfig:"DB_NAME" default:"umrah_service"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	MigrationPath string `envconfig:"DB_MIGRATION_PATH" default:"file://migrations"`
	MaxOpenConns  int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns  int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	Username string `envconfig:"AMQP_USERNAME" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type               string        `envconfig:"HTTP_CLIENT_BREAKER_TYPE" default:"consecutive"`
	Timeout            time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"10s"`
	ConsecutiveFailure int64         `envconfig:"HTTP_CLIENT_CONSECUTIVE_FAILURE" default:"5"`
	ErrorRate          float64       `envconfig:"HTTP_CLIENT_ERROR_RATE" default:"0.65"`
	ErrorRateMinSample int64         `envconfig:"HTTP_CLIENT_ERROR_RATE_MIN_SAMPLE" default:"100"`
}

type JWTConfig struct {
	SecretKey string        `envconfig:"JWT_SECRET_KEY" default:"secret"`
	TokenTTL  time.Duration `envconfig:"JWT_TOKEN_TTL" default:"24h"`
}

type PaymentGatewayConfig struct {
	BaseURL string `envconfig:"PAYMENT_GATEWAY_BASE_URL" default:"http://localhost:4242"`
}

type DocumentExtractionConfig struct {
	BaseURL string `envconfig:"DOCUMENT_EXTRACTION_BASE_URL" default:"http://localhost:5001"`
}

type UploadConfig struct {
	BaseDir string `envconfig:"UPLOAD_BASE_DIR" default:"./uploads"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to process config: %v", err)
	}
	return &cfg
}
