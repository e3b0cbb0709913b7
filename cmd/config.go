package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, after loading an optional .env file.
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT"        envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"     envDefault:"ordertaking"`
	DBSslMode  string `env:"DB_SSLMODE"  envDefault:"disable"`

	AddressServiceURL     string        `env:"ADDRESS_SERVICE_URL,notEmpty"`
	AddressServiceTimeout time.Duration `env:"ADDRESS_SERVICE_TIMEOUT" envDefault:"3s"`

	KafkaHost                 string `env:"KAFKA_HOST,notEmpty"`
	KafkaOrderEventsTopic     string `env:"KAFKA_ORDER_EVENTS_TOPIC"     envDefault:"order-events"`
	KafkaAcknowledgmentsTopic string `env:"KAFKA_ACKNOWLEDGMENTS_TOPIC" envDefault:"order-acknowledgments"`

	RedisAddr      string        `env:"REDIS_ADDR"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	OutboxSchedule         string `env:"OUTBOX_SCHEDULE"          envDefault:"*/2 * * * * *"`
	OutboxBatchSize        int    `env:"OUTBOX_BATCH_SIZE"        envDefault:"100"`
	CatalogRefreshSchedule string `env:"CATALOG_REFRESH_SCHEDULE" envDefault:"0 */5 * * * *"`
}

// LoadConfig loads .env from the working directory when present, then parses the environment.
// Variables already set in the environment take precedence over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSslMode),
	}
	return u.String()
}
