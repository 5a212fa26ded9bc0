package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultRabbitMQExchange = "kitchenpos.events"
	defaultOutboxBatchSize  = 100
)

type Config struct {
	HTTPPort         string
	DBDriver         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	SQLitePath       string
	RabbitMQURL      string
	RabbitMQExchange string
	OutboxSchedule   string
	OutboxBatchSize  int
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile are loaded first when the file exists; variables already set in the
// environment win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	batchSize := defaultOutboxBatchSize
	if raw := os.Getenv("OUTBOX_BATCH_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE: %w", err)
		}
		batchSize = n
	}

	config := Config{
		HTTPPort:         os.Getenv("HTTP_PORT"),
		DBDriver:         getenv("DB_DRIVER", DriverPostgres),
		DBHost:           os.Getenv("DB_HOST"),
		DBPort:           getenv("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBName:           os.Getenv("DB_NAME"),
		DBSslMode:        getenv("DB_SSLMODE", "disable"),
		SQLitePath:       os.Getenv("SQLITE_PATH"),
		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getenv("RABBITMQ_EXCHANGE", defaultRabbitMQExchange),
		OutboxSchedule:   os.Getenv("OUTBOX_SCHEDULE"),
		OutboxBatchSize:  batchSize,
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.HTTPPort == "" {
		errs = append(errs, missing("HTTP_PORT"))
	}

	switch c.DBDriver {
	case DriverPostgres:
		if c.DBHost == "" {
			errs = append(errs, missing("DB_HOST"))
		}
		if c.DBUser == "" {
			errs = append(errs, missing("DB_USER"))
		}
		if c.DBName == "" {
			errs = append(errs, missing("DB_NAME"))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, missing("SQLITE_PATH"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER %q is not supported", c.DBDriver))
	}

	if c.RabbitMQURL == "" {
		errs = append(errs, missing("RABBITMQ_URL"))
	}

	if c.OutboxBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.OutboxBatchSize))
	}

	return errors.Join(errs...)
}

// PostgresDSN builds the connection string for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func missing(key string) error {
	return fmt.Errorf("%s is required", key)
}
