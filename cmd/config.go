package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"ordering"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	LogEnv   string `envconfig:"LOG_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL"`

	// ShardID is embedded in every order number issued by this instance.
	ShardID int `envconfig:"SHARD_ID" default:"1"`

	PaymentEnabled     bool          `envconfig:"PAYMENT_ENABLED" default:"false"`
	PaymentExpiry      time.Duration `envconfig:"PAYMENT_EXPIRY" default:"15m"`
	ExpiryJobSchedule  string        `envconfig:"EXPIRY_JOB_SCHEDULE" default:"0 * * * * *"`
	ExpiryJobBatchSize int           `envconfig:"EXPIRY_JOB_BATCH_SIZE" default:"100"`

	CatalogServiceURL   string        `envconfig:"CATALOG_SERVICE_URL" default:"http://localhost:8081"`
	AddressServiceURL   string        `envconfig:"ADDRESS_SERVICE_URL" default:"http://localhost:8082"`
	PaymentServiceURL   string        `envconfig:"PAYMENT_SERVICE_URL" default:"http://localhost:8083"`
	CollaboratorTimeout time.Duration `envconfig:"COLLABORATOR_TIMEOUT" default:"5s"`

	// KafkaBrokers is a comma separated list. Empty disables event publishing.
	KafkaBrokers          string `envconfig:"KAFKA_BROKERS"`
	KafkaOrderEventsTopic string `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"order-events"`
}

// LoadConfig reads envFile when it exists and then the process environment,
// which wins over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.PaymentExpiry <= 0 {
		errs = append(errs, fmt.Errorf("PAYMENT_EXPIRY must be positive, got %s", c.PaymentExpiry))
	}
	if c.CollaboratorTimeout <= 0 {
		errs = append(errs, fmt.Errorf("COLLABORATOR_TIMEOUT must be positive, got %s", c.CollaboratorTimeout))
	}
	if c.ExpiryJobBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("EXPIRY_JOB_BATCH_SIZE must be positive, got %d", c.ExpiryJobBatchSize))
	}
	return errors.Join(errs...)
}

// DSN is the postgres connection string for gorm and the migrator.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
