package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTP
	Logger    Logger
	Postgres  Postgres
	Kafka     Kafka
	Redis     Redis
	Numbering Numbering
	Jobs      Jobs
}

type HTTP struct {
	Port             int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled    bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey           string `env:"HTTP_API_KEY" envDefault:"dev"`
	JWTSecret        string `env:"HTTP_JWT_SECRET" envDefault:""`
	JWTPublicKeyPath string `env:"HTTP_JWT_PUBLIC_KEY_PATH" envDefault:""`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	InvoiceEventsTopic string   `env:"KAFKA_INVOICE_EVENTS_TOPIC" envDefault:"invoice-events"`
	PaymentsTopic      string   `env:"KAFKA_PAYMENTS_TOPIC" envDefault:""`
	ConsumerGroup      string   `env:"KAFKA_CONSUMER_GROUP" envDefault:"invoicing"`
}

type Redis struct {
	Addr        string        `env:"REDIS_ADDR" envDefault:""`
	Password    string        `env:"REDIS_PASSWORD" envDefault:""`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	TemplateTTL time.Duration `env:"REDIS_TEMPLATE_TTL" envDefault:"24h"`
}

type Numbering struct {
	MaxRetries int `env:"NUMBERING_MAX_RETRIES" envDefault:"5"`
}

type Jobs struct {
	TotalsAuditEnabled  bool          `env:"JOB_TOTALS_AUDIT_ENABLED" envDefault:"true"`
	TotalsAuditInterval time.Duration `env:"JOB_TOTALS_AUDIT_INTERVAL" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
