package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	Kafka          Kafka
	Alrajhi        Alrajhi
	Tamara         Tamara
	Push           Push
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	// BackCashPct is the percentage of a settled total deposited back
	// to the customer's wallet.
	BackCashPct float64 `env:"BACK_CASH_PCT" envDefault:"0"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	OrderEventsTopic   string   `env:"KAFKA_ORDER_EVENTS_TOPIC" envDefault:"booking.order-events"`
	PaymentEventsTopic string   `env:"KAFKA_PAYMENT_EVENTS_TOPIC" envDefault:"booking.payment-events"`
	ConsumerGroupID    string   `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"booking-notifier"`
}

type Alrajhi struct {
	BaseURL      string `env:"ALRAJHI_BASE_URL"`
	TranportalID string `env:"ALRAJHI_TRANPORTAL_ID"`
	Password     string `env:"ALRAJHI_TRANPORTAL_PASSWORD"`
	// ResourceKey is the 32-byte AES key used to encrypt trandata.
	ResourceKey string `env:"ALRAJHI_RESOURCE_KEY"`
	// IV is the 16-byte AES-CBC initialization vector agreed with the gateway.
	IV           string `env:"ALRAJHI_IV"`
	CurrencyCode string `env:"ALRAJHI_CURRENCY_CODE" envDefault:"682"`
	ResponseURL  string `env:"ALRAJHI_RESPONSE_URL"`
	ErrorURL     string `env:"ALRAJHI_ERROR_URL"`
	// PageTTLMinutes bounds how long an issued payment page stays valid.
	PageTTLMinutes int      `env:"ALRAJHI_PAGE_TTL_MINUTES" envDefault:"30"`
	CallbackIPWL   []string `env:"ALRAJHI_CALLBACK_IP_WL" envDefault:""`
}

type Tamara struct {
	BaseURL         string `env:"TAMARA_BASE_URL"`
	APIToken        string `env:"TAMARA_API_TOKEN"`
	NotificationKey string `env:"TAMARA_NOTIFICATION_KEY"`
	SuccessURL      string `env:"TAMARA_SUCCESS_URL"`
	FailureURL      string `env:"TAMARA_FAILURE_URL"`
	CancelURL       string `env:"TAMARA_CANCEL_URL"`
	NotificationURL string `env:"TAMARA_NOTIFICATION_URL"`
}

type Push struct {
	GatewayURL string `env:"PUSH_GATEWAY_URL"`
	RetryMax   int    `env:"PUSH_RETRY_MAX" envDefault:"3"`
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
