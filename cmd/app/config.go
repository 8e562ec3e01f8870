package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	DB       DBConfig       `mapstructure:",squash"`
	Mail     MailConfig     `mapstructure:",squash"`
	RabbitMQ RabbitMQConfig `mapstructure:",squash"`
	Limiter  LimiterConfig  `mapstructure:",squash"`
}

type DBConfig struct {
	Host         string        `mapstructure:"POSTGRES_HOST"`
	Port         string        `mapstructure:"POSTGRES_PORT"`
	User         string        `mapstructure:"POSTGRES_USER"`
	Password     string        `mapstructure:"POSTGRES_PASSWORD"`
	Name         string        `mapstructure:"POSTGRES_DB"`
	MaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	MaxIdleTime  time.Duration `mapstructure:"DB_MAX_IDLE_TIME"`
}

type MailConfig struct {
	Host      string `mapstructure:"MAIL_HOST"`
	Port      int    `mapstructure:"MAIL_PORT"`
	User      string `mapstructure:"MAIL_USER"`
	Password  string `mapstructure:"MAIL_PASSWORD"`
	Sender    string `mapstructure:"MAIL_SENDER"`
	Recipient string `mapstructure:"MAIL_NOTIFY_RECIPIENT"`
}

type RabbitMQConfig struct {
	Host     string `mapstructure:"RABBITMQ_HOST"`
	Port     string `mapstructure:"RABBITMQ_PORT"`
	User     string `mapstructure:"RABBITMQ_USER"`
	Password string `mapstructure:"RABBITMQ_PASSWORD"`
}

// LimiterConfig controls the per-client token bucket.
type LimiterConfig struct {
	Enabled bool    `mapstructure:"LIMITER_ENABLED"`
	RPS     float64 `mapstructure:"LIMITER_RPS"`
	Burst   int     `mapstructure:"LIMITER_BURST"`
}

func (c RabbitMQConfig) URI() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.User, c.Password, c.Host, c.Port)
}

var configDefaults = map[string]any{
	"PORT":                  "4000",
	"ENVIRONMENT":           "development",
	"VERSION":               "1.0.0",
	"TLS_CERT_FILE":         "",
	"TLS_KEY_FILE":          "",
	"POSTGRES_HOST":         "localhost",
	"POSTGRES_PORT":         "5432",
	"POSTGRES_USER":         "postgres",
	"POSTGRES_PASSWORD":     "",
	"POSTGRES_DB":           "frogblogs",
	"DB_MAX_OPEN_CONNS":     25,
	"DB_MAX_IDLE_CONNS":     25,
	"DB_MAX_IDLE_TIME":      "15m",
	"MAIL_HOST":             "localhost",
	"MAIL_PORT":             25,
	"MAIL_USER":             "",
	"MAIL_PASSWORD":         "",
	"MAIL_SENDER":           "FrogBlogs <no-reply@frogblogs.local>",
	"MAIL_NOTIFY_RECIPIENT": "",
	"RABBITMQ_HOST":         "localhost",
	"RABBITMQ_PORT":         "5672",
	"RABBITMQ_USER":         "guest",
	"RABBITMQ_PASSWORD":     "guest",
	"LIMITER_ENABLED":       true,
	"LIMITER_RPS":           2,
	"LIMITER_BURST":         4,
}

// loadConfig reads the dotenv file at path. Environment variables override the file
// and a missing file falls back to the environment and defaults.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if !strings.HasPrefix(config.Port, ":") {
		config.Port = ":" + config.Port
	}

	return &config, nil
}
