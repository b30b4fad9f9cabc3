package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultPaymentTxTimeout = 5 * time.Second

type Config struct {
	RunAddress       string        `env:"RUN_ADDRESS"`
	DatabaseDSN      string        `env:"DATABASE_URI"`
	MigrationsDir    string        `env:"MIGRATIONS_DIR"`
	JWTUserSecret    string        `env:"JWT_USER_SECRET"`
	PaymentTxTimeout time.Duration `env:"PAYMENT_TX_TIMEOUT"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTUserSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTUserSecret, "s", "", "JWT signing secret")
	flag.DurationVar(&flagConfig.PaymentTxTimeout, "t", DefaultPaymentTxTimeout, "Payment transaction timeout")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	paymentTxTimeout := envConfig.PaymentTxTimeout
	if paymentTxTimeout == 0 {
		paymentTxTimeout = flagsConfig.PaymentTxTimeout
	}

	return &Config{
		RunAddress:       defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:      defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:    defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTUserSecret:    defaultIfBlank(envConfig.JWTUserSecret, flagsConfig.JWTUserSecret),
		PaymentTxTimeout: paymentTxTimeout,
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
