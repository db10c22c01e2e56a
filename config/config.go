package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `env:"ENV" env-default:"local"`
	Port       string           `env:"PORT" env-default:"8083"`
	Database   DatabaseConfig   `yaml:"database"`
	LocalCache LocalCacheConfig `yaml:"local_cache"`
	R2         R2Config         `yaml:"r2"`
	Sentry     SentryConfig     `yaml:"sentry"`
	Upsell     UpsellConfig     `yaml:"upsell"`
}

type DatabaseConfig struct {
	Username        string        `yaml:"username"          env:"DB_USERNAME"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"`
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"`
	Port            string        `yaml:"port"              env:"DB_PORT"              env-default:"5432"`
	Name            string        `yaml:"name"              env:"DB_NAME"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"10"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"300"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
}

// DSN builds the postgres connection url.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", c.Username, c.Password, c.Host, c.Port, c.Name)
}

// LocalCacheConfig points at the on-device bbolt file.
type LocalCacheConfig struct {
	Path string `yaml:"path" env:"LOCAL_CACHE_PATH" env-default:"./lookup.bolt"`
}

type R2Config struct {
	AccountID       string `yaml:"account_id"        env:"R2_ACCOUNT_ID"`
	AccessKeyID     string `yaml:"access_key_id"     env:"R2_ACCESS_KEY_ID"`
	AccessKeySecret string `yaml:"access_key_secret" env:"R2_ACCESS_KEY_SECRET"`
	BucketName      string `yaml:"bucket_name"       env:"R2_BUCKET_NAME"`
}

type SentryConfig struct {
	Dsn              string  `yaml:"dsn"                env:"SENTRY_DSN"`
	Release          string  `yaml:"release"            env:"SENTRY_RELEASE"            env-default:"lookupapi@1.0.0"`
	TracesSampleRate float64 `yaml:"traces_sample_rate" env:"SENTRY_TRACES_SAMPLE_RATE" env-default:"1.0"`
}

// UpsellConfig drives the limited-time offer attached to generated looks.
type UpsellConfig struct {
	Window           time.Duration `yaml:"window"            env:"UPSELL_WINDOW"            env-default:"120s"`
	Installments     int           `yaml:"installments"      env:"UPSELL_INSTALLMENTS"      env-default:"10"`
	InstallmentPrice float64       `yaml:"installment_price" env:"UPSELL_INSTALLMENT_PRICE" env-default:"9.90"`
	FullPrice        float64       `yaml:"full_price"        env:"UPSELL_FULL_PRICE"        env-default:"89.90"`
	Currency         string        `yaml:"currency"          env:"UPSELL_CURRENCY"          env-default:"BRL"`
	Bonus            string        `yaml:"bonus"             env:"UPSELL_BONUS"             env-default:"Free slim accessories case"`
}

// Load reads CONFIG_PATH (yaml) when set, then the environment.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
