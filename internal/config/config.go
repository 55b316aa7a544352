package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

// MongoCfg is MongoDB connection configuration
type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"mongo-loyalty"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"loyalty"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// PostgresCfg is PostgreSQL connection configuration
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" envDefault:"pg-loyalty"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// RedisCfg is Redis connection configuration
type RedisCfg struct {
	Password string `env:"REDIS_PASSWORD"`
	Host     string `env:"REDIS_HOST" envDefault:"redis-loyalty"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Db       int    `env:"REDIS_DB" envDefault:"0"`
}

// ProgramCfg is loyalty program bootstrap configuration. Conversion rate
// and tier table become editable at runtime, these values only seed the
// very first settings snapshot.
type ProgramCfg struct {
	PointsPerCurrencyUnit float64 `env:"LOYALTY_POINTS_PER_CURRENCY_UNIT" envDefault:"1"`
	MinimumRedeemPoints   int     `env:"LOYALTY_MINIMUM_REDEEM_POINTS" envDefault:"100"`
	CardPrefix            string  `env:"LOYALTY_CARD_PREFIX" envDefault:"LOY"`
	ReportTopCustomers    int     `env:"LOYALTY_REPORT_TOP_CUSTOMERS" envDefault:"5"`
	ActivityFeedSize      int     `env:"LOYALTY_ACTIVITY_FEED_SIZE" envDefault:"20"`
}

// Config is aggregated application configuration
type Config struct {
	MongoCfg    MongoCfg
	PostgresCfg PostgresCfg
	RedisCfg    RedisCfg
	ProgramCfg  ProgramCfg
}

// Build parses configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return cfg, nil
}
