package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between runs (the quoted total)
// - default: Values common across all environments (timezone, log format, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Log   LogConfig
	Quote QuoteConfig
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type QuoteConfig struct {
	Total      float64   `envconfig:"PRICE_TOTAL" required:"true"`
	Discounts  []float64 `envconfig:"PRICE_DISCOUNTS" default:"0.9,0.5"`
	PercentOff []float64 `envconfig:"PRICE_PERCENT_OFF"` // 0..100, applied after Discounts
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Quote: QuoteConfig{
			Total:     200,
			Discounts: []float64{0.9, 0.5},
		},
	}
}
