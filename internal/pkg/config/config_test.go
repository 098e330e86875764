//go:build unit

package config_test

import (
	"testing"

	"price-offer/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PRICE_TOTAL", "200")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 200.0, cfg.Quote.Total)
		assert.Equal(t, []float64{0.9, 0.5}, cfg.Quote.Discounts)
		assert.Empty(t, cfg.Quote.PercentOff)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, 32400, cfg.Log.TimeZoneOffset)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PRICE_TOTAL", "19.99")
		t.Setenv("PRICE_DISCOUNTS", "0.75")
		t.Setenv("PRICE_PERCENT_OFF", "10,25")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 19.99, cfg.Quote.Total)
		assert.Equal(t, []float64{0.75}, cfg.Quote.Discounts)
		assert.Equal(t, []float64{10, 25}, cfg.Quote.PercentOff)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("missing total", func(t *testing.T) {
		t.Setenv("PRICE_TOTAL", "")

		_, err := config.LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PRICE_TOTAL")
	})

	t.Run("malformed discount", func(t *testing.T) {
		t.Setenv("PRICE_TOTAL", "200")
		t.Setenv("PRICE_DISCOUNTS", "0.9,half")

		_, err := config.LoadConfig()
		require.Error(t, err)
	})
}
