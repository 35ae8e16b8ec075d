package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("BUSINESS_NAME", "")

	cfg := Load()

	assert.Equal(t, 10, cfg.Business.LowStockThreshold)
	assert.Equal(t, 5, cfg.Business.RecentOrdersLimit)
	assert.Equal(t, 15*time.Second, cfg.Analytics.QueryTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.AllowedMethods)
}

func TestLoadFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("BUSINESS_NAME", "Mama Mboga Stores")
	t.Setenv("LOW_STOCK_THRESHOLD", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "Mama Mboga Stores", cfg.Business.Name)
	assert.Equal(t, 4, cfg.Business.LowStockThreshold)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", User: "u", Password: "p", Name: "n", Port: "5432", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
