package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 60*time.Second, cfg.Redis.TTL)
	assert.False(t, cfg.Mongo.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Inventory.StrictSales)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("DB_PORT", "6543")
	v.Set("REDIS_ADDR", "localhost:6379")
	v.Set("CACHE_TTL_SECONDS", "5")
	v.Set("INVENTORY_STRICT_SALES", "true")
	v.Set("MONGO_URI", "mongodb://localhost:27017")

	cfg := fromViper(v)

	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Second, cfg.Redis.TTL)
	assert.True(t, cfg.Inventory.StrictSales)
	assert.True(t, cfg.Mongo.Enabled())
}

func TestFromViper_PuertoInvalidoUsaDefault(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "abc")
	cfg := fromViper(v)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestValidate_SecretObligatorioEnProduccion(t *testing.T) {
	cfg := fromViper(viper.New())
	require.NoError(t, cfg.Validate(), "development tolera secret vacío")

	cfg.App.Env = "production"
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg.JWT.Secret = "s3cr3t"
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
