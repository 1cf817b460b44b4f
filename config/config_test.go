package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SALT_ROUND", "not-a-number")
	t.Setenv("DB_DRIVER", "SQLite")

	LoadConfig()

	assert.Equal(t, "5000", AppConfig.Port)
	assert.Equal(t, 12, AppConfig.SaltRound)
	assert.Equal(t, "sqlite", AppConfig.DBDriver)
	assert.Equal(t, 10, AppConfig.BodyLimitMB)
}

func TestIntegrityCronCanBeDisabled(t *testing.T) {
	t.Setenv("INTEGRITY_CRON", "")
	LoadConfig()
	assert.Empty(t, AppConfig.IntegrityCron)
}

func TestLocation(t *testing.T) {
	c := &Config{Timezone: "UTC"}
	assert.Equal(t, time.UTC, c.Location())

	c.Timezone = "Not/AZone"
	assert.Equal(t, time.Local, c.Location())

	var nilCfg *Config
	assert.Equal(t, time.Local, nilCfg.Location())
}
