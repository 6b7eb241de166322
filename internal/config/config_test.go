package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/salgaderia-api/internal/config"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg := config.LoadFile(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpiryHours)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 5*time.Second, cfg.Printer.Timeout)
	assert.True(t, cfg.Printer.ASCII())
	assert.Equal(t, "America/Sao_Paulo", cfg.Store.Timezone)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileReadsEnvFileAndEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PRINTER_TYPE=network\nPRINTER_ADDRESS=10.0.0.5:9100\nPRINTER_ENCODING=utf8\nSTORE_NAME=Padaria\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("STORE_NAME", "Salgados da Vila")

	cfg := config.LoadFile(path)

	assert.Equal(t, "network", cfg.Printer.Type)
	assert.Equal(t, "10.0.0.5:9100", cfg.Printer.Address)
	assert.False(t, cfg.Printer.ASCII())
	assert.Equal(t, "Salgados da Vila", cfg.Store.Name)
}

func TestStoreLocation(t *testing.T) {
	assert.Equal(t, time.Local, config.StoreConfig{}.Location())
	assert.Equal(t, time.Local, config.StoreConfig{Timezone: "Nowhere/City"}.Location())
	assert.Equal(t, "UTC", config.StoreConfig{Timezone: "UTC"}.Location().String())
}

func TestDSN(t *testing.T) {
	db := config.DatabaseConfig{Host: "h", Port: "5432", Name: "n", User: "u", Password: "p", SSLMode: "disable", Timezone: "UTC"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5432 sslmode=disable TimeZone=UTC", db.DSN())
}
