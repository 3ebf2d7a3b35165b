package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/pkg/config"
)

func TestParseThresholds(t *testing.T) {
	got, err := config.ParseThresholds(" simple = 20, bundle=10 ,")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"simple": 20, "bundle": 10}, got)
}

func TestParseThresholds_Vacio(t *testing.T) {
	got, err := config.ParseThresholds("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseThresholds_Invalidos(t *testing.T) {
	for _, in := range []string{"simple", "=5", "simple=abc", "simple=-1"} {
		_, err := config.ParseThresholds(in)
		assert.Error(t, err, "entrada %q", in)
	}
}

func TestFormatThresholds_Estable(t *testing.T) {
	assert.Equal(t, "bundle=10,simple=20", config.FormatThresholds(map[string]int64{"simple": 20, "bundle": 10}))
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"simple": 20, "bundle": 10}, cfg.Alerts.Thresholds)
	assert.Equal(t, int64(20), cfg.Alerts.DefaultThreshold)
	assert.Equal(t, 30, cfg.Alerts.WindowDays)
	assert.Equal(t, 8, cfg.Alerts.Workers)
	assert.Equal(t, 50*time.Millisecond, cfg.Alerts.RetryInitialInterval)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_SobrescrituraPorEntorno(t *testing.T) {
	t.Setenv("ALERT_THRESHOLDS", "simple=50,perecedero=100")
	t.Setenv("ALERT_DEFAULT_THRESHOLD", "7")
	t.Setenv("ALERT_WORKERS", "2")
	t.Setenv("ALERT_REQUEST_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"simple": 50, "perecedero": 100}, cfg.Alerts.Thresholds)
	assert.Equal(t, int64(7), cfg.Alerts.DefaultThreshold)
	assert.Equal(t, 2, cfg.Alerts.Workers)
	assert.Equal(t, 3*time.Second, cfg.Alerts.RequestTimeout)
}

func TestLoad_UmbralesInvalidos(t *testing.T) {
	t.Setenv("ALERT_THRESHOLDS", "simple=muchos")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
