package config

import (
	"io"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"DROPI_API_URL", "DROPI_PAGE_SIZE", "SNAPSHOT_PATH", "REPORT_PATH", "DATABASE_URL", "METRICS_PUSHGATEWAY", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load(quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "https://api.dropi.co/api/products/v4/index", cfg.DropiAPIURL)
	assert.Equal(t, 60, cfg.PageSize)
	assert.Equal(t, "./data/dropi_products.json", cfg.SnapshotPath)
	assert.Equal(t, "./data/categorized_products.xlsx", cfg.ReportPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.MetricsPushgateway)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DROPI_PAGE_SIZE", "20")
	t.Setenv("SNAPSHOT_PATH", "/tmp/snap.json")
	t.Setenv("METRICS_PUSHGATEWAY", "http://pushgateway:9091")

	cfg, err := Load(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, "/tmp/snap.json", cfg.SnapshotPath)
	assert.Equal(t, "http://pushgateway:9091", cfg.MetricsPushgateway)
}

func TestLoadRejectsBadPageSize(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DROPI_PAGE_SIZE", "many")

	_, err := Load(quietLogger())
	assert.Error(t, err)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, NewLogger("loud").GetLevel())
}
