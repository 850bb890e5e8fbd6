package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DropiAPIURL        string `envconfig:"DROPI_API_URL" default:"https://api.dropi.co/api/products/v4/index"`
	DropiToken         string `envconfig:"DROPI_TOKEN"`
	PageSize           int    `envconfig:"DROPI_PAGE_SIZE" default:"60"`
	SnapshotPath       string `envconfig:"SNAPSHOT_PATH" default:"./data/dropi_products.json"`
	ReportPath         string `envconfig:"REPORT_PATH" default:"./data/categorized_products.xlsx"`
	DatabaseURL        string `envconfig:"DATABASE_URL"`
	RedisURL           string `envconfig:"REDIS_URL"`
	MetricsPushgateway string `envconfig:"METRICS_PUSHGATEWAY"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env (project root first, then the working directory) and the
// process environment. A missing .env is not an error.
func Load(logger *logrus.Logger) (*Config, error) {
	for _, path := range []string{"../../.env", ".env"} {
		if err := godotenv.Load(path); err != nil {
			if !os.IsNotExist(err) {
				logger.Warnf("No se pudo leer %s (continuando): %v", path, err)
			}
			continue
		}
		logger.Debugf("Configuración cargada desde %s", path)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger builds the stderr logger shared by both stages.
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logger.Warnf("LOG_LEVEL inválido %q, usando info", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
