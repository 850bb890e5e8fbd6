package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"
)

const (
	FetcherJob     = "dropicat_fetcher"
	CategorizerJob = "dropicat_categorizer"
)

var (
	ProductsFetched = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dropi_products_fetched_total",
			Help: "Productos recibidos del índice de Dropi",
		},
	)
	ProductsClassified = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "products_classified_total",
			Help: "Productos clasificados por categoría",
		},
		[]string{"category"},
	)
	ProductsFlagged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "products_flagged_total",
			Help: "Productos con posible categoría errónea",
		},
	)
)

// Push sends collectors to the Pushgateway at url under job, replacing the
// previous push for that job.
func Push(ctx context.Context, url, job string, collectors ...prometheus.Collector) error {
	p := push.New(url, job)
	for _, c := range collectors {
		p = p.Collector(c)
	}
	if err := p.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics for %s: %w", job, err)
	}
	return nil
}

// PushRun pushes at the end of a stage. An empty url disables it and a
// failed push is only logged.
func PushRun(ctx context.Context, log *logrus.Entry, url, job string, collectors ...prometheus.Collector) {
	if url == "" {
		log.Debug("METRICS_PUSHGATEWAY vacío, métricas no enviadas")
		return
	}
	if err := Push(ctx, url, job, collectors...); err != nil {
		log.Warnf("No se pudieron enviar las métricas: %v", err)
		return
	}
	log.Debugf("Métricas enviadas a %s", url)
}
