package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dropicat/internal/config"
	"dropicat/internal/db"
	"dropicat/internal/model"
	"dropicat/internal/observability"
	"dropicat/internal/report"
	"dropicat/internal/repository"
	"dropicat/internal/review"
	"dropicat/internal/snapshot"
)

// go run ./cmd/categorizer
func main() {
	logger := config.NewLogger(os.Getenv("LOG_LEVEL"))
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatalf("Configuración inválida: %v", err)
	}
	logger = config.NewLogger(cfg.LogLevel)

	ctx := context.Background()
	runID := uuid.New().String()
	log := logger.WithField("run_id", runID)

	products := loadProducts(log, cfg.SnapshotPath)

	res, err := report.Export(products, cfg.ReportPath)
	if err != nil {
		log.Errorf("Error generando el reporte: %v", err)
		os.Exit(1)
	}
	log.Infof("Reporte escrito en %s (%d filas)", cfg.ReportPath, len(res.Rows))

	for _, c := range res.Counts {
		observability.ProductsClassified.WithLabelValues(c.Category).Add(float64(c.Count))
	}
	observability.ProductsFlagged.Add(float64(len(res.Flags)))

	saveCategories(log, cfg.DatabaseURL, runID, res.Rows)
	publishFlags(ctx, log, cfg.RedisURL, runID, res.Flags)

	report.PrintSummary(os.Stdout, res.Counts, res.Flags, cfg.ReportPath)
	observability.PushRun(ctx, log, cfg.MetricsPushgateway, observability.CategorizerJob,
		observability.ProductsClassified, observability.ProductsFlagged)
}

// loadProducts degrades to an empty list when the snapshot cannot be read,
// so an empty report is still produced.
func loadProducts(log *logrus.Entry, path string) []model.Product {
	s, err := snapshot.Load(path)
	if err != nil {
		log.Errorf("Error cargando productos: %v", err)
		return nil
	}
	for _, skipped := range s.Skipped {
		log.Warnf("Producto omitido: %v", skipped)
	}
	for _, warning := range s.Warnings {
		log.Warnf("Producto con campos inválidos: %v", warning)
	}
	log.Infof("%d productos cargados de %s", len(s.Products), path)
	return s.Products
}

func saveCategories(log *logrus.Entry, url, runID string, rows []model.ExportRow) {
	if url == "" {
		return
	}

	conn, err := db.New(url)
	if err != nil {
		log.Warnf("No se pudo abrir Postgres: %v", err)
		return
	}
	defer conn.Close()

	repo := &repository.CategoryRepository{DB: conn}
	if err := repo.EnsureSchema(); err != nil {
		log.Warnf("No se pudo preparar product_categories: %v", err)
		return
	}
	if err := repo.SaveRows(runID, rows); err != nil {
		log.Warnf("No se pudieron guardar las categorías: %v", err)
		return
	}
	log.Infof("%d categorías guardadas en Postgres", len(rows))
}

func publishFlags(ctx context.Context, log *logrus.Entry, addr, runID string, flags []model.MiscategorizationFlag) {
	if addr == "" {
		return
	}

	store := review.NewStore(addr)
	defer store.Close()

	previous, err := store.Latest(ctx)
	if err != nil {
		log.Warnf("No se pudo leer la revisión anterior: %v", err)
	}
	if fresh := review.NewSince(previous, flags); len(fresh) > 0 {
		log.Infof("%d avisos nuevos desde la última ejecución", len(fresh))
	}

	if err := store.Publish(ctx, runID, flags); err != nil {
		log.Warnf("No se pudieron publicar los avisos en Redis: %v", err)
		return
	}
	log.Debugf("Avisos publicados en %s", review.RunKey(runID))
}
