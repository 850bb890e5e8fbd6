package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dropicat/internal/config"
	"dropicat/internal/db"
	"dropicat/internal/dropi"
	"dropicat/internal/observability"
	"dropicat/internal/repository"
	"dropicat/internal/snapshot"
)

// go run ./cmd/fetcher
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

	client := dropi.NewClient(cfg.DropiAPIURL, cfg.DropiToken)
	log.Infof("Consultando favoritos en %s (pageSize=%d)", cfg.DropiAPIURL, cfg.PageSize)

	body, objects, err := run(ctx, client, cfg.PageSize, cfg.SnapshotPath)
	if err != nil {
		log.Errorf("Error en la descarga: %v", err)
		os.Exit(1)
	}
	observability.ProductsFetched.Add(float64(objects))
	log.Infof("Productos obtenidos y guardados en %s (%d productos)", cfg.SnapshotPath, objects)

	archiveSnapshot(ctx, log, cfg.DatabaseURL, repository.SnapshotRecord{
		RunID:     runID,
		FetchedAt: time.Now().UTC(),
		Objects:   objects,
		Body:      body,
	})
	observability.PushRun(ctx, log, cfg.MetricsPushgateway, observability.FetcherJob, observability.ProductsFetched)
}

// run fetches the favorites page and overwrites the snapshot at path. A failed
// request returns before the snapshot is touched. The second result counts
// the "objects" elements of the saved body.
func run(ctx context.Context, client *dropi.Client, pageSize int, path string) ([]byte, int, error) {
	body, err := client.FetchFavorites(ctx, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}

	if err := snapshot.Save(path, body); err != nil {
		return nil, 0, fmt.Errorf("failed to save snapshot: %w", err)
	}

	objects := 0
	if s, err := snapshot.Decode(body); err == nil {
		objects = len(s.Products) + len(s.Skipped)
	}
	return body, objects, nil
}

// archiveSnapshot copies the body into Postgres when DATABASE_URL is set.
// Failures are logged only; the file snapshot is already written.
func archiveSnapshot(ctx context.Context, log *logrus.Entry, url string, rec repository.SnapshotRecord) {
	if url == "" {
		log.Debug("DATABASE_URL vacío, archivo de snapshots omitido")
		return
	}

	pool, err := db.NewPool(ctx, url)
	if err != nil {
		log.Warnf("No se pudo conectar a Postgres: %v", err)
		return
	}
	defer pool.Close()

	repo := &repository.SnapshotRepository{DB: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Warnf("No se pudo preparar dropi_snapshots: %v", err)
		return
	}
	if err := repo.Save(ctx, rec); err != nil {
		log.Warnf("No se pudo archivar el snapshot: %v", err)
		return
	}
	log.Info("Snapshot archivado en Postgres")
}
