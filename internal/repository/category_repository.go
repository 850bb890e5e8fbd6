package repository

import (
	"database/sql"
	"fmt"

	"dropicat/internal/model"
)

// CategoryRepository keeps the latest category of every exported product.
type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS product_categories (
			produto_id      BIGINT PRIMARY KEY,
			run_id          UUID NOT NULL,
			category        TEXT NOT NULL,
			name            TEXT NOT NULL,
			sale_price      NUMERIC NOT NULL,
			suggested_price NUMERIC NOT NULL,
			stock           INTEGER NOT NULL,
			store_name      TEXT NOT NULL,
			product_url     TEXT NOT NULL,
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

// SaveRows upserts rows in a single transaction.
func (r *CategoryRepository) SaveRows(runID string, rows []model.ExportRow) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO product_categories
		(produto_id, run_id, category, name, sale_price, suggested_price, stock, store_name, product_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (produto_id) DO UPDATE SET
			run_id = EXCLUDED.run_id,
			category = EXCLUDED.category,
			name = EXCLUDED.name,
			sale_price = EXCLUDED.sale_price,
			suggested_price = EXCLUDED.suggested_price,
			stock = EXCLUDED.stock,
			store_name = EXCLUDED.store_name,
			product_url = EXCLUDED.product_url,
			updated_at = now()
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row.ID, runID, row.Category, row.Name, row.SalePrice.String(),
			row.SuggestedPrice.String(), row.Stock, row.StoreName, row.ProductURL); err != nil {
			return fmt.Errorf("product %d: %w", row.ID, err)
		}
	}

	return tx.Commit()
}
