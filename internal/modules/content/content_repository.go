package content

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the shipment content repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.ShipmentContent, error)
	Create(ctx context.Context, sc *models.ShipmentContent) error
	Delete(ctx context.Context, awb string, productID int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.ShipmentContent, error) {
	rows, err := r.db.Query(ctx, `SELECT awb, id_produs, cantitate FROM continut_colet`+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	contents := make([]*models.ShipmentContent, 0)
	for rows.Next() {
		var sc models.ShipmentContent
		if err := rows.Scan(&sc.AWB, &sc.ProductID, &sc.Quantity); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		contents = append(contents, &sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return contents, nil
}

func (r *Repository) Create(ctx context.Context, sc *models.ShipmentContent) error {
	query := `INSERT INTO continut_colet (awb, id_produs, cantitate) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, sc.AWB, sc.ProductID, sc.Quantity); err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, awb string, productID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM continut_colet WHERE awb = $1 AND id_produs = $2`, awb, productID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
