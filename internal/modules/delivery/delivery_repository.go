package delivery

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the shipment delivery repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.ShipmentDelivery, error)
	Create(ctx context.Context, d *models.ShipmentDelivery) error
	Delete(ctx context.Context, awb string, courierID int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.ShipmentDelivery, error) {
	rows, err := r.db.Query(ctx, `SELECT awb, id_livrator, data_livrare FROM livrare_colet`+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	deliveries := make([]*models.ShipmentDelivery, 0)
	for rows.Next() {
		var d models.ShipmentDelivery
		if err := rows.Scan(&d.AWB, &d.CourierID, &d.DeliveredAt); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		deliveries = append(deliveries, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return deliveries, nil
}

func (r *Repository) Create(ctx context.Context, d *models.ShipmentDelivery) error {
	query := `INSERT INTO livrare_colet (awb, id_livrator, data_livrare) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, d.AWB, d.CourierID, d.DeliveredAt); err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, awb string, courierID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM livrare_colet WHERE awb = $1 AND id_livrator = $2`, awb, courierID)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
