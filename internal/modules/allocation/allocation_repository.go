package allocation

import (
	"context"
	"fmt"
	"time"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the vehicle allocation repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.VehicleAllocation, error)
	Create(ctx context.Context, a *models.VehicleAllocation) error
	Delete(ctx context.Context, courierID int64, plate string, allocatedAt time.Time) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.VehicleAllocation, error) {
	rows, err := r.db.Query(ctx, `SELECT id_livrator, nr_inmatriculare, data_alocare FROM alocare_vehicul`+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	allocations := make([]*models.VehicleAllocation, 0)
	for rows.Next() {
		var a models.VehicleAllocation
		if err := rows.Scan(&a.CourierID, &a.Plate, &a.AllocatedAt); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		allocations = append(allocations, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return allocations, nil
}

func (r *Repository) Create(ctx context.Context, a *models.VehicleAllocation) error {
	query := `INSERT INTO alocare_vehicul (id_livrator, nr_inmatriculare, data_alocare) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, a.CourierID, a.Plate, a.AllocatedAt); err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, courierID int64, plate string, allocatedAt time.Time) error {
	query := `
		DELETE FROM alocare_vehicul
		WHERE id_livrator = $1 AND nr_inmatriculare = $2 AND data_alocare = $3`

	cmdTag, err := r.db.Exec(ctx, query, courierID, plate, allocatedAt)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
