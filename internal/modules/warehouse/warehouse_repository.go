package warehouse

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the warehouse repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Warehouse, error)
	Create(ctx context.Context, maxCapacity int, locationID int64) (int64, error)
	UpdateCapacity(ctx context.Context, id int64, capacity int) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const selectWarehouses = `
	SELECT d.id_depozit, d.capacitate_maxima, d.id_locatie,
		l.localitate, l.judet, l.strada, l.cod_postal
	FROM depozit d
	JOIN locatie l ON l.id_locatie = d.id_locatie`

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Warehouse, error) {
	rows, err := r.db.Query(ctx, selectWarehouses+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	warehouses := make([]*models.Warehouse, 0)
	for rows.Next() {
		var w models.Warehouse
		err := rows.Scan(&w.ID, &w.MaxCapacity, &w.LocationID, &w.City, &w.County, &w.Street, &w.PostalCode)
		if err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		warehouses = append(warehouses, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return warehouses, nil
}

func (r *Repository) Create(ctx context.Context, maxCapacity int, locationID int64) (int64, error) {
	query := `
		INSERT INTO depozit (capacitate_maxima, id_locatie)
		VALUES ($1, $2)
		RETURNING id_depozit`

	var id int64
	if err := r.db.QueryRow(ctx, query, maxCapacity, locationID).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateCapacity(ctx context.Context, id int64, capacity int) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE depozit SET capacitate_maxima = $1 WHERE id_depozit = $2`, capacity, id)
	if err != nil {
		return fmt.Errorf("repository.UpdateCapacity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a warehouse. Shipments stored there keep existing with no
// warehouse.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM depozit WHERE id_depozit = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
