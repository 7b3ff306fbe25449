package vehicle

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the vehicle repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Vehicle, error)
	Create(ctx context.Context, v *models.Vehicle) error
	Delete(ctx context.Context, plate string) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Vehicle, error) {
	query := `SELECT nr_inmatriculare, marca, model, capacitate_dimensiune, capacitate_greutate FROM vehicul` + orderBy

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0)
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.Plate, &v.Make, &v.Model, &v.VolumeCapacity, &v.WeightCapacity); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		vehicles = append(vehicles, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return vehicles, nil
}

func (r *Repository) Create(ctx context.Context, v *models.Vehicle) error {
	query := `
		INSERT INTO vehicul (nr_inmatriculare, marca, model, capacitate_dimensiune, capacitate_greutate)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, query, v.Plate, v.Make, v.Model, v.VolumeCapacity, v.WeightCapacity); err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, plate string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM vehicul WHERE nr_inmatriculare = $1`, plate)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
