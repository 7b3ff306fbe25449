package location

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the location repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Location, error)
	Create(ctx context.Context, l *models.Location) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT id_locatie, cod_postal, judet, localitate, strada FROM locatie`+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.PostalCode, &l.County, &l.City, &l.Street); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		locations = append(locations, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return locations, nil
}

func (r *Repository) Create(ctx context.Context, l *models.Location) (int64, error) {
	query := `
		INSERT INTO locatie (cod_postal, judet, localitate, strada)
		VALUES ($1, $2, $3, $4)
		RETURNING id_locatie`

	var id int64
	if err := r.db.QueryRow(ctx, query, l.PostalCode, l.County, l.City, l.Street).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

// Delete removes a location and, through the foreign key, its warehouses.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM locatie WHERE id_locatie = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
