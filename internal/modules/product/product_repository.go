package product

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the product repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Product, error)
	Create(ctx context.Context, p *models.Product) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT id_produs, nume_produs, nume_categorie, fragilitate FROM produs`+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Fragile); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return products, nil
}

func (r *Repository) Create(ctx context.Context, p *models.Product) (int64, error) {
	query := `
		INSERT INTO produs (nume_produs, nume_categorie, fragilitate)
		VALUES ($1, $2, $3)
		RETURNING id_produs`

	var id int64
	if err := r.db.QueryRow(ctx, query, p.Name, p.Category, p.Fragile).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

// Delete removes a product together with the shipment contents listing it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM produs WHERE id_produs = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
