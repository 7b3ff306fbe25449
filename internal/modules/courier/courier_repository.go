package courier

import (
	"context"
	"database/sql"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// RepositoryInterface defines the contract for the courier repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Courier, error)
	Create(ctx context.Context, c *models.Courier) (int64, error)
	UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error
	Delete(ctx context.Context, id int64) error
}

type Repository struct {
	db database.Pool
}

func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// selectCouriers lists couriers with the plates allocated to them, joined
// into one comma separated column in plate order.
const selectCouriers = `
	SELECT l.id_livrator, l.nume, l.prenume, l.salariu,
		(SELECT string_agg(DISTINCT a.nr_inmatriculare, ',' ORDER BY a.nr_inmatriculare)
		   FROM alocare_vehicul a
		  WHERE a.id_livrator = l.id_livrator) AS vehicule
	FROM livrator l`

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Courier, error) {
	rows, err := r.db.Query(ctx, selectCouriers+orderBy)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	couriers := make([]*models.Courier, 0)
	for rows.Next() {
		var c models.Courier
		var vehicles sql.NullString
		if err := rows.Scan(&c.ID, &c.LastName, &c.FirstName, &c.Salary, &vehicles); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		if vehicles.Valid {
			c.Vehicles = &vehicles.String
		}
		couriers = append(couriers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return couriers, nil
}

func (r *Repository) Create(ctx context.Context, c *models.Courier) (int64, error) {
	query := `
		INSERT INTO livrator (nume, prenume, salariu)
		VALUES ($1, $2, $3)
		RETURNING id_livrator`

	var id int64
	if err := r.db.QueryRow(ctx, query, c.LastName, c.FirstName, c.Salary).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

func (r *Repository) UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE livrator SET salariu = $1 WHERE id_livrator = $2`, salary, id)
	if err != nil {
		return fmt.Errorf("repository.UpdateSalary: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes a courier with its deliveries and vehicle allocations.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM livrator WHERE id_livrator = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
