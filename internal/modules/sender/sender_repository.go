package sender

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// RepositoryInterface defines the contract for the sender repository.
type RepositoryInterface interface {
	List(ctx context.Context, orderBy string) ([]*models.Sender, error)
	Create(ctx context.Context, s *models.Sender) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// Repository implements RepositoryInterface.
type Repository struct {
	db database.Pool
}

// NewRepository creates a new sender repository.
func NewRepository(db database.Pool) RepositoryInterface {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, orderBy string) ([]*models.Sender, error) {
	query := `SELECT id_expeditor, tip_expeditor, nume, prenume, telefon, email, adresa FROM expeditor` + orderBy

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	senders := make([]*models.Sender, 0)
	for rows.Next() {
		var s models.Sender
		if err := rows.Scan(&s.ID, &s.Type, &s.LastName, &s.FirstName, &s.Phone, &s.Email, &s.Address); err != nil {
			return nil, fmt.Errorf("repository.List.Scan: %w", err)
		}
		senders = append(senders, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return senders, nil
}

// Create inserts s and returns the id the database assigned to it.
func (r *Repository) Create(ctx context.Context, s *models.Sender) (int64, error) {
	query := `
		INSERT INTO expeditor (tip_expeditor, nume, prenume, telefon, email, adresa)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_expeditor`

	var id int64
	if err := r.db.QueryRow(ctx, query, s.Type, s.LastName, s.FirstName, s.Phone, s.Email, s.Address).Scan(&id); err != nil {
		return 0, fmt.Errorf("repository.Create: %w", err)
	}
	return id, nil
}

// Delete removes a sender. Its shipments go with it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM expeditor WHERE id_expeditor = $1`, id)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
