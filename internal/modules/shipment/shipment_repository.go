package shipment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RepositoryInterface defines the contract for the shipment repository.
type RepositoryInterface interface {
	List(ctx context.Context, status string, orderBy string) ([]*models.Shipment, error)
	Create(ctx context.Context, s *models.Shipment) error
	Delete(ctx context.Context, awb string) error
	TransitionStatus(ctx context.Context, awb string, t models.Transition, at time.Time) (*models.StatusChange, error)
}

// Repository implements RepositoryInterface on PostgreSQL.
type Repository struct {
	db  database.Pool
	log *zap.Logger
}

// NewRepository creates a new shipment repository.
func NewRepository(db database.Pool, log *zap.Logger) RepositoryInterface {
	return &Repository{db: db, log: log}
}

const selectShipments = `
	SELECT awb, status, data_preluare, destinatar_nume, destinatar_prenume, destinatar_adresa,
		greutate, dimensiune, valoare_ron, id_expeditor, id_depozit
	FROM colet
	WHERE ($1::text = '' OR status = $1)`

// List returns every shipment, optionally restricted to one status. orderBy
// must come from database.SortMap.
func (r *Repository) List(ctx context.Context, status string, orderBy string) ([]*models.Shipment, error) {
	rows, err := r.db.Query(ctx, selectShipments+orderBy, status)
	if err != nil {
		return nil, fmt.Errorf("repository.List.Query: %w", err)
	}
	defer rows.Close()

	shipments := make([]*models.Shipment, 0)
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.List.scanShipment: %w", err)
		}
		shipments = append(shipments, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.List.rows: %w", err)
	}
	return shipments, nil
}

func scanShipment(row pgx.Row) (*models.Shipment, error) {
	var s models.Shipment
	var warehouseID sql.NullInt64
	err := row.Scan(
		&s.AWB,
		&s.Status,
		&s.PickupDate,
		&s.RecipientLastName,
		&s.RecipientFirstName,
		&s.RecipientAddress,
		&s.WeightKg,
		&s.Dimensions,
		&s.ValueRON,
		&s.SenderID,
		&warehouseID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if warehouseID.Valid {
		s.WarehouseID = &warehouseID.Int64
	}
	return &s, nil
}

// Create inserts a new shipment. The AWB is supplied by the caller.
func (r *Repository) Create(ctx context.Context, s *models.Shipment) error {
	const query = `
		INSERT INTO colet (awb, status, data_preluare, destinatar_nume, destinatar_prenume,
			destinatar_adresa, greutate, dimensiune, valoare_ron, id_expeditor, id_depozit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		s.AWB, s.Status, s.PickupDate,
		s.RecipientLastName, s.RecipientFirstName, s.RecipientAddress,
		s.WeightKg, s.Dimensions, s.ValueRON, s.SenderID, s.WarehouseID,
	)
	if err != nil {
		return fmt.Errorf("repository.Create: %w", err)
	}
	return nil
}

// Delete removes one shipment; its contents and deliveries cascade.
func (r *Repository) Delete(ctx context.Context, awb string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM colet WHERE awb = $1`, awb)
	if err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

const (
	setStatus                  = `UPDATE colet SET status = $1 WHERE awb = $2`
	setStatusAndClearWarehouse = `UPDATE colet SET status = $1, id_depozit = NULL WHERE awb = $2`
	stampDeliveries            = `UPDATE livrare_colet SET data_livrare = $1 WHERE awb = $2`
)

// TransitionStatus applies t to one shipment inside a single transaction.
// Any failure rolls the whole change back.
func (r *Repository) TransitionStatus(ctx context.Context, awb string, t models.Transition, at time.Time) (*models.StatusChange, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.TransitionStatus.Begin: %w", err)
	}

	change, err := applyTransition(ctx, tx, awb, t, at)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("status transition rollback failed",
				zap.String("awb", awb), zap.String("status", t.Status), zap.Error(rbErr))
		} else {
			r.log.Info("status transition rolled back",
				zap.String("awb", awb), zap.String("status", t.Status))
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.TransitionStatus.Commit: %w", err)
	}
	return change, nil
}

func applyTransition(ctx context.Context, tx pgx.Tx, awb string, t models.Transition, at time.Time) (*models.StatusChange, error) {
	query := setStatus
	if t.ClearWarehouse {
		query = setStatusAndClearWarehouse
	}
	cmdTag, err := tx.Exec(ctx, query, t.Status, awb)
	if err != nil {
		return nil, fmt.Errorf("repository.TransitionStatus.UpdateStatus: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, models.ErrNotFound
	}

	change := &models.StatusChange{
		AWB:              awb,
		Status:           t.Status,
		WarehouseCleared: t.ClearWarehouse,
	}
	if t.StampDelivery {
		cmdTag, err := tx.Exec(ctx, stampDeliveries, at, awb)
		if err != nil {
			return nil, fmt.Errorf("repository.TransitionStatus.StampDelivery: %w", err)
		}
		change.DeliveredAt = &at
		change.DeliveriesStamped = cmdTag.RowsAffected()
	}
	return change, nil
}
