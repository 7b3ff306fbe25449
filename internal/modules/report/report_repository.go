package report

import (
	"context"
	"errors"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RepositoryInterface defines the contract for the reporting queries.
type RepositoryInterface interface {
	TransitCouriers(ctx context.Context, status string, minSalary decimal.Decimal) ([]*models.TransitCourierRow, error)
	MultiProductShipments(ctx context.Context, minProducts int) ([]*models.MultiProductRow, error)
	ShipmentSenders(ctx context.Context) ([]*models.ShipmentSenderRow, error)
	WarehouseTotals(ctx context.Context) ([]*models.WarehouseReportRow, error)
	ToggleFirstViewStatus(ctx context.Context) (*models.ViewToggle, error)
}

type Repository struct {
	db  database.Pool
	log *zap.Logger
}

func NewRepository(db database.Pool, log *zap.Logger) RepositoryInterface {
	return &Repository{db: db, log: log}
}

const transitCouriersQuery = `
	SELECT c.awb, c.status, c.valoare_ron,
		l.nume || ' ' || l.prenume AS livrator,
		l.salariu
	FROM colet c
	JOIN livrare_colet lc ON lc.awb = c.awb
	JOIN livrator l ON l.id_livrator = lc.id_livrator
	WHERE c.status = $1 AND l.salariu > $2
	ORDER BY c.awb, l.id_livrator`

// TransitCouriers joins shipments with the couriers delivering them.
func (r *Repository) TransitCouriers(ctx context.Context, status string, minSalary decimal.Decimal) ([]*models.TransitCourierRow, error) {
	rows, err := r.db.Query(ctx, transitCouriersQuery, status, minSalary)
	if err != nil {
		return nil, fmt.Errorf("repository.TransitCouriers.Query: %w", err)
	}
	defer rows.Close()

	out := make([]*models.TransitCourierRow, 0)
	for rows.Next() {
		var row models.TransitCourierRow
		if err := rows.Scan(&row.AWB, &row.Status, &row.ValueRON, &row.Courier, &row.Salary); err != nil {
			return nil, fmt.Errorf("repository.TransitCouriers.Scan: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.TransitCouriers.rows: %w", err)
	}
	return out, nil
}

const multiProductQuery = `
	SELECT c.awb,
		c.destinatar_nume || ' ' || c.destinatar_prenume AS destinatar,
		COUNT(p.id_produs) AS nr_produse,
		string_agg(p.nume_produs, ', ' ORDER BY p.nume_produs) AS produse
	FROM colet c
	JOIN continut_colet cc ON cc.awb = c.awb
	JOIN produs p ON p.id_produs = cc.id_produs
	GROUP BY c.awb, c.destinatar_nume, c.destinatar_prenume
	HAVING COUNT(p.id_produs) > $1
	ORDER BY c.awb`

// MultiProductShipments returns shipments holding more than minProducts
// distinct products.
func (r *Repository) MultiProductShipments(ctx context.Context, minProducts int) ([]*models.MultiProductRow, error) {
	rows, err := r.db.Query(ctx, multiProductQuery, minProducts)
	if err != nil {
		return nil, fmt.Errorf("repository.MultiProductShipments.Query: %w", err)
	}
	defer rows.Close()

	out := make([]*models.MultiProductRow, 0)
	for rows.Next() {
		var row models.MultiProductRow
		if err := rows.Scan(&row.AWB, &row.Recipient, &row.ProductCount, &row.Products); err != nil {
			return nil, fmt.Errorf("repository.MultiProductShipments.Scan: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.MultiProductShipments.rows: %w", err)
	}
	return out, nil
}

func (r *Repository) ShipmentSenders(ctx context.Context) ([]*models.ShipmentSenderRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT awb, status, destinatar, expeditor, email, telefon
		FROM v_colete_expeditori
		ORDER BY awb`)
	if err != nil {
		return nil, fmt.Errorf("repository.ShipmentSenders.Query: %w", err)
	}
	defer rows.Close()

	out := make([]*models.ShipmentSenderRow, 0)
	for rows.Next() {
		var row models.ShipmentSenderRow
		if err := rows.Scan(&row.AWB, &row.Status, &row.Recipient, &row.Sender, &row.Email, &row.Phone); err != nil {
			return nil, fmt.Errorf("repository.ShipmentSenders.Scan: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ShipmentSenders.rows: %w", err)
	}
	return out, nil
}

func (r *Repository) WarehouseTotals(ctx context.Context) ([]*models.WarehouseReportRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id_depozit, localitate, judet, capacitate_maxima, nr_colete, greutate_totala, valoare_totala
		FROM v_raport_depozite
		ORDER BY valoare_totala DESC, id_depozit`)
	if err != nil {
		return nil, fmt.Errorf("repository.WarehouseTotals.Query: %w", err)
	}
	defer rows.Close()

	out := make([]*models.WarehouseReportRow, 0)
	for rows.Next() {
		var row models.WarehouseReportRow
		err := rows.Scan(&row.WarehouseID, &row.City, &row.County, &row.MaxCapacity,
			&row.ShipmentCount, &row.TotalWeight, &row.TotalValue)
		if err != nil {
			return nil, fmt.Errorf("repository.WarehouseTotals.Scan: %w", err)
		}
		out = append(out, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.WarehouseTotals.rows: %w", err)
	}
	return out, nil
}

const (
	firstViewRow     = `SELECT awb, status FROM v_colete_expeditori ORDER BY awb LIMIT 1`
	updateViewStatus = `UPDATE v_colete_expeditori SET status = $1 WHERE awb = $2`
	baseStatus       = `SELECT status FROM colet WHERE awb = $1`
)

// ToggleFirstViewStatus flips the status of the first shipment in
// v_colete_expeditori through the view itself and reads the result back from
// colet, all in one transaction.
func (r *Repository) ToggleFirstViewStatus(ctx context.Context) (*models.ViewToggle, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.ToggleFirstViewStatus.Begin: %w", err)
	}

	toggle, err := toggleFirst(ctx, tx)
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Error("view toggle rollback failed", zap.Error(rbErr))
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.ToggleFirstViewStatus.Commit: %w", err)
	}
	return toggle, nil
}

func toggleFirst(ctx context.Context, tx pgx.Tx) (*models.ViewToggle, error) {
	var t models.ViewToggle
	if err := tx.QueryRow(ctx, firstViewRow).Scan(&t.AWB, &t.OldStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEmptyView
		}
		return nil, fmt.Errorf("repository.ToggleFirstViewStatus.First: %w", err)
	}

	t.NewStatus = models.StatusInWarehouse
	if t.OldStatus == models.StatusInWarehouse {
		t.NewStatus = models.StatusInTransit
	}

	if _, err := tx.Exec(ctx, updateViewStatus, t.NewStatus, t.AWB); err != nil {
		return nil, fmt.Errorf("repository.ToggleFirstViewStatus.Update: %w", err)
	}
	if err := tx.QueryRow(ctx, baseStatus, t.AWB).Scan(&t.BaseStatus); err != nil {
		return nil, fmt.Errorf("repository.ToggleFirstViewStatus.ReadBack: %w", err)
	}
	return &t, nil
}
