package shipment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"parcel-backoffice/internal/models"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var shipmentColumns = []string{
	"awb", "status", "data_preluare", "destinatar_nume", "destinatar_prenume", "destinatar_adresa",
	"greutate", "dimensiune", "valoare_ron", "id_expeditor", "id_depozit",
}

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, &Repository{db: mock, log: zap.NewNop()}
}

func TestRepository_List_BindsStatusAndAppendsOrder(t *testing.T) {
	mock, repo := newMockRepo(t)
	picked := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1::text = '' OR status = $1) ORDER BY awb ASC")).
		WithArgs(models.StatusInWarehouse).
		WillReturnRows(pgxmock.NewRows(shipmentColumns).
			AddRow("AWB1", models.StatusInWarehouse, picked, "Popescu", "Ana", "Brasov", 2.5, "30x20x10", "150.00", int64(1), int64(3)).
			AddRow("AWB2", models.StatusInWarehouse, picked, "Ionescu", "Dan", "Cluj", 1.0, "10x10x10", "20", int64(2), nil))

	got, err := repo.List(context.Background(), models.StatusInWarehouse, " ORDER BY awb ASC")
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].WarehouseID)
	assert.Equal(t, int64(3), *got[0].WarehouseID)
	assert.True(t, decimal.RequireFromString("150").Equal(got[0].ValueRON))
	assert.Nil(t, got[1].WarehouseID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("FROM colet").WithArgs("").WillReturnRows(pgxmock.NewRows(shipmentColumns))

	got, err := repo.List(context.Background(), "", " ORDER BY data_preluare DESC")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_Create_NoWarehouse(t *testing.T) {
	mock, repo := newMockRepo(t)
	s := &models.Shipment{
		AWB: "AWB9", Status: models.StatusInTransit, PickupDate: time.Now(),
		RecipientLastName: "Pop", RecipientFirstName: "Ion", RecipientAddress: "Iasi",
		WeightKg: 3, Dimensions: "1x1x1", ValueRON: decimal.NewFromInt(10), SenderID: 7,
	}
	mock.ExpectExec("INSERT INTO colet").
		WithArgs("AWB9", models.StatusInTransit, pgxmock.AnyArg(), "Pop", "Ion", "Iasi",
			3.0, "1x1x1", pgxmock.AnyArg(), int64(7), (*int64)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectExec("DELETE FROM colet").WithArgs("NOPE").WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "NOPE")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepository_TransitionStatus_InWarehouseKeepsWarehouse(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusInWarehouse)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(setStatus)).
		WithArgs(models.StatusInWarehouse, "AWB1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	change, err := repo.TransitionStatus(context.Background(), "AWB1", tr, time.Now())
	require.NoError(t, err)
	assert.False(t, change.WarehouseCleared)
	assert.Nil(t, change.DeliveredAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_InTransitClearsWarehouse(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusInTransit)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET status = $1, id_depozit = NULL WHERE awb = $2")).
		WithArgs(models.StatusInTransit, "AWB1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	change, err := repo.TransitionStatus(context.Background(), "AWB1", tr, time.Now())
	require.NoError(t, err)
	assert.True(t, change.WarehouseCleared)
	assert.Zero(t, change.DeliveriesStamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_DeliveredStampsDeliveries(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusDelivered)
	at := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(setStatusAndClearWarehouse)).
		WithArgs(models.StatusDelivered, "AWB1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(stampDeliveries)).
		WithArgs(at, "AWB1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	change, err := repo.TransitionStatus(context.Background(), "AWB1", tr, at)
	require.NoError(t, err)
	assert.True(t, change.WarehouseCleared)
	require.NotNil(t, change.DeliveredAt)
	assert.Equal(t, at, *change.DeliveredAt)
	assert.Equal(t, int64(2), change.DeliveriesStamped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_UnknownAWBRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusDelivered)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE colet").
		WithArgs(models.StatusDelivered, "NOPE").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	_, err := repo.TransitionStatus(context.Background(), "NOPE", tr, time.Now())
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_StampFailureRollsBackEverything(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusDelivered)
	dbErr := errors.New("deadlock detected")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE colet").
		WithArgs(models.StatusDelivered, "AWB1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE livrare_colet").
		WithArgs(pgxmock.AnyArg(), "AWB1").
		WillReturnError(dbErr)
	mock.ExpectRollback()

	change, err := repo.TransitionStatus(context.Background(), "AWB1", tr, time.Now())
	assert.Nil(t, change)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_RollbackFailureStillReturnsCause(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusInTransit)
	dbErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE colet").
		WithArgs(models.StatusInTransit, "AWB1").
		WillReturnError(dbErr)
	mock.ExpectRollback().WillReturnError(errors.New("conn closed"))

	_, err := repo.TransitionStatus(context.Background(), "AWB1", tr, time.Now())
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TransitionStatus_BeginFails(t *testing.T) {
	mock, repo := newMockRepo(t)
	tr, _ := models.TransitionFor(models.StatusInTransit)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := repo.TransitionStatus(context.Background(), "AWB1", tr, time.Now())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
