package report

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"parcel-backoffice/internal/models"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, RepositoryInterface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewRepository(mock, zap.NewNop())
}

func TestTransitCouriers_BindsFilters(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.status = $1 AND l.salariu > $2")).
		WithArgs(models.StatusInTransit, WellPaidSalary).
		WillReturnRows(pgxmock.NewRows([]string{"awb", "status", "valoare_ron", "livrator", "salariu"}).
			AddRow("AWB5", models.StatusInTransit, "310.00", "Marin Vlad", "5200.00"))

	rows, err := NewService(repo).JoinComplex(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Marin Vlad", rows[0].Courier)
	assert.True(t, rows[0].Salary.GreaterThan(decimal.NewFromInt(4000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMultiProductShipments_HavingMoreThanOne(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("HAVING COUNT(p.id_produs) > $1")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"awb", "destinatar", "nr_produse", "produse"}).
			AddRow("AWB1", "Popescu Ana", int64(2), "Carte, Vaza"))

	rows, err := NewService(repo).GroupByHaving(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Greater(t, rows[0].ProductCount, int64(1))
	assert.Equal(t, "Carte, Vaza", rows[0].Products)
}

func TestWarehouseTotals_OrderedByValue(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM v_raport_depozite ORDER BY valoare_totala DESC")).
		WillReturnRows(pgxmock.NewRows([]string{"id_depozit", "localitate", "judet", "capacitate_maxima", "nr_colete", "greutate_totala", "valoare_totala"}).
			AddRow(int64(2), "Iasi", "Iasi", 300, int64(4), 12.5, "900.00").
			AddRow(int64(1), "Cluj-Napoca", "Cluj", 1000, int64(0), 0.0, "0"))

	rows, err := repo.WarehouseTotals(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].TotalValue.GreaterThan(rows[1].TotalValue))
	assert.Zero(t, rows[1].ShipmentCount)
}

func TestShipmentSenders_NullEmail(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectQuery("FROM v_colete_expeditori").
		WillReturnRows(pgxmock.NewRows([]string{"awb", "status", "destinatar", "expeditor", "email", "telefon"}).
			AddRow("AWB1", models.StatusInWarehouse, "Popescu Ana", "Ionescu Dan", nil, "0711"))

	rows, err := repo.ShipmentSenders(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Email)
}

func TestToggleFirstViewStatus(t *testing.T) {
	tests := []struct {
		old  string
		want string
	}{
		{models.StatusInWarehouse, models.StatusInTransit},
		{models.StatusInTransit, models.StatusInWarehouse},
		{models.StatusDelivered, models.StatusInWarehouse},
	}
	for _, tt := range tests {
		t.Run(tt.old, func(t *testing.T) {
			mock, repo := newMockRepo(t)
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(firstViewRow)).
				WillReturnRows(pgxmock.NewRows([]string{"awb", "status"}).AddRow("AWB1", tt.old))
			mock.ExpectExec(regexp.QuoteMeta(updateViewStatus)).
				WithArgs(tt.want, "AWB1").
				WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			mock.ExpectQuery(regexp.QuoteMeta(baseStatus)).
				WithArgs("AWB1").
				WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(tt.want))
			mock.ExpectCommit()

			got, err := repo.ToggleFirstViewStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, &models.ViewToggle{AWB: "AWB1", OldStatus: tt.old, NewStatus: tt.want, BaseStatus: tt.want}, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestToggleFirstViewStatus_EmptyView(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(firstViewRow)).
		WillReturnRows(pgxmock.NewRows([]string{"awb", "status"}))
	mock.ExpectRollback()

	_, err := repo.ToggleFirstViewStatus(context.Background())
	assert.ErrorIs(t, err, models.ErrEmptyView)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFirstViewStatus_UpdateFailsRollsBack(t *testing.T) {
	mock, repo := newMockRepo(t)
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(firstViewRow)).
		WillReturnRows(pgxmock.NewRows([]string{"awb", "status"}).AddRow("AWB1", models.StatusInWarehouse))
	mock.ExpectExec(regexp.QuoteMeta(updateViewStatus)).
		WithArgs(models.StatusInTransit, "AWB1").
		WillReturnError(errors.New("cannot update view"))
	mock.ExpectRollback()

	_, err := repo.ToggleFirstViewStatus(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
