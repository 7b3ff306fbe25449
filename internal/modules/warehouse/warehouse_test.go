package warehouse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"parcel-backoffice/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRepo records the last capacity written per warehouse.
type fakeRepo struct {
	capacity map[int64]int
}

func (f *fakeRepo) List(ctx context.Context, orderBy string) ([]*models.Warehouse, error) {
	return []*models.Warehouse{}, nil
}

func (f *fakeRepo) Create(ctx context.Context, maxCapacity int, locationID int64) (int64, error) {
	id := int64(len(f.capacity) + 1)
	f.capacity[id] = maxCapacity
	return id, nil
}

func (f *fakeRepo) UpdateCapacity(ctx context.Context, id int64, capacity int) error {
	if _, ok := f.capacity[id]; !ok {
		return models.ErrNotFound
	}
	f.capacity[id] = capacity
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.capacity[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.capacity, id)
	return nil
}

func TestHandler_UpdateCapacity(t *testing.T) {
	repo := &fakeRepo{capacity: map[int64]int{1: 500}}
	e := echo.New()
	NewHandler(NewService(repo), zap.NewNop()).RegisterRoutes(e.Group("/api"))

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"ok", "/api/depozite/1/capacitate", `{"capacitate":750}`, http.StatusOK},
		{"missing warehouse", "/api/depozite/9/capacitate", `{"capacitate":750}`, http.StatusNotFound},
		{"zero capacity", "/api/depozite/1/capacitate", `{"capacitate":0}`, http.StatusBadRequest},
		{"bad id", "/api/depozite/x/capacitate", `{"capacitate":10}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tt.target, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
	assert.Equal(t, 750, repo.capacity[1])
}

func TestRepository_ListJoinsLocation(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN locatie l ON l.id_locatie = d.id_locatie ORDER BY l.localitate ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"id_depozit", "capacitate_maxima", "id_locatie", "localitate", "judet", "strada", "cod_postal"}).
			AddRow(int64(3), 1000, int64(2), "Cluj-Napoca", "Cluj", "Str. Fabricii 5", "400001"))

	got, err := NewService(NewRepository(mock)).ListWarehouses(context.Background(), "localitate")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cluj-Napoca", got[0].City)
	assert.Equal(t, 1000, got[0].MaxCapacity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateReturnsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO depozit").
		WithArgs(800, int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"id_depozit"}).AddRow(int64(6)))

	id, err := NewRepository(mock).Create(context.Background(), 800, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
}
