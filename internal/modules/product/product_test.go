package product

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

func TestProducts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	e := echo.New()
	NewHandler(NewService(NewRepository(mock)), zap.NewNop()).RegisterRoutes(e.Group("/api"))

	do := func(method, target, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("list sorted by category", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM produs ORDER BY nume_categorie DESC")).
			WillReturnRows(pgxmock.NewRows([]string{"id_produs", "nume_produs", "nume_categorie", "fragilitate"}).
				AddRow(int64(1), "Vaza", "Decor", true))
		rec := do(http.MethodGet, "/api/produse?sort=nume_categorie+desc", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id_produs":1,"nume_produs":"Vaza","nume_categorie":"Decor","fragilitate":true}]`, rec.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO produs").
			WithArgs("Laptop", "Electronice", true).
			WillReturnRows(pgxmock.NewRows([]string{"id_produs"}).AddRow(int64(8)))
		rec := do(http.MethodPost, "/api/produse", `{"nume_produs":"Laptop","nume_categorie":"Electronice","fragilitate":true}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":8`)
	})

	t.Run("create missing name", func(t *testing.T) {
		rec := do(http.MethodPost, "/api/produse", `{"nume_categorie":"Electronice"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM produs").WithArgs(int64(99)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		rec := do(http.MethodDelete, "/api/produse/99", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_CreateProductWrapsErrors(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO produs").
		WithArgs("X", "Y", false).
		WillReturnError(assert.AnError)

	_, err = NewService(NewRepository(mock)).CreateProduct(context.Background(), models.CreateProductRequest{Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, assert.AnError)
}
