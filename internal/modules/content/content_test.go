package content

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestContentRoutes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	e := echo.New()
	NewHandler(NewService(NewRepository(mock)), zap.NewNop()).RegisterRoutes(e.Group("/api"))

	mock.ExpectQuery(regexp.QuoteMeta("FROM continut_colet ORDER BY awb ASC, id_produs ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"awb", "id_produs", "cantitate"}).
			AddRow("AWB1", int64(1), 2).
			AddRow("AWB1", int64(4), 1))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/continut-colete", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"awb":"AWB1","id_produs":1,"cantitate":2},{"awb":"AWB1","id_produs":4,"cantitate":1}]`, rec.Body.String())

	// Unknown product: the foreign key rejects the row and the driver message is passed on.
	mock.ExpectExec("INSERT INTO continut_colet").
		WithArgs("AWB1", int64(77), 3).
		WillReturnError(&pgconn.PgError{Severity: "ERROR", Code: "23503", Message: `insert or update on table "continut_colet" violates foreign key constraint`})
	req := httptest.NewRequest(http.MethodPost, "/api/continut-colete", strings.NewReader(`{"awb":"AWB1","id_produs":77,"cantitate":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "violates foreign key constraint")

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM continut_colet WHERE awb = $1 AND id_produs = $2")).
		WithArgs("AWB1", int64(4)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/continut-colete/AWB1/4", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}
