package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel-backoffice/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubService struct {
	toggle *models.ViewToggle
	err    error
}

func (s *stubService) JoinComplex(ctx context.Context) ([]*models.TransitCourierRow, error) {
	return []*models.TransitCourierRow{}, s.err
}

func (s *stubService) GroupByHaving(ctx context.Context) ([]*models.MultiProductRow, error) {
	return []*models.MultiProductRow{}, s.err
}

func (s *stubService) ComposedView(ctx context.Context) ([]*models.ShipmentSenderRow, error) {
	return []*models.ShipmentSenderRow{}, s.err
}

func (s *stubService) TestUpdateView(ctx context.Context) (*models.ViewToggle, error) {
	return s.toggle, s.err
}

func (s *stubService) ComplexView(ctx context.Context) ([]*models.WarehouseReportRow, error) {
	return []*models.WarehouseReportRow{}, s.err
}

func serve(svc ServiceInterface, method, target string) *httptest.ResponseRecorder {
	e := echo.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(e.Group("/api"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestReportLists_EmptyIsArray(t *testing.T) {
	for _, path := range []string{"join-complex", "group-by-having", "view-compus", "view-complex"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(&stubService{}, http.MethodGet, "/api/rapoarte/"+path)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())
		})
	}
}

func TestTestUpdateView(t *testing.T) {
	svc := &stubService{toggle: &models.ViewToggle{
		AWB: "AWB1", OldStatus: models.StatusInWarehouse, NewStatus: models.StatusInTransit, BaseStatus: models.StatusInTransit,
	}}
	rec := serve(svc, http.MethodPost, "/api/rapoarte/test-update-view")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string            `json:"message"`
		Result  models.ViewToggle `json:"rezultat"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "AWB1")
	assert.Equal(t, models.StatusInTransit, body.Result.BaseStatus)

	rec = serve(&stubService{err: models.ErrEmptyView}, http.MethodPost, "/api/rapoarte/test-update-view")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
