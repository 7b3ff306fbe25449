package report

import (
	"fmt"
	"net/http"

	"parcel-backoffice/internal/httpx"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler serves the /rapoarte endpoints.
type Handler struct {
	svc ServiceInterface
	log *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log.With(zap.String("module", "report"))}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/rapoarte")
	r.GET("/join-complex", h.JoinComplex)
	r.GET("/group-by-having", h.GroupByHaving)
	r.GET("/view-compus", h.ComposedView)
	r.POST("/test-update-view", h.TestUpdateView)
	r.GET("/view-complex", h.ComplexView)
}

func (h *Handler) JoinComplex(c echo.Context) error {
	rows, err := h.svc.JoinComplex(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.log, "Handler.JoinComplex", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) GroupByHaving(c echo.Context) error {
	rows, err := h.svc.GroupByHaving(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.log, "Handler.GroupByHaving", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) ComposedView(c echo.Context) error {
	rows, err := h.svc.ComposedView(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ComposedView", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) TestUpdateView(c echo.Context) error {
	t, err := h.svc.TestUpdateView(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.log, "Handler.TestUpdateView", err)
	}
	h.log.Info("status toggled through view",
		zap.String("awb", t.AWB),
		zap.String("from", t.OldStatus),
		zap.String("to", t.NewStatus),
	)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  fmt.Sprintf("UPDATE funcționează! Coletul %s actualizat: %s → %s", t.AWB, t.OldStatus, t.NewStatus),
		"rezultat": t,
	})
}

func (h *Handler) ComplexView(c echo.Context) error {
	rows, err := h.svc.ComplexView(c.Request().Context())
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ComplexView", err)
	}
	return c.JSON(http.StatusOK, rows)
}
