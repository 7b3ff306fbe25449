package courier

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for couriers.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "courier")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/livratori", h.ListCouriers)
	g.POST("/livratori", h.CreateCourier)
	g.PUT("/livratori/:id/salariu", h.UpdateSalary)
	g.DELETE("/livratori/:id", h.DeleteCourier)
}

func (h *Handler) ListCouriers(c echo.Context) error {
	couriers, err := h.svc.ListCouriers(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListCouriers", err)
	}
	return c.JSON(http.StatusOK, couriers)
}

func (h *Handler) CreateCourier(c echo.Context) error {
	var req models.CreateCourierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	id, err := h.svc.CreateCourier(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.CreateCourier", err)
	}
	return httpx.Created(c, "Livrator adăugat cu succes!", &id)
}

func (h *Handler) UpdateSalary(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.UpdateSalary", err)
	}

	var req models.UpdateSalaryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if err := h.svc.UpdateSalary(c.Request().Context(), id, req.Salary); err != nil {
		return httpx.Error(c, h.log, "Handler.UpdateSalary", err)
	}
	return httpx.OK(c, "Salariu actualizat cu succes!")
}

func (h *Handler) DeleteCourier(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteCourier", err)
	}
	if err := h.svc.DeleteCourier(c.Request().Context(), id); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteCourier", err)
	}
	return httpx.OK(c, "Livrator șters cu succes!")
}
