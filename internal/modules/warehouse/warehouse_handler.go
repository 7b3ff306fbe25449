package warehouse

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for warehouses.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "warehouse")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/depozite", h.ListWarehouses)
	g.POST("/depozite", h.CreateWarehouse)
	g.PUT("/depozite/:id/capacitate", h.UpdateCapacity)
	g.DELETE("/depozite/:id", h.DeleteWarehouse)
}

func (h *Handler) ListWarehouses(c echo.Context) error {
	warehouses, err := h.svc.ListWarehouses(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListWarehouses", err)
	}
	return c.JSON(http.StatusOK, warehouses)
}

func (h *Handler) CreateWarehouse(c echo.Context) error {
	var req models.CreateWarehouseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	id, err := h.svc.CreateWarehouse(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.CreateWarehouse", err)
	}
	return httpx.Created(c, "Depozit adăugat cu succes!", &id)
}

func (h *Handler) UpdateCapacity(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.UpdateCapacity", err)
	}

	var req models.UpdateCapacityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if err := h.svc.UpdateCapacity(c.Request().Context(), id, req.Capacity); err != nil {
		return httpx.Error(c, h.log, "Handler.UpdateCapacity", err)
	}
	return httpx.OK(c, "Capacitate actualizată cu succes!")
}

func (h *Handler) DeleteWarehouse(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteWarehouse", err)
	}
	if err := h.svc.DeleteWarehouse(c.Request().Context(), id); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteWarehouse", err)
	}
	return httpx.OK(c, "Depozit șters cu succes!")
}
