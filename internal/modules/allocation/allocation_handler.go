package allocation

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for vehicle allocations.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "allocation")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/alocari-vehicule", h.ListAllocations)
	g.POST("/alocari-vehicule", h.AllocateVehicle)
	g.DELETE("/alocari-vehicule/:id_livrator/:nr_inmatriculare/:data_alocare", h.ReleaseVehicle)
}

func (h *Handler) ListAllocations(c echo.Context) error {
	allocations, err := h.svc.ListAllocations(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListAllocations", err)
	}
	return c.JSON(http.StatusOK, allocations)
}

func (h *Handler) AllocateVehicle(c echo.Context) error {
	var req models.CreateVehicleAllocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	a, err := h.svc.AllocateVehicle(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.AllocateVehicle", err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Alocare vehicul adăugată cu succes!",
		"alocare": a,
	})
}

func (h *Handler) ReleaseVehicle(c echo.Context) error {
	courierID, err := httpx.ParamInt64(c, "id_livrator")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ReleaseVehicle", err)
	}
	allocatedAt, err := httpx.ParamTime(c, "data_alocare")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ReleaseVehicle", err)
	}

	err = h.svc.ReleaseVehicle(c.Request().Context(), courierID, c.Param("nr_inmatriculare"), allocatedAt)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ReleaseVehicle", err)
	}
	return httpx.OK(c, "Alocare vehicul ștearsă cu succes!")
}
