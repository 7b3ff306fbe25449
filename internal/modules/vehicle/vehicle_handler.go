package vehicle

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for vehicles.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "vehicle")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/vehicule", h.ListVehicles)
	g.POST("/vehicule", h.CreateVehicle)
	g.DELETE("/vehicule/:nr", h.DeleteVehicle)
}

func (h *Handler) ListVehicles(c echo.Context) error {
	vehicles, err := h.svc.ListVehicles(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListVehicles", err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) CreateVehicle(c echo.Context) error {
	var req models.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if err := h.svc.CreateVehicle(c.Request().Context(), req); err != nil {
		return httpx.Error(c, h.log, "Handler.CreateVehicle", err)
	}
	return httpx.Created(c, "Vehicul adăugat cu succes!", nil)
}

func (h *Handler) DeleteVehicle(c echo.Context) error {
	if err := h.svc.DeleteVehicle(c.Request().Context(), c.Param("nr")); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteVehicle", err)
	}
	return httpx.OK(c, "Vehicul șters cu succes!")
}
