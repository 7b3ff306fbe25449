package shipment

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shipments.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

// NewHandler creates a new shipment handler.
func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "shipment")),
	}
}

// RegisterRoutes mounts the /colete routes on g.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/colete", h.ListShipments)
	g.POST("/colete", h.CreateShipment)
	g.PUT("/colete/:awb/status", h.UpdateStatus)
	g.DELETE("/colete/:awb", h.DeleteShipment)
}

func (h *Handler) ListShipments(c echo.Context) error {
	shipments, err := h.svc.ListShipments(c.Request().Context(), c.QueryParam("sort"), c.QueryParam("status"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListShipments", err)
	}
	return c.JSON(http.StatusOK, shipments)
}

func (h *Handler) CreateShipment(c echo.Context) error {
	var req models.CreateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if _, err := h.svc.CreateShipment(c.Request().Context(), req); err != nil {
		return httpx.Error(c, h.log, "Handler.CreateShipment", err)
	}
	return httpx.Created(c, "Colet adăugat cu succes!", nil)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	awb := c.Param("awb")

	var req models.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	change, err := h.svc.UpdateStatus(c.Request().Context(), awb, req.Status)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.UpdateStatus", err)
	}
	h.log.Info("shipment status changed",
		zap.String("awb", change.AWB),
		zap.String("status", change.Status),
		zap.Int64("deliveries_stamped", change.DeliveriesStamped),
	)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Status actualizat cu succes!",
		"transition": change,
	})
}

func (h *Handler) DeleteShipment(c echo.Context) error {
	if err := h.svc.DeleteShipment(c.Request().Context(), c.Param("awb")); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteShipment", err)
	}
	return httpx.OK(c, "Colet șters cu succes!")
}
