package delivery

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shipment deliveries.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "delivery")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/livrari-colete", h.ListDeliveries)
	g.POST("/livrari-colete", h.AssignCourier)
	g.DELETE("/livrari-colete/:awb/:id_livrator", h.UnassignCourier)
}

func (h *Handler) ListDeliveries(c echo.Context) error {
	deliveries, err := h.svc.ListDeliveries(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListDeliveries", err)
	}
	return c.JSON(http.StatusOK, deliveries)
}

func (h *Handler) AssignCourier(c echo.Context) error {
	var req models.CreateShipmentDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if err := h.svc.AssignCourier(c.Request().Context(), req); err != nil {
		return httpx.Error(c, h.log, "Handler.AssignCourier", err)
	}
	return httpx.Created(c, "Livrare colet adăugată cu succes!", nil)
}

func (h *Handler) UnassignCourier(c echo.Context) error {
	courierID, err := httpx.ParamInt64(c, "id_livrator")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.UnassignCourier", err)
	}
	if err := h.svc.UnassignCourier(c.Request().Context(), c.Param("awb"), courierID); err != nil {
		return httpx.Error(c, h.log, "Handler.UnassignCourier", err)
	}
	return httpx.OK(c, "Livrare colet ștearsă cu succes!")
}
