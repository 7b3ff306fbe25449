package content

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for shipment contents.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "content")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/continut-colete", h.ListContents)
	g.POST("/continut-colete", h.AddContent)
	g.DELETE("/continut-colete/:awb/:id_produs", h.RemoveContent)
}

func (h *Handler) ListContents(c echo.Context) error {
	contents, err := h.svc.ListContents(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListContents", err)
	}
	return c.JSON(http.StatusOK, contents)
}

func (h *Handler) AddContent(c echo.Context) error {
	var req models.CreateShipmentContentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	if err := h.svc.AddContent(c.Request().Context(), req); err != nil {
		return httpx.Error(c, h.log, "Handler.AddContent", err)
	}
	return httpx.Created(c, "Conținut colet adăugat cu succes!", nil)
}

func (h *Handler) RemoveContent(c echo.Context) error {
	productID, err := httpx.ParamInt64(c, "id_produs")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.RemoveContent", err)
	}
	if err := h.svc.RemoveContent(c.Request().Context(), c.Param("awb"), productID); err != nil {
		return httpx.Error(c, h.log, "Handler.RemoveContent", err)
	}
	return httpx.OK(c, "Conținut colet șters cu succes!")
}
