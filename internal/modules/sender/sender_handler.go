package sender

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for senders.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

// NewHandler creates a new sender handler.
func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "sender")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/expeditori", h.ListSenders)
	g.POST("/expeditori", h.CreateSender)
	g.DELETE("/expeditori/:id", h.DeleteSender)
}

func (h *Handler) ListSenders(c echo.Context) error {
	senders, err := h.svc.ListSenders(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListSenders", err)
	}
	return c.JSON(http.StatusOK, senders)
}

func (h *Handler) CreateSender(c echo.Context) error {
	var req models.CreateSenderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	id, err := h.svc.CreateSender(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.CreateSender", err)
	}
	return httpx.Created(c, "Expeditor adăugat cu succes!", &id)
}

func (h *Handler) DeleteSender(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteSender", err)
	}
	if err := h.svc.DeleteSender(c.Request().Context(), id); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteSender", err)
	}
	return httpx.OK(c, "Expeditor șters cu succes!")
}
