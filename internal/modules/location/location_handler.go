package location

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for locations.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "location")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/locatii", h.ListLocations)
	g.POST("/locatii", h.CreateLocation)
	g.DELETE("/locatii/:id", h.DeleteLocation)
}

func (h *Handler) ListLocations(c echo.Context) error {
	locations, err := h.svc.ListLocations(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListLocations", err)
	}
	return c.JSON(http.StatusOK, locations)
}

func (h *Handler) CreateLocation(c echo.Context) error {
	var req models.CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	id, err := h.svc.CreateLocation(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.CreateLocation", err)
	}
	return httpx.Created(c, "Locație adăugată cu succes!", &id)
}

func (h *Handler) DeleteLocation(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteLocation", err)
	}
	if err := h.svc.DeleteLocation(c.Request().Context(), id); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteLocation", err)
	}
	return httpx.OK(c, "Locație ștearsă cu succes!")
}
