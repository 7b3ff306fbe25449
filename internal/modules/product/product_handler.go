package product

import (
	"net/http"

	"parcel-backoffice/internal/httpx"
	"parcel-backoffice/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	svc      ServiceInterface
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(svc ServiceInterface, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		validate: models.NewValidator(),
		log:      log.With(zap.String("module", "product")),
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/produse", h.ListProducts)
	g.POST("/produse", h.CreateProduct)
	g.DELETE("/produse/:id", h.DeleteProduct)
}

func (h *Handler) ListProducts(c echo.Context) error {
	products, err := h.svc.ListProducts(c.Request().Context(), c.QueryParam("sort"))
	if err != nil {
		return httpx.Error(c, h.log, "Handler.ListProducts", err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c echo.Context) error {
	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Validation failed: " + err.Error()})
	}

	id, err := h.svc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return httpx.Error(c, h.log, "Handler.CreateProduct", err)
	}
	return httpx.Created(c, "Produs adăugat cu succes!", &id)
}

func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := httpx.ParamInt64(c, "id")
	if err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteProduct", err)
	}
	if err := h.svc.DeleteProduct(c.Request().Context(), id); err != nil {
		return httpx.Error(c, h.log, "Handler.DeleteProduct", err)
	}
	return httpx.OK(c, "Produs șters cu succes!")
}
