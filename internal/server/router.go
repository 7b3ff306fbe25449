package server

import (
	"context"
	"net/http"
	"time"

	"parcel-backoffice/internal/models"
	"parcel-backoffice/internal/modules/allocation"
	"parcel-backoffice/internal/modules/content"
	"parcel-backoffice/internal/modules/courier"
	"parcel-backoffice/internal/modules/delivery"
	"parcel-backoffice/internal/modules/location"
	"parcel-backoffice/internal/modules/product"
	"parcel-backoffice/internal/modules/report"
	"parcel-backoffice/internal/modules/sender"
	"parcel-backoffice/internal/modules/shipment"
	"parcel-backoffice/internal/modules/vehicle"
	"parcel-backoffice/internal/modules/warehouse"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type RouterConfig struct {
	Log          *zap.Logger
	DB           Pinger
	ClientOrigin string
	StaticDir    string

	ShipmentHandler   *shipment.Handler
	SenderHandler     *sender.Handler
	ProductHandler    *product.Handler
	CourierHandler    *courier.Handler
	VehicleHandler    *vehicle.Handler
	WarehouseHandler  *warehouse.Handler
	LocationHandler   *location.Handler
	ContentHandler    *content.Handler
	DeliveryHandler   *delivery.Handler
	AllocationHandler *allocation.Handler
	ReportHandler     *report.Handler
}

func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	//-----------------------------------------
	// Middleware
	//-----------------------------------------
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(cfg.Log))
	e.Use(middleware.Recover())

	origin := cfg.ClientOrigin
	if origin == "" {
		origin = "*"
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderXRequestID},
	}))

	//-----------------------------------------
	// Health
	//-----------------------------------------
	e.GET("/healthz", healthz(cfg.DB))

	//-----------------------------------------
	// API
	//-----------------------------------------
	api := e.Group("/api")
	cfg.ShipmentHandler.RegisterRoutes(api)
	cfg.SenderHandler.RegisterRoutes(api)
	cfg.ProductHandler.RegisterRoutes(api)
	cfg.CourierHandler.RegisterRoutes(api)
	cfg.VehicleHandler.RegisterRoutes(api)
	cfg.WarehouseHandler.RegisterRoutes(api)
	cfg.LocationHandler.RegisterRoutes(api)
	cfg.ContentHandler.RegisterRoutes(api)
	cfg.DeliveryHandler.RegisterRoutes(api)
	cfg.AllocationHandler.RegisterRoutes(api)
	cfg.ReportHandler.RegisterRoutes(api)

	//-----------------------------------------
	// UI
	//-----------------------------------------
	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	return e
}

func healthz(db Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

// requestLogger writes one zap line per request.
func requestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				log.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
