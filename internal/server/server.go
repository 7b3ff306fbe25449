package server

import (
	"parcel-backoffice/internal/config"
	"parcel-backoffice/internal/database"
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

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// New wires every repository, service and handler on top of db and returns
// the ready router.
func New(cfg *config.Config, db database.Pool, log *zap.Logger) *echo.Echo {
	return NewRouter(RouterConfig{
		Log:          log,
		DB:           db,
		ClientOrigin: cfg.ClientOrigin,
		StaticDir:    cfg.StaticDir,

		ShipmentHandler: shipment.NewHandler(
			shipment.NewService(shipment.NewRepository(db, log)), log),
		SenderHandler: sender.NewHandler(
			sender.NewService(sender.NewRepository(db)), log),
		ProductHandler: product.NewHandler(
			product.NewService(product.NewRepository(db)), log),
		CourierHandler: courier.NewHandler(
			courier.NewService(courier.NewRepository(db)), log),
		VehicleHandler: vehicle.NewHandler(
			vehicle.NewService(vehicle.NewRepository(db)), log),
		WarehouseHandler: warehouse.NewHandler(
			warehouse.NewService(warehouse.NewRepository(db)), log),
		LocationHandler: location.NewHandler(
			location.NewService(location.NewRepository(db)), log),
		ContentHandler: content.NewHandler(
			content.NewService(content.NewRepository(db)), log),
		DeliveryHandler: delivery.NewHandler(
			delivery.NewService(delivery.NewRepository(db)), log),
		AllocationHandler: allocation.NewHandler(
			allocation.NewService(allocation.NewRepository(db)), log),
		ReportHandler: report.NewHandler(
			report.NewService(report.NewRepository(db, log)), log),
	})
}
