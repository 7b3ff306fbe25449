package delivery

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

type ServiceInterface interface {
	ListDeliveries(ctx context.Context, sort string) ([]*models.ShipmentDelivery, error)
	AssignCourier(ctx context.Context, req models.CreateShipmentDeliveryRequest) error
	UnassignCourier(ctx context.Context, awb string, courierID int64) error
}

var Sorts = database.SortMap{
	Default: "awb ASC, id_livrator ASC",
	Columns: map[string]string{
		"awb":          "awb",
		"id_livrator":  "id_livrator",
		"data_livrare": "data_livrare",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDeliveries(ctx context.Context, sort string) ([]*models.ShipmentDelivery, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListDeliveries: %w", err)
	}
	return deliveries, nil
}

// AssignCourier links a courier to a shipment. The delivery date normally
// stays empty until the shipment is marked Livrat.
func (s *Service) AssignCourier(ctx context.Context, req models.CreateShipmentDeliveryRequest) error {
	d := &models.ShipmentDelivery{AWB: req.AWB, CourierID: req.CourierID, DeliveredAt: req.DeliveredAt}
	if d.DeliveredAt != nil {
		utc := d.DeliveredAt.UTC()
		d.DeliveredAt = &utc
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return fmt.Errorf("service.AssignCourier: %w", err)
	}
	return nil
}

func (s *Service) UnassignCourier(ctx context.Context, awb string, courierID int64) error {
	return s.repo.Delete(ctx, awb, courierID)
}
