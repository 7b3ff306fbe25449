package warehouse

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// ServiceInterface defines the contract for the warehouse service.
type ServiceInterface interface {
	ListWarehouses(ctx context.Context, sort string) ([]*models.Warehouse, error)
	CreateWarehouse(ctx context.Context, req models.CreateWarehouseRequest) (int64, error)
	UpdateCapacity(ctx context.Context, id int64, capacity int) error
	DeleteWarehouse(ctx context.Context, id int64) error
}

var Sorts = database.SortMap{
	Default: "d.id_depozit ASC",
	Columns: map[string]string{
		"id_depozit":        "d.id_depozit",
		"capacitate_maxima": "d.capacitate_maxima",
		"id_locatie":        "d.id_locatie",
		"localitate":        "l.localitate",
		"judet":             "l.judet",
		"strada":            "l.strada",
		"cod_postal":        "l.cod_postal",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListWarehouses(ctx context.Context, sort string) ([]*models.Warehouse, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	warehouses, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListWarehouses: %w", err)
	}
	return warehouses, nil
}

func (s *Service) CreateWarehouse(ctx context.Context, req models.CreateWarehouseRequest) (int64, error) {
	id, err := s.repo.Create(ctx, req.MaxCapacity, req.LocationID)
	if err != nil {
		return 0, fmt.Errorf("service.CreateWarehouse: %w", err)
	}
	return id, nil
}

func (s *Service) UpdateCapacity(ctx context.Context, id int64, capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacitate must be positive", models.ErrInvalidInput)
	}
	return s.repo.UpdateCapacity(ctx, id, capacity)
}

func (s *Service) DeleteWarehouse(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
