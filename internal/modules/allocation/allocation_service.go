package allocation

import (
	"context"
	"fmt"
	"time"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

type ServiceInterface interface {
	ListAllocations(ctx context.Context, sort string) ([]*models.VehicleAllocation, error)
	AllocateVehicle(ctx context.Context, req models.CreateVehicleAllocationRequest) (*models.VehicleAllocation, error)
	ReleaseVehicle(ctx context.Context, courierID int64, plate string, allocatedAt time.Time) error
}

var Sorts = database.SortMap{
	Default: "id_livrator ASC, nr_inmatriculare ASC, data_alocare ASC",
	Columns: map[string]string{
		"id_livrator":      "id_livrator",
		"nr_inmatriculare": "nr_inmatriculare",
		"data_alocare":     "data_alocare",
	},
}

type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListAllocations(ctx context.Context, sort string) ([]*models.VehicleAllocation, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	allocations, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListAllocations: %w", err)
	}
	return allocations, nil
}

// AllocateVehicle gives a vehicle to a courier from the requested date, or
// from now when none is given. Timestamps are kept to the microsecond, the
// precision Postgres stores, so the returned key can be used to delete the row.
func (s *Service) AllocateVehicle(ctx context.Context, req models.CreateVehicleAllocationRequest) (*models.VehicleAllocation, error) {
	at := s.now()
	if req.AllocatedAt != nil {
		at = *req.AllocatedAt
	}
	a := &models.VehicleAllocation{
		CourierID:   req.CourierID,
		Plate:       req.Plate,
		AllocatedAt: at.UTC().Truncate(time.Microsecond),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("service.AllocateVehicle: %w", err)
	}
	return a, nil
}

func (s *Service) ReleaseVehicle(ctx context.Context, courierID int64, plate string, allocatedAt time.Time) error {
	return s.repo.Delete(ctx, courierID, plate, allocatedAt)
}
