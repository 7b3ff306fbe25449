package vehicle

import (
	"context"
	"fmt"
	"strings"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// ServiceInterface defines the contract for the vehicle service.
type ServiceInterface interface {
	ListVehicles(ctx context.Context, sort string) ([]*models.Vehicle, error)
	CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) error
	DeleteVehicle(ctx context.Context, plate string) error
}

var Sorts = database.SortMap{
	Default: "nr_inmatriculare ASC",
	Columns: map[string]string{
		"nr_inmatriculare":      "nr_inmatriculare",
		"marca":                 "marca",
		"model":                 "model",
		"capacitate_dimensiune": "capacitate_dimensiune",
		"capacitate_greutate":   "capacitate_greutate",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListVehicles(ctx context.Context, sort string) ([]*models.Vehicle, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListVehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle stores plates upper case, as they are printed.
func (s *Service) CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) error {
	v := &models.Vehicle{
		Plate:          strings.ToUpper(strings.TrimSpace(req.Plate)),
		Make:           req.Make,
		Model:          req.Model,
		VolumeCapacity: req.VolumeCapacity,
		WeightCapacity: req.WeightCapacity,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return fmt.Errorf("service.CreateVehicle: %w", err)
	}
	return nil
}

func (s *Service) DeleteVehicle(ctx context.Context, plate string) error {
	return s.repo.Delete(ctx, plate)
}
