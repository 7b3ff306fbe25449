package location

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

type ServiceInterface interface {
	ListLocations(ctx context.Context, sort string) ([]*models.Location, error)
	CreateLocation(ctx context.Context, req models.CreateLocationRequest) (int64, error)
	DeleteLocation(ctx context.Context, id int64) error
}

var Sorts = database.SortMap{
	Default: "id_locatie ASC",
	Columns: map[string]string{
		"id_locatie": "id_locatie",
		"cod_postal": "cod_postal",
		"judet":      "judet",
		"localitate": "localitate",
		"strada":     "strada",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListLocations(ctx context.Context, sort string) ([]*models.Location, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	locations, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListLocations: %w", err)
	}
	return locations, nil
}

func (s *Service) CreateLocation(ctx context.Context, req models.CreateLocationRequest) (int64, error) {
	id, err := s.repo.Create(ctx, &models.Location{
		PostalCode: req.PostalCode,
		County:     req.County,
		City:       req.City,
		Street:     req.Street,
	})
	if err != nil {
		return 0, fmt.Errorf("service.CreateLocation: %w", err)
	}
	return id, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
