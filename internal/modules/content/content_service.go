package content

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

type ServiceInterface interface {
	ListContents(ctx context.Context, sort string) ([]*models.ShipmentContent, error)
	AddContent(ctx context.Context, req models.CreateShipmentContentRequest) error
	RemoveContent(ctx context.Context, awb string, productID int64) error
}

var Sorts = database.SortMap{
	Default: "awb ASC, id_produs ASC",
	Columns: map[string]string{
		"awb":       "awb",
		"id_produs": "id_produs",
		"cantitate": "cantitate",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListContents(ctx context.Context, sort string) ([]*models.ShipmentContent, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	contents, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListContents: %w", err)
	}
	return contents, nil
}

func (s *Service) AddContent(ctx context.Context, req models.CreateShipmentContentRequest) error {
	sc := &models.ShipmentContent{AWB: req.AWB, ProductID: req.ProductID, Quantity: req.Quantity}
	if err := s.repo.Create(ctx, sc); err != nil {
		return fmt.Errorf("service.AddContent: %w", err)
	}
	return nil
}

func (s *Service) RemoveContent(ctx context.Context, awb string, productID int64) error {
	return s.repo.Delete(ctx, awb, productID)
}
