package product

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// ServiceInterface defines the contract for the product service.
type ServiceInterface interface {
	ListProducts(ctx context.Context, sort string) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error
}

var Sorts = database.SortMap{
	Default: "id_produs ASC",
	Columns: map[string]string{
		"id_produs":      "id_produs",
		"nume_produs":    "nume_produs",
		"nume_categorie": "nume_categorie",
		"fragilitate":    "fragilitate",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListProducts(ctx context.Context, sort string) ([]*models.Product, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListProducts: %w", err)
	}
	return products, nil
}

func (s *Service) CreateProduct(ctx context.Context, req models.CreateProductRequest) (int64, error) {
	id, err := s.repo.Create(ctx, &models.Product{Name: req.Name, Category: req.Category, Fragile: req.Fragile})
	if err != nil {
		return 0, fmt.Errorf("service.CreateProduct: %w", err)
	}
	return id, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
