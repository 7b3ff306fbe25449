package courier

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// ServiceInterface defines the contract for the courier service.
type ServiceInterface interface {
	ListCouriers(ctx context.Context, sort string) ([]*models.Courier, error)
	CreateCourier(ctx context.Context, req models.CreateCourierRequest) (int64, error)
	UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error
	DeleteCourier(ctx context.Context, id int64) error
}

var Sorts = database.SortMap{
	Default: "l.id_livrator ASC",
	Columns: map[string]string{
		"id_livrator": "l.id_livrator",
		"nume":        "l.nume",
		"prenume":     "l.prenume",
		"salariu":     "l.salariu",
		"vehicule":    "vehicule",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCouriers(ctx context.Context, sort string) ([]*models.Courier, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	couriers, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListCouriers: %w", err)
	}
	return couriers, nil
}

func (s *Service) CreateCourier(ctx context.Context, req models.CreateCourierRequest) (int64, error) {
	id, err := s.repo.Create(ctx, &models.Courier{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Salary:    req.Salary.Round(2),
	})
	if err != nil {
		return 0, fmt.Errorf("service.CreateCourier: %w", err)
	}
	return id, nil
}

// UpdateSalary sets a courier's salary, rounded to bani.
func (s *Service) UpdateSalary(ctx context.Context, id int64, salary decimal.Decimal) error {
	if salary.IsNegative() {
		return fmt.Errorf("%w: salariu must not be negative", models.ErrInvalidInput)
	}
	return s.repo.UpdateSalary(ctx, id, salary.Round(2))
}

func (s *Service) DeleteCourier(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
