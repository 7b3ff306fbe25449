package report

import (
	"context"
	"fmt"

	"parcel-backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// Thresholds of the fixed reports.
var (
	WellPaidSalary = decimal.NewFromInt(4000)
	MinProducts    = 1
)

// ServiceInterface defines the contract for the reporting service.
type ServiceInterface interface {
	JoinComplex(ctx context.Context) ([]*models.TransitCourierRow, error)
	GroupByHaving(ctx context.Context) ([]*models.MultiProductRow, error)
	ComposedView(ctx context.Context) ([]*models.ShipmentSenderRow, error)
	TestUpdateView(ctx context.Context) (*models.ViewToggle, error)
	ComplexView(ctx context.Context) ([]*models.WarehouseReportRow, error)
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// JoinComplex lists in-transit shipments handled by couriers earning more
// than WellPaidSalary.
func (s *Service) JoinComplex(ctx context.Context) ([]*models.TransitCourierRow, error) {
	rows, err := s.repo.TransitCouriers(ctx, models.StatusInTransit, WellPaidSalary)
	if err != nil {
		return nil, fmt.Errorf("service.JoinComplex: %w", err)
	}
	return rows, nil
}

// GroupByHaving lists shipments holding more than one product.
func (s *Service) GroupByHaving(ctx context.Context) ([]*models.MultiProductRow, error) {
	rows, err := s.repo.MultiProductShipments(ctx, MinProducts)
	if err != nil {
		return nil, fmt.Errorf("service.GroupByHaving: %w", err)
	}
	return rows, nil
}

func (s *Service) ComposedView(ctx context.Context) ([]*models.ShipmentSenderRow, error) {
	rows, err := s.repo.ShipmentSenders(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ComposedView: %w", err)
	}
	return rows, nil
}

func (s *Service) TestUpdateView(ctx context.Context) (*models.ViewToggle, error) {
	return s.repo.ToggleFirstViewStatus(ctx)
}

func (s *Service) ComplexView(ctx context.Context) ([]*models.WarehouseReportRow, error) {
	rows, err := s.repo.WarehouseTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ComplexView: %w", err)
	}
	return rows, nil
}
