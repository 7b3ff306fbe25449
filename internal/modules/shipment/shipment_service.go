package shipment

import (
	"context"
	"fmt"
	"time"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// ServiceInterface defines the contract for the shipment service.
type ServiceInterface interface {
	ListShipments(ctx context.Context, sort, status string) ([]*models.Shipment, error)
	CreateShipment(ctx context.Context, req models.CreateShipmentRequest) (*models.Shipment, error)
	DeleteShipment(ctx context.Context, awb string) error
	UpdateStatus(ctx context.Context, awb, status string) (*models.StatusChange, error)
}

// Sorts lists the sort keys accepted by GET /api/colete.
var Sorts = database.SortMap{
	Default: "data_preluare DESC",
	Columns: map[string]string{
		"awb":                "awb",
		"status":             "status",
		"data_preluare":      "data_preluare",
		"destinatar_nume":    "destinatar_nume",
		"destinatar_prenume": "destinatar_prenume",
		"greutate":           "greutate",
		"valoare_ron":        "valoare_ron",
		"id_expeditor":       "id_expeditor",
		"id_depozit":         "id_depozit",
	},
}

// Service implements the shipment service logic.
type Service struct {
	repo RepositoryInterface
	now  func() time.Time
}

// NewService creates a new shipment service.
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListShipments returns all shipments, filtered by status when it is set.
func (s *Service) ListShipments(ctx context.Context, sort, status string) ([]*models.Shipment, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidStatus, status)
	}
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	shipments, err := s.repo.List(ctx, status, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListShipments: %w", err)
	}
	return shipments, nil
}

// CreateShipment records a new shipment picked up now.
func (s *Service) CreateShipment(ctx context.Context, req models.CreateShipmentRequest) (*models.Shipment, error) {
	shipment := &models.Shipment{
		AWB:                req.AWB,
		Status:             req.Status,
		PickupDate:         s.now().UTC(),
		RecipientLastName:  req.RecipientLastName,
		RecipientFirstName: req.RecipientFirstName,
		RecipientAddress:   req.RecipientAddress,
		WeightKg:           req.WeightKg,
		Dimensions:         req.Dimensions,
		ValueRON:           req.ValueRON,
		SenderID:           req.SenderID,
		WarehouseID:        req.WarehouseID,
	}
	// A shipment can only sit in a warehouse while it is In Depozit.
	if shipment.Status != models.StatusInWarehouse {
		shipment.WarehouseID = nil
	}
	if err := s.repo.Create(ctx, shipment); err != nil {
		return nil, fmt.Errorf("service.CreateShipment: %w", err)
	}
	return shipment, nil
}

func (s *Service) DeleteShipment(ctx context.Context, awb string) error {
	return s.repo.Delete(ctx, awb)
}

// UpdateStatus moves a shipment to status, clearing its warehouse and
// stamping its deliveries as the status requires.
func (s *Service) UpdateStatus(ctx context.Context, awb, status string) (*models.StatusChange, error) {
	t, err := models.TransitionFor(status)
	if err != nil {
		return nil, err
	}
	return s.repo.TransitionStatus(ctx, awb, t, s.now().UTC())
}
