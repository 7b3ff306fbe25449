package sender

import (
	"context"
	"fmt"
	"strings"

	"parcel-backoffice/internal/database"
	"parcel-backoffice/internal/models"
)

// ServiceInterface defines the contract for the sender service.
type ServiceInterface interface {
	ListSenders(ctx context.Context, sort string) ([]*models.Sender, error)
	CreateSender(ctx context.Context, req models.CreateSenderRequest) (int64, error)
	DeleteSender(ctx context.Context, id int64) error
}

var Sorts = database.SortMap{
	Default: "id_expeditor ASC",
	Columns: map[string]string{
		"id_expeditor":  "id_expeditor",
		"tip_expeditor": "tip_expeditor",
		"nume":          "nume",
		"prenume":       "prenume",
		"telefon":       "telefon",
		"email":         "email",
		"adresa":        "adresa",
	},
}

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListSenders(ctx context.Context, sort string) ([]*models.Sender, error) {
	orderBy, err := Sorts.OrderBy(sort)
	if err != nil {
		return nil, err
	}
	senders, err := s.repo.List(ctx, orderBy)
	if err != nil {
		return nil, fmt.Errorf("service.ListSenders: %w", err)
	}
	return senders, nil
}

// CreateSender stores a blank email as NULL.
func (s *Service) CreateSender(ctx context.Context, req models.CreateSenderRequest) (int64, error) {
	sender := &models.Sender{
		Type:      req.Type,
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		sender.Email = &email
	}
	id, err := s.repo.Create(ctx, sender)
	if err != nil {
		return 0, fmt.Errorf("service.CreateSender: %w", err)
	}
	return id, nil
}

func (s *Service) DeleteSender(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
