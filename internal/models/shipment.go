package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Shipment statuses as stored in colet.status.
const (
	StatusInWarehouse = "In Depozit"
	StatusInTransit   = "In Tranzit"
	StatusDelivered   = "Livrat"
)

// Shipment (colet) is a parcel identified by its AWB.
type Shipment struct {
	AWB                string          `json:"awb"`
	Status             string          `json:"status"`
	PickupDate         time.Time       `json:"data_preluare"`
	RecipientLastName  string          `json:"destinatar_nume"`
	RecipientFirstName string          `json:"destinatar_prenume"`
	RecipientAddress   string          `json:"destinatar_adresa"`
	WeightKg           float64         `json:"greutate"`
	Dimensions         string          `json:"dimensiune"`
	ValueRON           decimal.Decimal `json:"valoare_ron"`
	SenderID           int64           `json:"id_expeditor"`
	WarehouseID        *int64          `json:"id_depozit"`
}

// CreateShipmentRequest is the body of POST /api/colete.
type CreateShipmentRequest struct {
	AWB                string          `json:"awb" validate:"required,max=20"`
	Status             string          `json:"status" validate:"required,shipmentstatus"`
	RecipientLastName  string          `json:"destinatar_nume" validate:"required,max=60"`
	RecipientFirstName string          `json:"destinatar_prenume" validate:"required,max=60"`
	RecipientAddress   string          `json:"destinatar_adresa" validate:"required,max=200"`
	WeightKg           float64         `json:"greutate" validate:"gt=0"`
	Dimensions         string          `json:"dimensiune" validate:"required,max=30"`
	ValueRON           decimal.Decimal `json:"valoare_ron" validate:"gte=0"`
	SenderID           int64           `json:"id_expeditor" validate:"required,gt=0"`
	WarehouseID        *int64          `json:"id_depozit,omitempty" validate:"omitempty,gt=0"`
}

// UpdateStatusRequest is the body of PUT /api/colete/:awb/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,shipmentstatus"`
}

// Transition lists the writes a status change performs besides setting
// colet.status.
type Transition struct {
	Status         string
	ClearWarehouse bool
	StampDelivery  bool
}

var transitions = map[string]Transition{
	StatusInWarehouse: {Status: StatusInWarehouse},
	StatusInTransit:   {Status: StatusInTransit, ClearWarehouse: true},
	StatusDelivered:   {Status: StatusDelivered, ClearWarehouse: true, StampDelivery: true},
}

// TransitionFor returns the writes required to move a shipment to status.
func TransitionFor(status string) (Transition, error) {
	t, ok := transitions[status]
	if !ok {
		return Transition{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return t, nil
}

func ValidStatus(status string) bool {
	_, ok := transitions[status]
	return ok
}

// StatusChange reports what a committed transition did.
type StatusChange struct {
	AWB               string     `json:"awb"`
	Status            string     `json:"status"`
	WarehouseCleared  bool       `json:"warehouse_cleared"`
	DeliveredAt       *time.Time `json:"data_livrare,omitempty"`
	DeliveriesStamped int64      `json:"deliveries_stamped"`
}
