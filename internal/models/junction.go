package models

import "time"

// ShipmentContent (continut_colet) records how many of a product a shipment holds.
type ShipmentContent struct {
	AWB       string `json:"awb"`
	ProductID int64  `json:"id_produs"`
	Quantity  int    `json:"cantitate"`
}

type CreateShipmentContentRequest struct {
	AWB       string `json:"awb" validate:"required,max=20"`
	ProductID int64  `json:"id_produs" validate:"required,gt=0"`
	Quantity  int    `json:"cantitate" validate:"required,gt=0"`
}

// ShipmentDelivery (livrare_colet) assigns a courier to a shipment.
// DeliveredAt is stamped when the shipment becomes Livrat.
type ShipmentDelivery struct {
	AWB         string     `json:"awb"`
	CourierID   int64      `json:"id_livrator"`
	DeliveredAt *time.Time `json:"data_livrare"`
}

type CreateShipmentDeliveryRequest struct {
	AWB         string     `json:"awb" validate:"required,max=20"`
	CourierID   int64      `json:"id_livrator" validate:"required,gt=0"`
	DeliveredAt *time.Time `json:"data_livrare,omitempty"`
}

// VehicleAllocation (alocare_vehicul) gives a courier a vehicle from a date on.
type VehicleAllocation struct {
	CourierID   int64     `json:"id_livrator"`
	Plate       string    `json:"nr_inmatriculare"`
	AllocatedAt time.Time `json:"data_alocare"`
}

type CreateVehicleAllocationRequest struct {
	CourierID   int64      `json:"id_livrator" validate:"required,gt=0"`
	Plate       string     `json:"nr_inmatriculare" validate:"required,max=15"`
	AllocatedAt *time.Time `json:"data_alocare,omitempty"`
}
