package models

// Location (locatie) is a postal address. Deleting one removes its warehouses.
type Location struct {
	ID         int64  `json:"id_locatie"`
	PostalCode string `json:"cod_postal"`
	County     string `json:"judet"`
	City       string `json:"localitate"`
	Street     string `json:"strada"`
}

type CreateLocationRequest struct {
	PostalCode string `json:"cod_postal" validate:"required,max=10"`
	County     string `json:"judet" validate:"required,max=50"`
	City       string `json:"localitate" validate:"required,max=80"`
	Street     string `json:"strada" validate:"required,max=120"`
}

// Warehouse (depozit) as listed, joined with its location.
type Warehouse struct {
	ID          int64  `json:"id_depozit"`
	MaxCapacity int    `json:"capacitate_maxima"`
	LocationID  int64  `json:"id_locatie"`
	City        string `json:"localitate"`
	County      string `json:"judet"`
	Street      string `json:"strada"`
	PostalCode  string `json:"cod_postal"`
}

type CreateWarehouseRequest struct {
	MaxCapacity int   `json:"capacitate_maxima" validate:"required,gt=0"`
	LocationID  int64 `json:"id_locatie" validate:"required,gt=0"`
}

type UpdateCapacityRequest struct {
	Capacity int `json:"capacitate" validate:"required,gt=0"`
}
