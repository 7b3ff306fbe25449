package models

import "github.com/shopspring/decimal"

// Sender (expeditor) ships parcels; deleting one removes its shipments.
type Sender struct {
	ID        int64   `json:"id_expeditor"`
	Type      string  `json:"tip_expeditor"`
	LastName  string  `json:"nume"`
	FirstName string  `json:"prenume"`
	Phone     string  `json:"telefon"`
	Email     *string `json:"email"`
	Address   string  `json:"adresa"`
}

type CreateSenderRequest struct {
	Type      string `json:"tip_expeditor" validate:"required,max=30"`
	LastName  string `json:"nume" validate:"required,max=60"`
	FirstName string `json:"prenume" validate:"required,max=60"`
	Phone     string `json:"telefon" validate:"required,max=20"`
	Email     string `json:"email" validate:"omitempty,email,max=120"`
	Address   string `json:"adresa" validate:"required,max=200"`
}

// Courier (livrator). Vehicles is the comma separated list of plates
// allocated to the courier, nil when there are none.
type Courier struct {
	ID        int64           `json:"id_livrator"`
	LastName  string          `json:"nume"`
	FirstName string          `json:"prenume"`
	Salary    decimal.Decimal `json:"salariu"`
	Vehicles  *string         `json:"vehicule"`
}

type CreateCourierRequest struct {
	LastName  string          `json:"nume" validate:"required,max=60"`
	FirstName string          `json:"prenume" validate:"required,max=60"`
	Salary    decimal.Decimal `json:"salariu" validate:"gte=0"`
}

type UpdateSalaryRequest struct {
	Salary decimal.Decimal `json:"salariu" validate:"gte=0"`
}
