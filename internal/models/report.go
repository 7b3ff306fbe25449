package models

import "github.com/shopspring/decimal"

// TransitCourierRow is a row of the in-transit / well-paid courier report.
type TransitCourierRow struct {
	AWB      string          `json:"awb"`
	Status   string          `json:"status"`
	ValueRON decimal.Decimal `json:"valoare_colet"`
	Courier  string          `json:"livrator"`
	Salary   decimal.Decimal `json:"salariu_livrator"`
}

// MultiProductRow is a shipment holding more than one product.
type MultiProductRow struct {
	AWB          string `json:"awb"`
	Recipient    string `json:"destinatar"`
	ProductCount int64  `json:"nr_produse"`
	Products     string `json:"produse"`
}

// ShipmentSenderRow is a row of v_colete_expeditori.
type ShipmentSenderRow struct {
	AWB       string  `json:"awb"`
	Status    string  `json:"status"`
	Recipient string  `json:"destinatar"`
	Sender    string  `json:"expeditor"`
	Email     *string `json:"email"`
	Phone     string  `json:"telefon"`
}

// WarehouseReportRow is a row of v_raport_depozite.
type WarehouseReportRow struct {
	WarehouseID   int64           `json:"id_depozit"`
	City          string          `json:"localitate"`
	County        string          `json:"judet"`
	MaxCapacity   int             `json:"capacitate_maxima"`
	ShipmentCount int64           `json:"nr_colete"`
	TotalWeight   float64         `json:"greutate_totala"`
	TotalValue    decimal.Decimal `json:"valoare_totala"`
}

// ViewToggle is the outcome of updating a status through v_colete_expeditori.
// BaseStatus is read back from colet after the update.
type ViewToggle struct {
	AWB        string `json:"awb"`
	OldStatus  string `json:"status_vechi"`
	NewStatus  string `json:"status_nou"`
	BaseStatus string `json:"status_colet"`
}
