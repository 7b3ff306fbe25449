package models

// Product (produs).
type Product struct {
	ID       int64  `json:"id_produs"`
	Name     string `json:"nume_produs"`
	Category string `json:"nume_categorie"`
	Fragile  bool   `json:"fragilitate"`
}

type CreateProductRequest struct {
	Name     string `json:"nume_produs" validate:"required,max=100"`
	Category string `json:"nume_categorie" validate:"required,max=60"`
	Fragile  bool   `json:"fragilitate"`
}

// Vehicle (vehicul) is keyed by its plate number.
type Vehicle struct {
	Plate          string  `json:"nr_inmatriculare"`
	Make           string  `json:"marca"`
	Model          string  `json:"model"`
	VolumeCapacity float64 `json:"capacitate_dimensiune"`
	WeightCapacity float64 `json:"capacitate_greutate"`
}

type CreateVehicleRequest struct {
	Plate          string  `json:"nr_inmatriculare" validate:"required,max=15"`
	Make           string  `json:"marca" validate:"required,max=40"`
	Model          string  `json:"model" validate:"required,max=40"`
	VolumeCapacity float64 `json:"capacitate_dimensiune" validate:"gt=0"`
	WeightCapacity float64 `json:"capacitate_greutate" validate:"gt=0"`
}
