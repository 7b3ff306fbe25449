package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrInvalidSort = errors.New("invalid sort")
var ErrInvalidStatus = errors.New("invalid shipment status")
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyView is returned by the view round-trip when the view has no rows.
var ErrEmptyView = errors.New("view v_colete_expeditori has no rows")

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms a mutation. ID is set when the database generated
// the key of a new row.
type MessageResponse struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}
