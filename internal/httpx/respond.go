// Package httpx holds the response and path-parameter helpers shared by the
// module handlers.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"parcel-backoffice/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error writes err as an ErrorResponse. Bad input maps to 400 and missing rows
// to 404; anything else is logged under op and returned as 500 carrying the
// database's own message.
func Error(c echo.Context, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrEmptyView):
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrInvalidSort),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	}

	log.Error(op,
		zap.Error(err),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
	)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: driverMessage(err)})
}

// driverMessage strips the operation prefixes added on the way up and returns
// the database error, or the innermost cause for anything else.
func driverMessage(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Error()
	}
	for next := errors.Unwrap(err); next != nil; next = errors.Unwrap(err) {
		err = next
	}
	return err.Error()
}

// Created writes a 201 MessageResponse; id may be nil.
func Created(c echo.Context, message string, id *int64) error {
	return c.JSON(http.StatusCreated, models.MessageResponse{Message: message, ID: id})
}

// OK writes a 200 MessageResponse.
func OK(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}

// ParamInt64 parses the positive integer path parameter name.
func ParamInt64(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", models.ErrInvalidInput, name, raw)
	}
	return id, nil
}

// ParamTime parses the RFC 3339 timestamp path parameter name. The segment
// may arrive percent-encoded.
func ParamTime(c echo.Context, name string) (time.Time, error) {
	raw := c.Param(name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be an RFC 3339 timestamp, got %q", models.ErrInvalidInput, name, raw)
	}
	return t, nil
}
