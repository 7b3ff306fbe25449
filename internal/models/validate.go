package models

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// NewValidator returns a validator with the domain rules registered.
// decimal.Decimal fields validate as float64, so numeric tags such as gte=0
// apply to them; shipmentstatus accepts the three colet statuses.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	if err := v.RegisterValidation("shipmentstatus", func(fl validator.FieldLevel) bool {
		return ValidStatus(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("models.NewValidator: %v", err))
	}
	return v
}
