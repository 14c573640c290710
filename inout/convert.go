package inout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"resell-dashboard/utils"
)

// SetupValidator makes validation errors report form field names.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// ValidationMessage turns a binding error into a one-line flash message.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err.Error()
	}
	out := make([]string, len(ve))
	for i, fe := range ve {
		out[i] = fieldMessage(fe)
	}
	return strings.Join(out, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "numeric":
		return field + " must be a number"
	case "datetime":
		return field + " must be a date (YYYY-MM-DD)"
	case "oneof":
		return field + " must be one of " + fe.Param()
	case "max":
		return field + " is too long"
	case "min":
		return field + " is too small"
	default:
		return field + " " + fe.Tag()
	}
}

// money parses an optional amount; blank means zero.
func money(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a number", field)
	}
	return d, nil
}

// optionalMoney parses an amount that may be absent.
func optionalMoney(field, s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := money(field, s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

func date(field, s string) (*time.Time, error) {
	t, err := utils.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date (YYYY-MM-DD)", field)
	}
	return t, nil
}

// checked reads an HTML checkbox value.
func checked(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// parser collects the first conversion error across several fields.
type parser struct {
	err error
}

func (p *parser) money(field, s string) decimal.Decimal {
	d, err := money(field, s)
	p.keep(err)
	return d
}

func (p *parser) optionalMoney(field, s string) decimal.NullDecimal {
	d, err := optionalMoney(field, s)
	p.keep(err)
	return d
}

func (p *parser) date(field, s string) *time.Time {
	t, err := date(field, s)
	p.keep(err)
	return t
}

func (p *parser) keep(err error) {
	if p.err == nil && err != nil {
		p.err = err
	}
}
