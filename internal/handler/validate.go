package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"cinema-tickets/internal/model"

	"github.com/go-playground/validator/v10"
)

// newValidator builds the request body validator with the ticket type rule registered.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("ticket_type", validateTicketType)

	return v
}

func validateTicketType(fl validator.FieldLevel) bool {
	ticketType, ok := fl.Field().Interface().(model.TicketType)
	if !ok {
		return false
	}
	return ticketType.IsValid()
}

// validationMessage turns the first failing field into a readable message.
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	fe := validationErrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "PurchaseRequestBody.")

	switch fe.Tag() {
	case "ticket_type":
		return fmt.Sprintf("%s must be one of ADULT, CHILD or INFANT", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
