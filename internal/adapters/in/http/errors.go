package http

import (
	"errors"
	"net/http"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// errorResponse maps an error from a use case to a status and body.
// The outcome labels the orders_total counter.
func errorResponse(err error) (Error, string) {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		return Error{
			Code:    http.StatusBadRequest,
			Message: validationErr.Error(),
			Field:   validationErr.Field,
			LineID:  validationErr.LineID,
		}, outcomeValidation
	}

	var pricingErr *order.PricingError
	if errors.As(err, &pricingErr) {
		return Error{
			Code:    http.StatusUnprocessableEntity,
			Message: pricingErr.Error(),
			Field:   pricingErr.Field,
			LineID:  pricingErr.LineID,
		}, outcomePricing
	}

	switch {
	case errors.Is(err, order.ErrRemoteService):
		return Error{Code: http.StatusServiceUnavailable, Message: err.Error()}, outcomeRemote
	case errors.Is(err, ports.ErrOrderAlreadyPlaced):
		return Error{Code: http.StatusConflict, Message: err.Error()}, outcomeDuplicate
	case errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: err.Error()}, outcomeError
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueDoesNotMatchPattern):
		return Error{Code: http.StatusBadRequest, Message: err.Error()}, outcomeInvalid
	default:
		return Error{Code: http.StatusInternalServerError, Message: "internal error"}, outcomeError
	}
}
