package services

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrPlaceOrderWorkflowIsNotConstructed is returned by a zero value PlaceOrderWorkflow.
var ErrPlaceOrderWorkflowIsNotConstructed = errs.NewValueIsRequiredError(
	"place order workflow must be created via NewPlaceOrderWorkflow")

// PlaceOrderWorkflow takes an unvalidated order through every stage:
//
//	validate -> price -> acknowledge -> create events
//
// A validation, pricing or remote service error stops the workflow and is
// returned unchanged; later stages do not run. A failed acknowledgment does not
// stop it: the events are returned without OrderAcknowledgmentSent.
//
// Example usage:
//
//	workflow, err := services.NewPlaceOrderWorkflow(
//	    catalog.CheckProductCodeExists,
//	    addressClient.CheckAddressExists,
//	    catalog.GetProductPrice,
//	    renderer.CreateOrderAcknowledgmentLetter,
//	    sender.SendOrderAcknowledgment,
//	)
//	if err != nil {
//	    return err
//	}
//	events, err := workflow.Run(ctx, unvalidatedOrder)
//	var validationErr *order.ValidationError
//	if errors.As(err, &validationErr) {
//	    // report validationErr.Field to the caller
//	}
type PlaceOrderWorkflow struct {
	validator    order.Validator
	pricer       order.Pricer
	acknowledger order.Acknowledger
	guard        guard.ConstructorGuard
}

// NewPlaceOrderWorkflow wires the five collaborators into the stages.
//
// Returns an errs.ValueIsRequiredError naming the first nil collaborator.
func NewPlaceOrderWorkflow(
	checkProductCodeExists order.CheckProductCodeExists,
	checkAddressExists order.CheckAddressExists,
	getProductPrice order.GetProductPrice,
	createLetter order.CreateOrderAcknowledgmentLetter,
	sendAcknowledgment order.SendOrderAcknowledgment,
) (PlaceOrderWorkflow, error) {
	validator, err := order.NewValidator(checkProductCodeExists, checkAddressExists)
	if err != nil {
		return PlaceOrderWorkflow{}, err
	}

	pricer, err := order.NewPricer(getProductPrice)
	if err != nil {
		return PlaceOrderWorkflow{}, err
	}

	acknowledger, err := order.NewAcknowledger(createLetter, sendAcknowledgment)
	if err != nil {
		return PlaceOrderWorkflow{}, err
	}

	return PlaceOrderWorkflow{
		validator:    validator,
		pricer:       pricer,
		acknowledger: acknowledger,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Run places unvalidated and returns its events.
//
// Returns:
//   - []order.Event: OrderPlaced, then OrderAcknowledgmentSent if the letter was
//     sent, then BillableOrderPlaced if there is an amount to bill
//   - error: *order.ValidationError, *order.PricingError or *order.RemoteServiceError
func (w PlaceOrderWorkflow) Run(ctx context.Context, unvalidated order.UnvalidatedOrder) ([]order.Event, error) {
	if err := w.guard.Validate(ErrPlaceOrderWorkflowIsNotConstructed); err != nil {
		return nil, err
	}

	validated, err := w.validator.Validate(ctx, unvalidated)
	if err != nil {
		return nil, err
	}

	priced, err := w.pricer.Price(ctx, validated)
	if err != nil {
		return nil, err
	}

	acknowledgment := w.acknowledger.Acknowledge(ctx, priced)

	return order.CreateEvents(priced, acknowledgment), nil
}
