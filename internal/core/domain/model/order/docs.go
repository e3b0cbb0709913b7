// Package order models the life of an order as it is taken: from the raw
// record received at the boundary to the priced order and the events that
// announce it.
//
// An order moves through three shapes that are distinct types:
//
//	UnvalidatedOrder --Validator--> ValidatedOrder --Pricer--> PricedOrder
//
// ValidatedOrder and PricedOrder have no exported constructor. The only way to
// obtain one is to run the stage that produces it, so a function that accepts
// a PricedOrder is statically guaranteed that validation and pricing happened.
//
// After pricing, the Acknowledger attempts to send the customer a letter and
// CreateEvents assembles the resulting domain events.
//
// Every stage receives its external collaborators (catalog lookups, the
// address service, the letter renderer, the mailer) as function values at
// construction time. The stages themselves hold no mutable state.
//
// Errors:
//   - ValidationError: a field of the unvalidated order is not acceptable
//   - PricingError: a price could not be found or a computed amount is out of range
//   - RemoteServiceError: a collaborator failed, so the outcome is unknown
//
// A failed acknowledgment is not an error; it only means no
// OrderAcknowledgmentSent event is produced.
package order
