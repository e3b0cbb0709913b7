// Package services provides domain services that orchestrate the order-taking
// stages into business operations.
//
// The package includes:
//   - PlaceOrderWorkflow: validates, prices and acknowledges an order and
//     returns the domain events describing the outcome
//
// Services are stateless. Their collaborators are injected once at
// construction, and each call depends only on its input and those collaborators.
package services
