package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/option"
)

// EventType names a kind of domain event on the wire.
type EventType string

const (
	OrderPlacedEventType             EventType = "order.placed"
	BillableOrderPlacedEventType     EventType = "order.billable_placed"
	OrderAcknowledgmentSentEventType EventType = "order.acknowledgment_sent"
)

// Event is a fact produced by placing an order.
//
// The implementations are OrderPlaced, BillableOrderPlaced and
// OrderAcknowledgmentSent; the set is closed.
type Event interface {
	EventType() EventType
	OrderID() kernel.OrderID
	isEvent()
}

// OrderPlaced announces a priced order to shipping. It carries the whole PricedOrder.
type OrderPlaced struct {
	order PricedOrder
}

func (e OrderPlaced) EventType() EventType {
	return OrderPlacedEventType
}

func (e OrderPlaced) OrderID() kernel.OrderID {
	return e.order.orderID
}

// PricedOrder returns the placed order.
func (e OrderPlaced) PricedOrder() PricedOrder {
	return e.order
}

func (OrderPlaced) isEvent() {}

// BillableOrderPlaced announces an order with a positive amount to billing.
type BillableOrderPlaced struct {
	orderID        kernel.OrderID
	billingAddress kernel.Address
	amountToBill   kernel.BillingAmount
}

func (e BillableOrderPlaced) EventType() EventType {
	return BillableOrderPlacedEventType
}

func (e BillableOrderPlaced) OrderID() kernel.OrderID {
	return e.orderID
}

func (e BillableOrderPlaced) BillingAddress() kernel.Address {
	return e.billingAddress
}

func (e BillableOrderPlaced) AmountToBill() kernel.BillingAmount {
	return e.amountToBill
}

func (BillableOrderPlaced) isEvent() {}

// OrderAcknowledgmentSent records that the customer was sent an acknowledgment.
type OrderAcknowledgmentSent struct {
	orderID      kernel.OrderID
	emailAddress kernel.EmailAddress
}

func (e OrderAcknowledgmentSent) EventType() EventType {
	return OrderAcknowledgmentSentEventType
}

func (e OrderAcknowledgmentSent) OrderID() kernel.OrderID {
	return e.orderID
}

func (e OrderAcknowledgmentSent) EmailAddress() kernel.EmailAddress {
	return e.emailAddress
}

func (OrderAcknowledgmentSent) isEvent() {}

// CreateEvents assembles the events for a placed order, in this order:
//
//	OrderPlaced                  always
//	OrderAcknowledgmentSent      when acknowledgment is Some
//	BillableOrderPlaced          when the amount to bill is greater than zero
func CreateEvents(priced PricedOrder, acknowledgment option.Option[OrderAcknowledgmentSent]) []Event {
	events := []Event{OrderPlaced{order: priced}}

	if sent, ok := acknowledgment.Get(); ok {
		events = append(events, sent)
	}

	if priced.amountToBill.IsPositive() {
		events = append(events, BillableOrderPlaced{
			orderID:        priced.orderID,
			billingAddress: priced.billingAddress,
			amountToBill:   priced.amountToBill,
		})
	}

	return events
}
