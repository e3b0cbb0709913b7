// Package contracts defines the JSON documents this service puts on the wire:
// order events in the outbox and on Kafka, and acknowledgment messages.
package contracts

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/option"
)

const (
	EventOrderPlaced             = string(order.OrderPlacedEventType)
	EventBillableOrderPlaced     = string(order.BillableOrderPlacedEventType)
	EventOrderAcknowledgmentSent = string(order.OrderAcknowledgmentSentEventType)
)

// Event is the envelope shared by every order event.
type Event struct {
	EventID    string          `json:"event_id"`
	OrderID    string          `json:"order_id"`
	Type       string          `json:"type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}

type OrderPlaced struct {
	Order PlacedOrder `json:"order"`
}

type PlacedOrder struct {
	OrderID         string            `json:"order_id"`
	CustomerInfo    CustomerInfo      `json:"customer_info"`
	ShippingAddress Address           `json:"shipping_address"`
	BillingAddress  Address           `json:"billing_address"`
	Lines           []PlacedOrderLine `json:"lines"`
	AmountToBill    decimal.Decimal   `json:"amount_to_bill"`
}

type CustomerInfo struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

type Address struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

type PlacedOrderLine struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	LinePrice   decimal.Decimal `json:"line_price"`
}

type BillableOrderPlaced struct {
	BillingAddress Address         `json:"billing_address"`
	AmountToBill   decimal.Decimal `json:"amount_to_bill"`
}

type OrderAcknowledgmentSent struct {
	EmailAddress string `json:"email_address"`
}

// NewEvent wraps a domain event into an envelope with the given id.
func NewEvent(id uuid.UUID, event order.Event, occurredAt time.Time) (Event, error) {
	payload, err := EncodePayload(event)
	if err != nil {
		return Event{}, err
	}

	return Event{
		EventID:    id.String(),
		OrderID:    event.OrderID().String(),
		Type:       string(event.EventType()),
		OccurredAt: occurredAt.UTC(),
		Payload:    payload,
	}, nil
}

// EncodePayload returns the JSON payload of a domain event.
func EncodePayload(event order.Event) (json.RawMessage, error) {
	var payload any
	switch e := event.(type) {
	case order.OrderPlaced:
		payload = OrderPlaced{Order: FromPricedOrder(e.PricedOrder())}
	case order.BillableOrderPlaced:
		payload = BillableOrderPlaced{
			BillingAddress: FromAddress(e.BillingAddress()),
			AmountToBill:   e.AmountToBill().Value(),
		}
	case order.OrderAcknowledgmentSent:
		payload = OrderAcknowledgmentSent{EmailAddress: e.EmailAddress().String()}
	default:
		return nil, fmt.Errorf("unsupported event %T", event)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event.EventType(), err)
	}
	return raw, nil
}

// FromPricedOrder converts a priced order to its wire form.
func FromPricedOrder(priced order.PricedOrder) PlacedOrder {
	name := priced.CustomerInfo().Name()
	lines := make([]PlacedOrderLine, 0, len(priced.Lines()))
	for _, l := range priced.Lines() {
		lines = append(lines, PlacedOrderLine{
			OrderLineID: l.OrderLineID().String(),
			ProductCode: l.ProductCode().String(),
			Quantity:    l.Quantity().Value(),
			LinePrice:   l.LinePrice().Value(),
		})
	}

	return PlacedOrder{
		OrderID: priced.OrderID().String(),
		CustomerInfo: CustomerInfo{
			FirstName:    name.FirstName().String(),
			LastName:     name.LastName().String(),
			EmailAddress: priced.CustomerInfo().EmailAddress().String(),
		},
		ShippingAddress: FromAddress(priced.ShippingAddress()),
		BillingAddress:  FromAddress(priced.BillingAddress()),
		Lines:           lines,
		AmountToBill:    priced.AmountToBill().Value(),
	}
}

// FromAddress converts an address; absent optional lines are left empty.
func FromAddress(address kernel.Address) Address {
	return Address{
		AddressLine1: address.AddressLine1().String(),
		AddressLine2: optionalLine(address.AddressLine2()),
		AddressLine3: optionalLine(address.AddressLine3()),
		AddressLine4: optionalLine(address.AddressLine4()),
		City:         address.City().String(),
		ZipCode:      address.ZipCode().String(),
	}
}

func optionalLine(line option.Option[kernel.String50]) string {
	return option.Map(line, kernel.String50.String).OrElse("")
}

// Acknowledgment is the message handed to the mailer.
type Acknowledgment struct {
	EmailAddress string `json:"email_address"`
	Letter       string `json:"letter"`
}
