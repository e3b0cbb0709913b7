package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"ordertaking/internal/adapters/contracts"
	"ordertaking/internal/core/application/usecases/queries"
	"ordertaking/internal/core/domain/model/order"
)

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	OrderID         string           `json:"orderId"`
	CustomerInfo    CustomerInfo     `json:"customerInfo"`
	ShippingAddress Address          `json:"shippingAddress"`
	BillingAddress  Address          `json:"billingAddress"`
	Lines           []PlaceOrderLine `json:"lines"`
}

type CustomerInfo struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	AddressLine3 string `json:"addressLine3,omitempty"`
	AddressLine4 string `json:"addressLine4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

type PlaceOrderLine struct {
	OrderLineID string  `json:"orderLineId"`
	ProductCode string  `json:"productCode"`
	Quantity    float64 `json:"quantity"`
}

// PlaceOrderResponse lists the events produced by placing the order.
type PlaceOrderResponse struct {
	Events []Event `json:"events"`
}

type Event struct {
	Type    string          `json:"type"`
	OrderID string          `json:"orderId"`
	Payload json.RawMessage `json:"payload"`
}

// PlacedOrder is the body of GET /api/v1/orders/:id.
type PlacedOrder struct {
	OrderID         string            `json:"orderId"`
	CustomerInfo    CustomerInfo      `json:"customerInfo"`
	ShippingAddress Address           `json:"shippingAddress"`
	BillingAddress  Address           `json:"billingAddress"`
	Lines           []PlacedOrderLine `json:"lines"`
	AmountToBill    decimal.Decimal   `json:"amountToBill"`
	PlacedAt        time.Time         `json:"placedAt"`
}

type PlacedOrderLine struct {
	OrderLineID string          `json:"orderLineId"`
	ProductCode string          `json:"productCode"`
	Quantity    decimal.Decimal `json:"quantity"`
	LinePrice   decimal.Decimal `json:"linePrice"`
}

// Error is the body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	LineID  string `json:"lineId,omitempty"`
}

func (r PlaceOrderRequest) toUnvalidated() order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: l.OrderLineID,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: r.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    r.CustomerInfo.FirstName,
			LastName:     r.CustomerInfo.LastName,
			EmailAddress: r.CustomerInfo.EmailAddress,
		},
		ShippingAddress: r.ShippingAddress.toUnvalidated(),
		BillingAddress:  r.BillingAddress.toUnvalidated(),
		Lines:           lines,
	}
}

func (a Address) toUnvalidated() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}

func newPlaceOrderResponse(events []order.Event) (PlaceOrderResponse, error) {
	resp := PlaceOrderResponse{Events: make([]Event, 0, len(events))}
	for _, e := range events {
		payload, err := contracts.EncodePayload(e)
		if err != nil {
			return PlaceOrderResponse{}, err
		}
		resp.Events = append(resp.Events, Event{
			Type:    string(e.EventType()),
			OrderID: e.OrderID().String(),
			Payload: payload,
		})
	}
	return resp, nil
}

func newPlacedOrder(r queries.GetPlacedOrderQueryResponse) PlacedOrder {
	lines := make([]PlacedOrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, PlacedOrderLine{
			OrderLineID: l.OrderLineID,
			ProductCode: l.ProductCode,
			Quantity:    l.Quantity,
			LinePrice:   l.LinePrice,
		})
	}

	return PlacedOrder{
		OrderID: r.OrderID,
		CustomerInfo: CustomerInfo{
			FirstName:    r.FirstName,
			LastName:     r.LastName,
			EmailAddress: r.EmailAddress,
		},
		ShippingAddress: newAddress(r.ShippingAddress),
		BillingAddress:  newAddress(r.BillingAddress),
		Lines:           lines,
		AmountToBill:    r.AmountToBill,
		PlacedAt:        r.PlacedAt,
	}
}

func newAddress(a queries.PlacedOrderAddress) Address {
	return Address{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}
