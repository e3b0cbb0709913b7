package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"ordertaking/internal/pkg/errs"
)

// GetPlacedOrderQueryHandler reads placed orders from the database.
type GetPlacedOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPlacedOrderQueryHandler creates a handler for placed order queries.
func NewGetPlacedOrderQueryHandler(db *gorm.DB) GetPlacedOrderQueryHandler {
	return GetPlacedOrderQueryHandler{db: db}
}

// Handle returns the order and its lines in request order.
// Returns errs.ObjectNotFoundError when no order has the id.
func (h GetPlacedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPlacedOrderQuery,
) (GetPlacedOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().String()

	var resp GetPlacedOrderQueryResponse
	var shipping, billing optionalLines
	err := db.Raw(`
		SELECT
			order_id, first_name, last_name, email_address,
			shipping_address_line1, shipping_address_line2, shipping_address_line3, shipping_address_line4,
			shipping_city, shipping_zip_code,
			billing_address_line1, billing_address_line2, billing_address_line3, billing_address_line4,
			billing_city, billing_zip_code,
			amount_to_bill, placed_at
		FROM placed_orders
		WHERE order_id = ?
	`, id).Row().Scan(
		&resp.OrderID, &resp.FirstName, &resp.LastName, &resp.EmailAddress,
		&resp.ShippingAddress.AddressLine1, &shipping[0], &shipping[1], &shipping[2],
		&resp.ShippingAddress.City, &resp.ShippingAddress.ZipCode,
		&resp.BillingAddress.AddressLine1, &billing[0], &billing[1], &billing[2],
		&resp.BillingAddress.City, &resp.BillingAddress.ZipCode,
		&resp.AmountToBill, &resp.PlacedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetPlacedOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id)
		}
		return GetPlacedOrderQueryResponse{}, err
	}
	shipping.apply(&resp.ShippingAddress)
	billing.apply(&resp.BillingAddress)

	rows, err := db.Raw(`
		SELECT order_line_id, product_code, quantity, line_price
		FROM placed_order_lines
		WHERE order_id = ?
		ORDER BY position
	`, id).Rows()
	if err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}
	defer rows.Close()

	resp.Lines = make([]PlacedOrderLine, 0)
	for rows.Next() {
		var line PlacedOrderLine
		if err = rows.Scan(&line.OrderLineID, &line.ProductCode, &line.Quantity, &line.LinePrice); err != nil {
			return GetPlacedOrderQueryResponse{}, err
		}
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetPlacedOrderQueryResponse{}, err
	}

	resp.PlacedAt = resp.PlacedAt.UTC()
	return resp, nil
}

// optionalLines holds address lines 2 to 4, which are nullable.
type optionalLines [3]sql.NullString

func (l optionalLines) apply(address *PlacedOrderAddress) {
	address.AddressLine2 = l[0].String
	address.AddressLine3 = l[1].String
	address.AddressLine4 = l[2].String
}
