// Package letter renders the order acknowledgment letter sent to customers.
package letter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"ordertaking/internal/core/domain/model/order"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const acknowledgmentTemplate = "acknowledgment.html"

type letterData struct {
	OrderID      string
	CustomerName string
	Lines        []letterLine
	AmountToBill string
}

type letterLine struct {
	OrderLineID string
	ProductCode string
	Quantity    string
	LinePrice   string
}

// Renderer produces acknowledgment letters. The zero value is ready to use.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

// CreateOrderAcknowledgmentLetter matches order.CreateOrderAcknowledgmentLetter.
// Customer supplied text is HTML-escaped. Rendering is deterministic for a given order.
func (Renderer) CreateOrderAcknowledgmentLetter(priced order.PricedOrder) order.HTMLString {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, acknowledgmentTemplate, dataFor(priced)); err != nil {
		// the template is parsed at init and the data has only strings
		panic(fmt.Sprintf("render acknowledgment letter: %v", err))
	}
	return order.HTMLString(buf.String())
}

func dataFor(priced order.PricedOrder) letterData {
	lines := make([]letterLine, 0, len(priced.Lines()))
	for _, l := range priced.Lines() {
		lines = append(lines, letterLine{
			OrderLineID: l.OrderLineID().String(),
			ProductCode: l.ProductCode().String(),
			Quantity:    l.Quantity().String(),
			LinePrice:   l.LinePrice().Value().StringFixed(2),
		})
	}

	return letterData{
		OrderID:      priced.OrderID().String(),
		CustomerName: priced.CustomerInfo().Name().String(),
		Lines:        lines,
		AmountToBill: priced.AmountToBill().Value().StringFixed(2),
	}
}
