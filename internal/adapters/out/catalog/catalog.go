// Package catalog keeps an in-memory snapshot of the product catalog.
// The place order workflow asks it whether a product exists and what it
// costs; both answers come from the same snapshot, which is replaced as a
// whole on every refresh.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// ErrCatalogIsNotLoaded is returned by GetProductPrice before the first successful refresh.
var ErrCatalogIsNotLoaded = errors.New("product catalog is not loaded")

// Catalog is safe for concurrent use.
type Catalog struct {
	products ports.ProductRepository
	logger   *slog.Logger

	mu     sync.RWMutex
	prices map[string]kernel.Price
}

// New creates an empty catalog; call Refresh to load it.
func New(products ports.ProductRepository, logger *slog.Logger) *Catalog {
	return &Catalog{
		products: products,
		logger:   logger.With("component", "catalog"),
	}
}

// Refresh reloads the snapshot from the repository.
// Rows with an invalid code or price are skipped and logged. On error the
// previous snapshot stays in place.
func (c *Catalog) Refresh(ctx context.Context) error {
	products, err := c.products.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}

	prices := make(map[string]kernel.Price, len(products))
	for _, p := range products {
		code, codeErr := kernel.NewProductCode(p.Code)
		if codeErr != nil {
			c.logger.WarnContext(ctx, "skipping product with invalid code", "code", p.Code, "error", codeErr)
			continue
		}

		price, priceErr := kernel.NewPrice(p.UnitPrice)
		if priceErr != nil {
			c.logger.WarnContext(ctx, "skipping product with invalid price",
				"code", p.Code, "price", p.UnitPrice.String(), "error", priceErr)
			continue
		}

		prices[code.String()] = price
	}

	c.mu.Lock()
	c.prices = prices
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "catalog refreshed", "products", len(prices), "skipped", len(products)-len(prices))
	return nil
}

// Len returns the number of products in the snapshot.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.prices)
}

// Ready returns a *order.RemoteServiceError wrapping ErrCatalogIsNotLoaded until
// the first successful refresh. Before that, CheckProductCodeExists cannot tell an
// unknown product from a catalog that was never loaded.
func (c *Catalog) Ready() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.prices == nil {
		return order.NewRemoteServiceError(order.CatalogServiceName, ErrCatalogIsNotLoaded)
	}
	return nil
}

// CheckProductCodeExists reports whether code is in the snapshot.
func (c *Catalog) CheckProductCodeExists(code kernel.ProductCode) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.prices[code.String()]
	return ok
}

// GetProductPrice returns the unit price of code.
// Returns order.ErrPriceNotFound for codes missing from a loaded snapshot.
func (c *Catalog) GetProductPrice(_ context.Context, code kernel.ProductCode) (kernel.Price, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.prices == nil {
		return kernel.Price{}, order.NewRemoteServiceError(order.CatalogServiceName, ErrCatalogIsNotLoaded)
	}

	price, ok := c.prices[code.String()]
	if !ok {
		return kernel.Price{}, fmt.Errorf("%w: %s", order.ErrPriceNotFound, code)
	}
	return price, nil
}
