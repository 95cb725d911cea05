package repository

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// InventoryRepository decrements stock when an order is delivered.
// DecrementStock must be idempotent per order: retried delivered
// transitions for the same order id decrement stock exactly once.
type InventoryRepository interface {
	DecrementStock(ctx context.Context, orderID string, items []model.OrderItem) error
}
