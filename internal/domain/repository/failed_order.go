package repository

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// FailedOrderRepository manages terminal failed-payment records.
type FailedOrderRepository interface {
	// Upsert records the failure for an order; a repeated call for the
	// same order replaces the error message (last reason wins).
	Upsert(ctx context.Context, failed *model.FailedOrder) error
	List(ctx context.Context, page, size int) ([]model.FailedOrder, Pagination, error)
	// Clean purges all failed orders and returns how many were removed.
	Clean(ctx context.Context) (int64, error)
}
