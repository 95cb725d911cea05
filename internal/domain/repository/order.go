package repository

import (
	"context"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int
	Size  int
	Total int
	Pages int
}

// OrderUpdate is a partial field set applied to an order in a single
// atomic store operation. Nil fields are left untouched.
type OrderUpdate struct {
	Status         *model.OrderStatus
	PaymentStatus  *model.PaymentStatus
	DeliveryStatus *model.DeliveryStatus
	Waybill        *string
	ConfirmedAt    *time.Time
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	List(ctx context.Context, page, size int) ([]model.Order, Pagination, error)
	Update(ctx context.Context, orderID string, upd OrderUpdate) error
	AppendTransaction(ctx context.Context, orderID string, txn model.PaymentTransaction) error
	SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Order, error)
	SelectBatchForTracking(ctx context.Context, limit int) ([]model.Order, error)
}
