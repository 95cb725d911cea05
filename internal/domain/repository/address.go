package repository

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// AddressRepository manages saved delivery addresses.
type AddressRepository interface {
	Create(ctx context.Context, addr *model.Address) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
}
