package test

import (
	"context"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// UserRepositoryStub stores operators in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in-memory and applies partial updates
// the way the real store would, so use cases can be tested end to end.
type OrderRepositoryStub struct {
	CreateFn   func(context.Context, *model.Order) error
	GetByIDFn  func(context.Context, string) (*model.Order, error)
	ListFn     func(context.Context, int, int) ([]model.Order, repository.Pagination, error)
	UpdateFn   func(context.Context, string, repository.OrderUpdate) error
	DispatchFn func(context.Context, int) ([]model.Order, error)
	TrackingFn func(context.Context, int) ([]model.Order, error)

	ByID         map[string]*model.Order
	Updates      []repository.OrderUpdate
	Transactions []model.PaymentTransaction
}

// NewOrderRepositoryStub seeds the stub with the given orders.
func NewOrderRepositoryStub(orders ...*model.Order) *OrderRepositoryStub {
	s := &OrderRepositoryStub{ByID: make(map[string]*model.Order)}
	for _, o := range orders {
		s.ByID[o.ID] = o
	}
	return s
}

// Create stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.Order)
	}
	if _, exists := s.ByID[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	s.ByID[order.ID] = order
	return nil
}

// GetByID returns a copy of the stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	if order, ok := s.ByID[orderID]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored orders as a single page.
func (s *OrderRepositoryStub) List(ctx context.Context, page, size int) ([]model.Order, repository.Pagination, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, page, size)
	}
	out := make([]model.Order, 0, len(s.ByID))
	for _, o := range s.ByID {
		out = append(out, *o)
	}
	return out, repository.Pagination{Page: page, Size: size, Total: len(out), Pages: 1}, nil
}

// Update applies the partial field set to the stored order.
func (s *OrderRepositoryStub) Update(ctx context.Context, orderID string, upd repository.OrderUpdate) error {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, orderID, upd)
	}
	order, ok := s.ByID[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	s.Updates = append(s.Updates, upd)
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.PaymentStatus != nil {
		order.PaymentStatus = *upd.PaymentStatus
	}
	if upd.DeliveryStatus != nil {
		order.DeliveryStatus = *upd.DeliveryStatus
	}
	if upd.Waybill != nil {
		order.Waybill = *upd.Waybill
	}
	if upd.ConfirmedAt != nil {
		order.ConfirmedAt = upd.ConfirmedAt
	}
	return nil
}

// AppendTransaction records the gateway transaction.
func (s *OrderRepositoryStub) AppendTransaction(ctx context.Context, orderID string, txn model.PaymentTransaction) error {
	order, ok := s.ByID[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	s.Transactions = append(s.Transactions, txn)
	order.Transactions = append(order.Transactions, txn)
	return nil
}

// SelectBatchForDispatch returns orders awaiting courier shipment creation.
func (s *OrderRepositoryStub) SelectBatchForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	if s.DispatchFn != nil {
		return s.DispatchFn(ctx, limit)
	}
	var out []model.Order
	for _, o := range s.ByID {
		if o.Provider == model.ProviderDelhivery && o.Status == model.OrderStatusConfirmed &&
			o.PaymentStatus == model.PaymentStatusPaid && o.Waybill == "" {
			out = append(out, *o)
		}
	}
	return out, nil
}

// SelectBatchForTracking returns orders with in-flight courier shipments.
func (s *OrderRepositoryStub) SelectBatchForTracking(ctx context.Context, limit int) ([]model.Order, error) {
	if s.TrackingFn != nil {
		return s.TrackingFn(ctx, limit)
	}
	var out []model.Order
	for _, o := range s.ByID {
		if o.Waybill != "" && o.DeliveryStatus != model.DeliveryStatusDelivered && o.DeliveryStatus != model.DeliveryStatusRTO {
			out = append(out, *o)
		}
	}
	return out, nil
}

// FailedOrderRepositoryStub stores failure records keyed by order id.
type FailedOrderRepositoryStub struct {
	UpsertFn func(context.Context, *model.FailedOrder) error
	Records  map[string]*model.FailedOrder
	Cleaned  int
}

// Upsert records the failure, replacing any previous reason.
func (s *FailedOrderRepositoryStub) Upsert(ctx context.Context, failed *model.FailedOrder) error {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, failed)
	}
	if s.Records == nil {
		s.Records = make(map[string]*model.FailedOrder)
	}
	s.Records[failed.OrderID] = failed
	return nil
}

// List returns all failure records as a single page.
func (s *FailedOrderRepositoryStub) List(ctx context.Context, page, size int) ([]model.FailedOrder, repository.Pagination, error) {
	out := make([]model.FailedOrder, 0, len(s.Records))
	for _, f := range s.Records {
		out = append(out, *f)
	}
	return out, repository.Pagination{Page: page, Size: size, Total: len(out), Pages: 1}, nil
}

// Clean removes all records and reports the count.
func (s *FailedOrderRepositoryStub) Clean(ctx context.Context) (int64, error) {
	n := int64(len(s.Records))
	s.Records = nil
	s.Cleaned++
	return n, nil
}

// AddressRepositoryStub keeps saved addresses per user.
type AddressRepositoryStub struct {
	Addresses []model.Address
	Next      int64
	Err       error
}

// Create persists the address with the next identifier.
func (s *AddressRepositoryStub) Create(ctx context.Context, addr *model.Address) (*model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *addr
	stored.ID = s.Next
	s.Next++
	s.Addresses = append(s.Addresses, stored)
	return &stored, nil
}

// ListByUser returns the user's saved addresses.
func (s *AddressRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var out []model.Address
	for _, a := range s.Addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// InventoryRepositoryStub counts stock decrements per order.
type InventoryRepositoryStub struct {
	DecrementFn func(context.Context, string, []model.OrderItem) error
	Calls       map[string]int
	Err         error
}

// DecrementStock records the call. The real implementation guards
// idempotency in the store; the stub counts invocations so tests can
// assert on exactly-once behaviour.
func (s *InventoryRepositoryStub) DecrementStock(ctx context.Context, orderID string, items []model.OrderItem) error {
	if s.DecrementFn != nil {
		return s.DecrementFn(ctx, orderID, items)
	}
	if s.Err != nil {
		return s.Err
	}
	if s.Calls == nil {
		s.Calls = make(map[string]int)
	}
	s.Calls[orderID]++
	return nil
}
