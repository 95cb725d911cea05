package test

import (
	"context"
	"sync"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// WorkerFacadeStub records dispatch worker interactions.
type WorkerFacadeStub struct {
	DispatchBatchFn func(context.Context, int) ([]model.Order, error)
	TrackingBatchFn func(context.Context, int) ([]model.Order, error)
	CreateFn        func(context.Context, string) (string, error)
	TrackFn         func(context.Context, string) (*model.TrackingInfo, error)

	mu         sync.Mutex
	Dispatched []string
	Tracked    []string
}

// OrdersForDispatch returns the batch awaiting courier dispatch.
func (s *WorkerFacadeStub) OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	if s.DispatchBatchFn != nil {
		return s.DispatchBatchFn(ctx, limit)
	}
	return nil, nil
}

// OrdersForTracking returns the batch of in-flight shipments.
func (s *WorkerFacadeStub) OrdersForTracking(ctx context.Context, limit int) ([]model.Order, error) {
	if s.TrackingBatchFn != nil {
		return s.TrackingBatchFn(ctx, limit)
	}
	return nil, nil
}

// CreateShipment records the order and returns a fixed waybill.
func (s *WorkerFacadeStub) CreateShipment(ctx context.Context, orderID string) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, orderID)
	}
	s.mu.Lock()
	s.Dispatched = append(s.Dispatched, orderID)
	s.mu.Unlock()
	return "WB0001", nil
}

// TrackShipment records the order and reports an in-flight shipment.
func (s *WorkerFacadeStub) TrackShipment(ctx context.Context, orderID string) (*model.TrackingInfo, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, orderID)
	}
	s.mu.Lock()
	s.Tracked = append(s.Tracked, orderID)
	s.mu.Unlock()
	return &model.TrackingInfo{Status: model.DeliveryStatusOutForDelivery}, nil
}
