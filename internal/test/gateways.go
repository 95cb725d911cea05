package test

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// CourierGatewayStub substitutes the courier client in composition tests.
type CourierGatewayStub struct {
	CreateFn func(context.Context, *model.Order) (string, error)
	TrackFn  func(context.Context, string) (*model.TrackingInfo, error)
}

// CreateShipment delegates to the override or returns a fixed waybill.
func (s *CourierGatewayStub) CreateShipment(ctx context.Context, order *model.Order) (string, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return "WB0001", nil
}

// Track delegates to the override or reports an in-flight shipment.
func (s *CourierGatewayStub) Track(ctx context.Context, waybill string) (*model.TrackingInfo, error) {
	if s.TrackFn != nil {
		return s.TrackFn(ctx, waybill)
	}
	return &model.TrackingInfo{Status: model.DeliveryStatusOutForDelivery}, nil
}

// PaymentGatewayStub substitutes the payment gateway client.
type PaymentGatewayStub struct {
	CreateOrderFn func(context.Context, model.Paise, string, string) (*model.GatewayOrder, error)
	VerifyFn      func(string, string, string) bool
}

// CreateOrder delegates to the override or mirrors the requested amount.
func (s *PaymentGatewayStub) CreateOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amount, currency, receipt)
	}
	return &model.GatewayOrder{ID: "rzp_stub", Amount: amount, Currency: currency}, nil
}

// VerifySignature delegates to the override or accepts everything.
func (s *PaymentGatewayStub) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(gatewayOrderID, paymentID, signature)
	}
	return true
}

// FeeEstimatorStub substitutes the distance service client.
type FeeEstimatorStub struct {
	EstimateFn func(context.Context, string) (*model.Quote, error)
}

// Estimate delegates to the override or returns a flat quote.
func (s *FeeEstimatorStub) Estimate(ctx context.Context, pincode string) (*model.Quote, error) {
	if s.EstimateFn != nil {
		return s.EstimateFn(ctx, pincode)
	}
	return &model.Quote{Distance: 12.5, Fee: 5000}, nil
}
