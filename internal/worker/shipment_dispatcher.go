package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/chowdhry/storefront/internal/adapter/delhivery"
	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
)

// CommerceFacade exposes the subset of application functionality required by the worker.
type CommerceFacade interface {
	OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error)
	OrdersForTracking(ctx context.Context, limit int) ([]model.Order, error)
	CreateShipment(ctx context.Context, orderID string) (string, error)
	TrackShipment(ctx context.Context, orderID string) (*model.TrackingInfo, error)
}

type job struct {
	order model.Order
	track bool
}

// ShipmentDispatcher polls for paid courier orders awaiting a waybill and
// for in-flight shipments whose delivery status may have moved.
type ShipmentDispatcher struct {
	facade       CommerceFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewShipmentDispatcher constructs shipment dispatcher worker pool.
func NewShipmentDispatcher(facade CommerceFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *ShipmentDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ShipmentDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan job, batchSize*workers),
	}
}

// Start launches background processing.
func (d *ShipmentDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *ShipmentDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *ShipmentDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *ShipmentDispatcher) fetchAndDispatch(ctx context.Context) {
	pending, err := d.facade.OrdersForDispatch(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch orders for dispatch failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range pending {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- job{order: order}:
		}
	}

	inFlight, err := d.facade.OrdersForTracking(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("fetch orders for tracking failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range inFlight {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- job{order: order, track: true}:
		}
	}
}

func (d *ShipmentDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-d.jobs:
			if !ok {
				return
			}
			if j.track {
				d.trackShipment(ctx, j.order)
			} else {
				d.createShipment(ctx, j.order)
			}
		}
	}
}

func (d *ShipmentDispatcher) createShipment(ctx context.Context, order model.Order) {
	waybill, err := d.facade.CreateShipment(ctx, order.ID)
	if err != nil {
		var rateLimited delhivery.TooManyRequestsError
		switch {
		case errors.As(err, &rateLimited):
			d.logger.Warn("courier rate limited", slog.Duration("retry_after", rateLimited.RetryAfter))
			time.Sleep(rateLimited.RetryAfter)
		case errors.Is(err, domainErrors.ErrValidation):
			// Payment or status changed between selection and dispatch.
		default:
			d.logger.Error("shipment dispatch failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		}
		return
	}
	d.logger.Info("shipment dispatched", slog.String("order", order.ID), slog.String("waybill", waybill))
}

func (d *ShipmentDispatcher) trackShipment(ctx context.Context, order model.Order) {
	info, err := d.facade.TrackShipment(ctx, order.ID)
	if err != nil {
		var rateLimited delhivery.TooManyRequestsError
		switch {
		case errors.As(err, &rateLimited):
			d.logger.Warn("courier rate limited", slog.Duration("retry_after", rateLimited.RetryAfter))
			time.Sleep(rateLimited.RetryAfter)
		case errors.Is(err, delhivery.ErrWaybillNotFound):
			d.logger.Warn("waybill unknown to courier", slog.String("order", order.ID), slog.String("waybill", order.Waybill))
		case errors.Is(err, domainErrors.ErrTrackingUnavailable):
		default:
			d.logger.Error("shipment tracking failed", slog.String("order", order.ID), slog.String("error", err.Error()))
		}
		return
	}
	if info.Status != order.DeliveryStatus {
		d.logger.Info("delivery status advanced",
			slog.String("order", order.ID),
			slog.String("from", string(order.DeliveryStatus)),
			slog.String("to", string(info.Status)))
	}
}
