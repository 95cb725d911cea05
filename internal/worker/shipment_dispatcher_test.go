package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/chowdhry/storefront/internal/adapter/delhivery"
	"github.com/chowdhry/storefront/internal/domain/model"
	testhelpers "github.com/chowdhry/storefront/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if cond() {
			return
		}
		select {
		case <-deadline:
			t.Fatal("condition not reached in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestDispatcherCreatesShipments(t *testing.T) {
	var mu sync.Mutex
	dispatched := false
	facade := &testhelpers.WorkerFacadeStub{
		DispatchBatchFn: func(context.Context, int) ([]model.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			if dispatched {
				return nil, nil
			}
			dispatched = true
			return []model.Order{{ID: "ord_1", Provider: model.ProviderDelhivery}}, nil
		},
	}

	d := NewShipmentDispatcher(facade, 5*time.Millisecond, 2, 2, testLogger())
	d.Start(context.Background())
	defer d.Stop()

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(facade.Dispatched) == 1
	})
	if facade.Dispatched[0] != "ord_1" {
		t.Fatalf("unexpected dispatched order %q", facade.Dispatched[0])
	}
}

func TestDispatcherTracksInFlightShipments(t *testing.T) {
	var mu sync.Mutex
	served := false
	facade := &testhelpers.WorkerFacadeStub{
		TrackingBatchFn: func(context.Context, int) ([]model.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			if served {
				return nil, nil
			}
			served = true
			return []model.Order{{ID: "ord_2", Waybill: "WB77", DeliveryStatus: model.DeliveryStatusShipmentCreated}}, nil
		},
	}

	d := NewShipmentDispatcher(facade, 5*time.Millisecond, 2, 1, testLogger())
	d.Start(context.Background())
	defer d.Stop()

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(facade.Tracked) == 1
	})
	if facade.Tracked[0] != "ord_2" {
		t.Fatalf("unexpected tracked order %q", facade.Tracked[0])
	}
}

func TestDispatcherSurvivesCourierErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	facade := &testhelpers.WorkerFacadeStub{
		DispatchBatchFn: func(context.Context, int) ([]model.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			if calls >= 2 {
				return nil, nil
			}
			calls++
			return []model.Order{{ID: "ord_3"}}, nil
		},
		CreateFn: func(context.Context, string) (string, error) {
			return "", errors.New("courier down")
		},
	}

	d := NewShipmentDispatcher(facade, 5*time.Millisecond, 1, 1, testLogger())
	d.Start(context.Background())
	defer d.Stop()

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	})
}

func TestDispatcherBacksOffWhenRateLimited(t *testing.T) {
	var mu sync.Mutex
	attempts := 0
	facade := &testhelpers.WorkerFacadeStub{
		DispatchBatchFn: func(context.Context, int) ([]model.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			if attempts > 0 {
				return nil, nil
			}
			return []model.Order{{ID: "ord_4"}}, nil
		},
		CreateFn: func(context.Context, string) (string, error) {
			mu.Lock()
			attempts++
			mu.Unlock()
			return "", delhivery.TooManyRequestsError{RetryAfter: 10 * time.Millisecond}
		},
	}

	d := NewShipmentDispatcher(facade, 5*time.Millisecond, 1, 1, testLogger())
	start := time.Now()
	d.Start(context.Background())

	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return attempts == 1
	})
	d.Stop()

	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("expected backoff after rate limit, elapsed %v", elapsed)
	}
}

func TestDispatcherStopIsIdempotent(t *testing.T) {
	facade := &testhelpers.WorkerFacadeStub{}
	d := NewShipmentDispatcher(facade, time.Millisecond, 1, 1, testLogger())
	d.Start(context.Background())
	d.Stop()
	d.Stop()
}

func TestNewShipmentDispatcherNormalizesArguments(t *testing.T) {
	d := NewShipmentDispatcher(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, testLogger())
	if d.workers != 1 || d.batchSize != 1 {
		t.Fatalf("expected defaults of one worker and batch, got %d/%d", d.workers, d.batchSize)
	}
}
