package usecase

import (
	"strings"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// Stats summarizes an order collection for the back-office dashboard.
// Counts are recomputed from scratch on every refresh.
type Stats struct {
	Total     int
	Delhivery int
	Self      int
	Pending   int
	Confirmed int
	Shipped   int
	Delivered int
}

// ComputeStats counts orders by provider and order status.
func ComputeStats(orders []model.Order) Stats {
	var s Stats
	s.Total = len(orders)
	for _, o := range orders {
		switch provider, _ := model.ParseProvider(string(o.Provider)); provider {
		case model.ProviderDelhivery:
			s.Delhivery++
		case model.ProviderSelf:
			s.Self++
		}
		switch o.Status {
		case model.OrderStatusPending:
			s.Pending++
		case model.OrderStatusConfirmed:
			s.Confirmed++
		case model.OrderStatusShipped:
			s.Shipped++
		case model.OrderStatusDelivered:
			s.Delivered++
		}
	}
	return s
}

// Date range filter values.
const (
	DateRangeAll   = "all"
	DateRangeToday = "today"
	DateRangeWeek  = "week"
	DateRangeMonth = "month"
)

// FilterSet holds the six independent filter dimensions applied
// conjunctively over an order collection. Zero values mean "no
// restriction", so the zero FilterSet matches everything.
type FilterSet struct {
	Provider       string
	OrderStatus    string
	PaymentStatus  string
	DeliveryStatus string
	DateRange      string
	Search         string
}

// FilterOrders returns the orders matching every set dimension of f. Date
// boundaries are computed against local midnight of now.
func FilterOrders(orders []model.Order, f FilterSet, now time.Time) []model.Order {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var cutoff time.Time
	switch f.DateRange {
	case DateRangeToday:
		cutoff = midnight
	case DateRangeWeek:
		cutoff = midnight.AddDate(0, 0, -7)
	case DateRangeMonth:
		cutoff = midnight.AddDate(0, 0, -30)
	}

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if !matchesProvider(o, f.Provider) {
			continue
		}
		if f.OrderStatus != "" && f.OrderStatus != "all" && o.Status != model.OrderStatus(f.OrderStatus) {
			continue
		}
		if f.PaymentStatus != "" && f.PaymentStatus != "all" && o.PaymentStatus != model.PaymentStatus(f.PaymentStatus) {
			continue
		}
		if !matchesDeliveryStatus(o, f.DeliveryStatus) {
			continue
		}
		if !cutoff.IsZero() && o.OrderDate.Before(cutoff) {
			continue
		}
		if !matchesSearch(o, f.Search) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func matchesProvider(o model.Order, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	want, ok := model.ParseProvider(filter)
	if !ok {
		return false
	}
	got, _ := model.ParseProvider(string(o.Provider))
	return got == want
}

func matchesDeliveryStatus(o model.Order, filter string) bool {
	if filter == "" || filter == "all" {
		return true
	}
	want, ok := model.ParseDeliveryStatus(filter)
	if !ok {
		return false
	}
	got, _ := model.ParseDeliveryStatus(string(o.DeliveryStatus))
	return got == want
}

func matchesSearch(o model.Order, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{o.ID, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.Waybill} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
