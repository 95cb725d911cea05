package model

import "time"

// FailedOrder is a terminal record of an order whose payment never
// completed. It carries the commerce fields of the source order plus the
// last reported error, and has no lifecycle beyond bulk purge.
type FailedOrder struct {
	ID            int64
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ItemsSummary  string
	Subtotal      Paise
	Tax           Paise
	ShippingTotal Paise
	TotalAmount   Paise
	ErrorMessage  string
	OrderDate     time.Time
	RecordedAt    time.Time
}
