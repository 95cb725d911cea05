package model

import "time"

// PaymentTransaction is one gateway attempt recorded against an order.
// Transactions are append-only; outcomes are never rewritten in place.
type PaymentTransaction struct {
	ID                int64
	OrderID           string
	PaymentID         string
	Amount            Paise
	Method            string
	Status            PaymentStatus
	SignatureVerified bool
	ErrorCode         string
	ErrorDescription  string
	CreatedAt         time.Time
}
