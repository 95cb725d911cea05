package model

import "time"

// User represents a back-office operator account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
