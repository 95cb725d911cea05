package model

import "time"

// Address is a saved delivery address. At checkout an exact match on
// (name, street, city, state, postcode, phone) is reused instead of
// persisting a duplicate.
type Address struct {
	ID          int64
	UserID      int64
	AddressType string
	FirstName   string
	LastName    string
	Street      string
	Apartment   string
	City        string
	State       string
	Postcode    string
	Email       string
	Phone       string
	CreatedAt   time.Time
}

// Matches reports whether the stored address is an exact duplicate of the
// submitted one for dedup purposes.
func (a Address) Matches(other Address) bool {
	return a.FirstName == other.FirstName &&
		a.LastName == other.LastName &&
		a.Street == other.Street &&
		a.City == other.City &&
		a.State == other.State &&
		a.Postcode == other.Postcode &&
		a.Phone == other.Phone
}
