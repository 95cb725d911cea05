package model

import "fmt"

// Paise is a monetary amount in minor currency units. The payment gateway
// deals exclusively in paise; conversion to rupees happens at display time.
type Paise int64

// String renders the amount in rupees with two decimal places.
func (p Paise) String() string {
	neg := ""
	v := p
	if v < 0 {
		neg = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", neg, v/100, v%100)
}

// GSTRate is the flat goods-and-services tax applied to the item subtotal.
const GSTRate = 5

// TaxOn computes GST for a subtotal, rounded to the nearest paisa.
func TaxOn(subtotal Paise) Paise {
	return (subtotal*GSTRate + 50) / 100
}
