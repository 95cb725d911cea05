package usecase

import "regexp"

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ValidatePincode checks the Indian postal code format: six digits, no
// leading zero.
func ValidatePincode(pincode string) bool {
	return pincodePattern.MatchString(pincode)
}
