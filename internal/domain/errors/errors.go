package errors

import "errors"

var (
	ErrAlreadyExists          = errors.New("already exists")
	ErrNotFound               = errors.New("not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrValidation             = errors.New("validation failed")
	ErrNotServiceable         = errors.New("pincode not serviceable")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrVerificationFailed     = errors.New("payment signature verification failed")
	ErrShipmentCreationFailed = errors.New("shipment creation failed")
	ErrTrackingUnavailable    = errors.New("tracking unavailable")
)
