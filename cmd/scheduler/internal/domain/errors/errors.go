package errors

import "errors"

var (
	ErrParse              = errors.New("parse error")
	ErrTimezoneResolution = errors.New("timezone not recognized")
	ErrTripNotFound       = errors.New("trip not found")
	ErrInvalidTrip        = errors.New("invalid trip dates")
	ErrInvalidRequest     = errors.New("invalid request")
)
