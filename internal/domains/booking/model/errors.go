package model

import "errors"

// =====================================================
// CUSTOM ERROR CODES
// =====================================================
const (
	ErrCodeBookingNotFound     = "BKG001"
	ErrCodeSequenceUnavailable = "BKG002"
	ErrCodeMalformedTimeRange  = "BKG003"
	ErrCodeDogNotFound         = "BKG004"
	ErrCodeInvalidBookingDate  = "BKG005"
	ErrCodeInvalidPeriod       = "BKG006"
)

// =====================================================
// ERROR DEFINITIONS
// =====================================================
var (
	ErrBookingNotFound = errors.New("booking order not found")

	// ErrSequenceUnavailable means the atomic counter increment could not
	// be executed. There is no non-atomic fallback; the request fails.
	ErrSequenceUnavailable = errors.New("booking sequence storage unavailable")

	ErrMalformedTimeRange = errors.New("malformed booking time range")
	ErrDogNotFound        = errors.New("dog not found in catalog")
	ErrInvalidBookingDate = errors.New("invalid booking date")
	ErrInvalidPeriod      = errors.New("invalid ranking period")
)

// =====================================================
// CUSTOM ERROR TYPE
// =====================================================
type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

// NewBookingError creates a new BookingError
func NewBookingError(code, message string, err error) *BookingError {
	return &BookingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
