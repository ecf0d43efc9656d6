package service

import (
	"fmt"
	"strings"

	"doghotel-backend/internal/domains/booking/model"
)

// DateKey strips every non-digit from a calendar date string:
// "2026/02/03" -> "20260203". The result partitions the sequence
// counters and prefixes every order number.
func DateKey(date string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, date)
}

// FormatOrderNumber composes the digits-only date and the allocated
// sequence into the final order number. The sequence is zero-padded to a
// minimum of 3 digits; padding only pads up, seq 1000 simply widens the
// number. Pure function; the only failure is a date with no digits.
func FormatOrderNumber(date string, seq int) (string, error) {
	key := DateKey(date)
	if key == "" {
		return "", model.ErrInvalidBookingDate
	}

	return fmt.Sprintf("%s%0*d", key, model.OrderSeqPadWidth, seq), nil
}
