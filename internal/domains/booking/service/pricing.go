package service

import (
	"github.com/shopspring/decimal"
)

// TotalBookingPrice derives the order total from a catalog base price,
// which is quoted per block of blockHours (2 hours in this domain):
// total = basePrice * totalHours / blockHours. Using decimals keeps
// half-hour bookings exact (1000 per block, 0.5h -> 250).
func TotalBookingPrice(basePrice decimal.Decimal, totalHours float64, blockHours int) decimal.Decimal {
	return basePrice.
		Mul(decimal.NewFromFloat(totalHours)).
		Div(decimal.NewFromInt(int64(blockHours)))
}
