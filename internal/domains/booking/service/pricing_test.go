package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalBookingPrice(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  int64
		totalHours float64
		want       string
	}{
		// Catalog prices are per 2-hour block: 4h = 2 blocks.
		{"four hours at 1000 per block", 1000, 4, "2000"},
		{"exactly one block", 1000, 2, "1000"},
		{"half hour stays exact", 1000, 0.5, "250"},
		{"zero hours", 1000, 0, "0"},
		{"ninety minutes", 800, 1.5, "600"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalBookingPrice(decimal.NewFromInt(tt.basePrice), tt.totalHours, 2)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"want %s, got %s", tt.want, got)
		})
	}
}
