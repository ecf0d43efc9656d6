package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		size  int
		want  []string
	}{
		{
			// Crosses the year boundary two steps in.
			name: "february window reaches previous year",
			year: 2026, month: 2, size: 4,
			want: []string{"202602", "202601", "202512", "202511"},
		},
		{
			name: "january rolls straight into december",
			year: 2026, month: 1, size: 4,
			want: []string{"202601", "202512", "202511", "202510"},
		},
		{
			name: "mid-year window stays in one year",
			year: 2026, month: 7, size: 4,
			want: []string{"202607", "202606", "202605", "202604"},
		},
		{
			name: "december window",
			year: 2024, month: 12, size: 4,
			want: []string{"202412", "202411", "202410", "202409"},
		},
		{
			name: "window of one",
			year: 2026, month: 3, size: 1,
			want: []string{"202603"},
		},
		{
			name: "window longer than a year",
			year: 2026, month: 1, size: 13,
			want: []string{
				"202601", "202512", "202511", "202510", "202509", "202508",
				"202507", "202506", "202505", "202504", "202503", "202502",
				"202501",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthWindow(tt.year, tt.month, tt.size))
		})
	}
}
