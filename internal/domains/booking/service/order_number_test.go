package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doghotel-backend/internal/domains/booking/model"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"slash separated", "2026/02/03", "20260203"},
		{"dash separated", "2026-02-03", "20260203"},
		{"already digits", "20260203", "20260203"},
		{"empty", "", ""},
		{"no digits", "ab/cd", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.date))
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	tests := []struct {
		name string
		date string
		seq  int
		want string
	}{
		{"pads seq to three digits", "2026/02/03", 7, "20260203007"},
		{"first sequence of a day", "2026/02/03", 1, "20260203001"},
		{"three digit seq unchanged", "2026/02/03", 123, "20260203123"},
		{"seq 1000 widens, never truncates", "2026/02/03", 1000, "202602031000"},
		{"dash separated date", "2026-12-31", 42, "20261231042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOrderNumber(tt.date, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatOrderNumberInvalidDate(t *testing.T) {
	_, err := FormatOrderNumber("", 1)
	assert.ErrorIs(t, err, model.ErrInvalidBookingDate)

	_, err = FormatOrderNumber("no digits here", 1)
	assert.ErrorIs(t, err, model.ErrInvalidBookingDate)
}
