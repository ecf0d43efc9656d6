package service

import (
	"fmt"
	"strconv"
	"strings"

	"doghotel-backend/internal/domains/booking/model"
)

const (
	// Separator inside one range, between its endpoints.
	timeRangeSeparator = "~"
	// Separator between ranges in the submitted list.
	timeRangeListSeparator = ","

	minutesPerHour = 60
)

// TotalBookingHours parses a comma separated list of "HH:MM~HH:MM"
// ranges and returns the summed duration in hours. An empty input is a
// zero-hour booking. End is assumed to be >= start within one calendar
// day; there is no overnight wrap. Overlapping ranges double-count —
// the booked input is trusted to be non-overlapping and no deduplication
// is attempted here.
func TotalBookingHours(rangesCsv string) (float64, error) {
	if rangesCsv == "" {
		return 0, nil
	}

	var total float64
	for _, segment := range strings.Split(rangesCsv, timeRangeListSeparator) {
		start, end, ok := strings.Cut(segment, timeRangeSeparator)
		if !ok {
			return 0, fmt.Errorf("%w: missing %q in segment %q",
				model.ErrMalformedTimeRange, timeRangeSeparator, segment)
		}

		startMinutes, err := minutesSinceMidnight(start)
		if err != nil {
			return 0, err
		}
		endMinutes, err := minutesSinceMidnight(end)
		if err != nil {
			return 0, err
		}

		total += float64(endMinutes-startMinutes) / minutesPerHour
	}

	return total, nil
}

func minutesSinceMidnight(clock string) (int, error) {
	hourPart, minutePart, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("%w: missing ':' in %q", model.ErrMalformedTimeRange, clock)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric hour in %q", model.ErrMalformedTimeRange, clock)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric minute in %q", model.ErrMalformedTimeRange, clock)
	}

	return hour*minutesPerHour + minute, nil
}
