package service

import "fmt"

// MonthWindow returns windowSize trailing "YYYYMM" keys ending at
// (year, month), most recent first.
//
// Year and month are folded into a single linear month index,
// idx = year*12 + (month-1), stepped back one at a time and decomposed
// with /12 and %12. Folding first means year rollovers fall out of the
// integer arithmetic instead of needing a branch: the window for
// (2026, 2) is 202602, 202601, 202512, 202511.
func MonthWindow(year, month, windowSize int) []string {
	keys := make([]string, 0, windowSize)
	idx := year*12 + (month - 1)

	for i := 0; i < windowSize; i++ {
		y := (idx - i) / 12
		m := ((idx-i)%12 + 1)
		keys = append(keys, fmt.Sprintf("%04d%02d", y, m))
	}

	return keys
}
