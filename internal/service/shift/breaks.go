package shift

import (
	"sort"

	"github.com/detailops/timeclock-backend/internal/domain/shift"
)

const (
	// UnpaidBreakMinutes is the standard unpaid lunch deduction.
	UnpaidBreakMinutes = 30

	// BreakThresholdHours is the minimum worked time before the unpaid
	// break applies.
	BreakThresholdHours = 5.0
)

// ApplyUnpaidBreak returns paid hours after deducting the standard unpaid
// break. Shifts under the threshold are unchanged; the result never goes
// below zero.
func ApplyUnpaidBreak(rawHours float64) float64 {
	if rawHours >= BreakThresholdHours {
		paid := rawHours - UnpaidBreakMinutes/60.0
		if paid < 0 {
			return 0
		}
		return paid
	}
	return rawHours
}

// PaidHoursByDay applies the day-level break rule: one unpaid break per
// employee per calendar day when the day's total raw hours reach the
// threshold, no matter how many shifts or dealerships the day spans.
// Days are keyed by the clock-in's UTC calendar date. This is the
// canonical rule; per-shift deduction survives only in "so far today"
// previews.
func PaidHoursByDay(shifts []shift.Shift) map[string]float64 {
	rawByDay := make(map[string]float64)
	for _, s := range shifts {
		day := s.ClockIn.UTC().Format("2006-01-02")
		rawByDay[day] += s.RawHours
	}

	paidByDay := make(map[string]float64, len(rawByDay))
	for day, raw := range rawByDay {
		paidByDay[day] = ApplyUnpaidBreak(raw)
	}
	return paidByDay
}

// SortedDays returns the map keys of a per-day total in ascending date
// order, so report sums never depend on map iteration order.
func SortedDays(byDay map[string]float64) []string {
	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}
