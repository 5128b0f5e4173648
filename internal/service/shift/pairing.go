package shift

import (
	"fmt"
	"sort"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/shift"
)

// DefaultLongOpenThresholdHours is the grace period before an open shift
// is flagged as long-running. The Shift Guard sweep uses the same value so
// reports and force-closures always agree.
const DefaultLongOpenThresholdHours = 15.0

// PairShifts reconstructs shifts from an employee's punch events. Events
// may include punches before windowStart; the most recent of those decides
// the carry-in state. In-window punches are walked chronologically with a
// single open-clock-in slot:
//
//   - CLOCK_IN with a shift already open records a missing-clock-out
//     anomaly and the new clock-in wins.
//   - CLOCK_OUT with no open shift records a missing-clock-in anomaly.
//   - A trailing open shift is not an anomaly by itself; it turns into a
//     long-running anomaly only once its elapsed time, measured up to
//     min(now, windowEnd), reaches the threshold. Historical windows
//     therefore never flag a shift that may have closed after windowEnd.
//     Its hours up to min(now, windowEnd) still count as paid.
//
// Anomaly detection is purely sequencing-based: overnight shifts are
// normal. The result is deterministic for a given input.
func PairShifts(events []punch.PunchEvent, windowStart, windowEnd, now time.Time, longOpenThresholdHours float64) shift.PairingResult {
	var prior []punch.PunchEvent
	var inWindow []punch.PunchEvent
	for _, e := range events {
		switch {
		case e.Timestamp.Before(windowStart):
			prior = append(prior, e)
		case !e.Timestamp.After(windowEnd):
			inWindow = append(inWindow, e)
		}
	}

	sort.SliceStable(prior, func(i, j int) bool {
		return prior[i].Timestamp.After(prior[j].Timestamp)
	})
	sort.SliceStable(inWindow, func(i, j int) bool {
		return inWindow[i].Timestamp.Before(inWindow[j].Timestamp)
	})

	result := shift.PairingResult{
		Shifts:    []shift.Shift{},
		Anomalies: []shift.Anomaly{},
	}

	// Seed from carry-in: an open shift already running at windowStart.
	var open *openClockIn
	if carry := shift.CarryInFromPunches(prior); carry.Open {
		open = &openClockIn{
			employeeID:   employeeIDOf(prior),
			dealershipID: carry.DealershipID,
			at:           carry.ClockInAt,
		}
	}

	for _, e := range inWindow {
		switch e.PunchType {
		case punch.TypeClockIn:
			if open != nil {
				result.Anomalies = append(result.Anomalies, shift.Anomaly{
					Type:         shift.AnomalyMissingClockOut,
					EmployeeID:   e.EmployeeID,
					DealershipID: open.dealershipID,
					Timestamp:    open.at,
					Detail:       "consecutive clock-ins with no clock-out between",
				})
			}
			open = &openClockIn{employeeID: e.EmployeeID, dealershipID: e.DealershipID, at: e.Timestamp}

		case punch.TypeClockOut:
			if open == nil {
				result.Anomalies = append(result.Anomalies, shift.Anomaly{
					Type:         shift.AnomalyMissingClockIn,
					EmployeeID:   e.EmployeeID,
					DealershipID: e.DealershipID,
					Timestamp:    e.Timestamp,
					Detail:       "clock-out with no matching clock-in",
				})
				continue
			}
			out := e.Timestamp
			raw := out.Sub(open.at).Hours()
			result.Shifts = append(result.Shifts, shift.Shift{
				EmployeeID: firstNonEmpty(open.employeeID, e.EmployeeID),
				// Attribution follows the clock-in, even if the clock-out
				// was edited to another dealership.
				DealershipID: open.dealershipID,
				ClockIn:      open.at,
				ClockOut:     &out,
				RawHours:     raw,
				PaidHours:    ApplyUnpaidBreak(raw),
			})
			open = nil
		}
	}

	if open != nil {
		end := now
		if end.After(windowEnd) {
			end = windowEnd
		}
		if end.Before(open.at) {
			end = open.at
		}
		raw := end.Sub(open.at).Hours()
		result.Shifts = append(result.Shifts, shift.Shift{
			EmployeeID:   open.employeeID,
			DealershipID: open.dealershipID,
			ClockIn:      open.at,
			RawHours:     raw,
			PaidHours:    ApplyUnpaidBreak(raw),
			IsOpen:       true,
		})

		// Elapsed is measured against the capped end, not now. A historical
		// window cannot tell an abandoned shift from one that closed just
		// past windowEnd, so only windows reaching the present may flag.
		elapsed := end.Sub(open.at).Hours()
		if elapsed >= longOpenThresholdHours {
			result.Anomalies = append(result.Anomalies, shift.Anomaly{
				Type:          shift.AnomalyLongRunningOpen,
				EmployeeID:    open.employeeID,
				DealershipID:  open.dealershipID,
				Timestamp:     open.at,
				DurationHours: elapsed,
				Detail:        fmt.Sprintf("shift open for %.1f hours", elapsed),
			})
		}
	}

	return result
}

type openClockIn struct {
	employeeID   string
	dealershipID string
	at           time.Time
}

func employeeIDOf(events []punch.PunchEvent) string {
	if len(events) == 0 {
		return ""
	}
	return events[0].EmployeeID
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// HourBuckets lists each hour-of-day (0-23) a shift touches, in order.
// Callers attribute cost as an equal fraction per bucket rather than by
// actual sub-hour occupancy. Iteration is capped at one week to bound
// damage from corrupt timestamps.
func HourBuckets(start, end time.Time) []int {
	if end.Before(start) {
		return nil
	}
	const maxBuckets = 24 * 7

	var buckets []int
	cursor := start.UTC().Truncate(time.Hour)
	for !cursor.After(end.UTC()) && len(buckets) < maxBuckets {
		buckets = append(buckets, cursor.Hour())
		cursor = cursor.Add(time.Hour)
	}
	return buckets
}
