package shift

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/shift"
)

func mkPunch(emp, dealer string, pt punch.PunchType, ts time.Time) punch.PunchEvent {
	return punch.PunchEvent{
		EmployeeID:   emp,
		DealershipID: dealer,
		PunchType:    pt,
		Timestamp:    ts,
	}
}

func window(startDay string) (time.Time, time.Time) {
	start, _ := time.Parse("2006-01-02", startDay)
	return start, start.Add(7 * 24 * time.Hour)
}

func TestPairShifts_RoundTrip(t *testing.T) {
	ws, we := window("2025-08-18")
	in := ws.Add(9 * time.Hour)
	out := in.Add(3 * time.Hour)

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, in),
		mkPunch("e1", "d1", punch.TypeClockOut, out),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Anomalies) != 0 {
		t.Fatalf("expected no anomalies, got %v", res.Anomalies)
	}
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	s := res.Shifts[0]
	if s.IsOpen {
		t.Error("shift should be closed")
	}
	if math.Abs(s.RawHours-3.0) > 1e-9 || math.Abs(s.PaidHours-3.0) > 1e-9 {
		t.Errorf("raw=%v paid=%v, want both 3.0 (< 5h, no break)", s.RawHours, s.PaidHours)
	}
	if s.DealershipID != "d1" {
		t.Errorf("dealership = %q, want d1", s.DealershipID)
	}
}

func TestPairShifts_OvernightNotFlagged(t *testing.T) {
	in := time.Date(2025, 8, 16, 23, 17, 0, 0, time.UTC)
	out := time.Date(2025, 8, 17, 1, 5, 0, 0, time.UTC)
	ws := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	we := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, in),
		mkPunch("e1", "d1", punch.TypeClockOut, out),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Anomalies) != 0 {
		t.Fatalf("overnight shift must not be flagged, got %v", res.Anomalies)
	}
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	if math.Abs(res.Shifts[0].RawHours-1.8) > 0.01 {
		t.Errorf("rawHours = %v, want ~1.8", res.Shifts[0].RawHours)
	}
}

func TestPairShifts_OrphanClockOut(t *testing.T) {
	ws, we := window("2025-08-18")

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockOut, ws.Add(10*time.Hour)),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Shifts) != 0 {
		t.Fatalf("orphan clock-out must not produce a shift, got %v", res.Shifts)
	}
	if len(res.Anomalies) != 1 || res.Anomalies[0].Type != shift.AnomalyMissingClockIn {
		t.Fatalf("expected one missing_clock_in anomaly, got %v", res.Anomalies)
	}
}

func TestPairShifts_ConsecutiveClockIns(t *testing.T) {
	ws, we := window("2025-08-18")
	first := ws.Add(8 * time.Hour)
	second := ws.Add(10 * time.Hour)
	out := ws.Add(14 * time.Hour)

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, first),
		mkPunch("e1", "d2", punch.TypeClockIn, second),
		mkPunch("e1", "d2", punch.TypeClockOut, out),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Anomalies) != 1 || res.Anomalies[0].Type != shift.AnomalyMissingClockOut {
		t.Fatalf("expected one missing_clock_out anomaly, got %v", res.Anomalies)
	}
	// The second clock-in wins; the paired shift runs 10:00-14:00 at d2.
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	s := res.Shifts[0]
	if !s.ClockIn.Equal(second) || s.DealershipID != "d2" {
		t.Errorf("shift = %+v, want clockIn at second punch, dealership d2", s)
	}
	if math.Abs(s.RawHours-4.0) > 1e-9 {
		t.Errorf("rawHours = %v, want 4.0", s.RawHours)
	}
}

func TestPairShifts_CarryInOpenShift(t *testing.T) {
	ws, we := window("2025-08-18")
	priorIn := ws.Add(-2 * time.Hour) // clocked in before the window
	out := ws.Add(6 * time.Hour)

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, priorIn),
		mkPunch("e1", "d1", punch.TypeClockOut, out),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Anomalies) != 0 {
		t.Fatalf("carry-in clock-out must not be an orphan, got %v", res.Anomalies)
	}
	if len(res.Shifts) != 1 {
		t.Fatalf("expected 1 shift, got %d", len(res.Shifts))
	}
	s := res.Shifts[0]
	if !s.ClockIn.Equal(priorIn) {
		t.Errorf("clockIn = %v, want carry-in timestamp %v", s.ClockIn, priorIn)
	}
	if math.Abs(s.RawHours-8.0) > 1e-9 {
		t.Errorf("rawHours = %v, want 8.0", s.RawHours)
	}
}

func TestPairShifts_CarryInClosed(t *testing.T) {
	ws, we := window("2025-08-18")

	// Last pre-window punch is a clock-out: off duty at windowStart.
	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, ws.Add(-10*time.Hour)),
		mkPunch("e1", "d1", punch.TypeClockOut, ws.Add(-2*time.Hour)),
	}, ws, we, we, DefaultLongOpenThresholdHours)

	if len(res.Shifts) != 0 || len(res.Anomalies) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestPairShifts_OpenShiftThreshold(t *testing.T) {
	ws := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	we := ws.Add(7 * 24 * time.Hour)

	cases := []struct {
		name        string
		hoursAgo    float64
		wantFlagged bool
	}{
		{"16h open is flagged", 16, true},
		{"14h open is not flagged", 14, false},
		{"exactly at threshold is flagged", 15, true},
	}
	for _, c := range cases {
		now := ws.Add(24 * time.Hour)
		in := now.Add(-time.Duration(c.hoursAgo * float64(time.Hour)))

		res := PairShifts([]punch.PunchEvent{
			mkPunch("e1", "d1", punch.TypeClockIn, in),
		}, ws, we, now, DefaultLongOpenThresholdHours)

		if len(res.Shifts) != 1 || !res.Shifts[0].IsOpen {
			t.Fatalf("%s: expected one open shift, got %+v", c.name, res.Shifts)
		}
		flagged := len(res.Anomalies) == 1 && res.Anomalies[0].Type == shift.AnomalyLongRunningOpen
		if flagged != c.wantFlagged {
			t.Errorf("%s: flagged=%v, want %v", c.name, flagged, c.wantFlagged)
		}
		if c.wantFlagged && math.Abs(res.Anomalies[0].DurationHours-c.hoursAgo) > 0.01 {
			t.Errorf("%s: durationHours = %v, want ~%v", c.name, res.Anomalies[0].DurationHours, c.hoursAgo)
		}
	}
}

func TestPairShifts_OpenShiftHoursCapAtWindowEnd(t *testing.T) {
	ws := time.Date(2025, 8, 18, 0, 0, 0, 0, time.UTC)
	we := ws.Add(24 * time.Hour)
	in := ws.Add(22 * time.Hour)
	now := we.Add(3 * time.Hour) // now past the window end

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, in),
	}, ws, we, now, DefaultLongOpenThresholdHours)

	if len(res.Shifts) != 1 {
		t.Fatalf("expected one open shift, got %d", len(res.Shifts))
	}
	// Hours counted only up to windowEnd, not now.
	if math.Abs(res.Shifts[0].RawHours-2.0) > 1e-9 {
		t.Errorf("rawHours = %v, want 2.0", res.Shifts[0].RawHours)
	}
}

func TestPairShifts_HistoricalWindowNeverFlagsLongOpen(t *testing.T) {
	// An overnight shift straddles a day-bounded window: the clock-out at
	// 01:05 falls past windowEnd, so a report over that day sees only the
	// clock-in. Run weeks later, the trailing shift must stay an unflagged
	// open shift capped at windowEnd, not a long-running anomaly.
	in := time.Date(2025, 8, 16, 23, 17, 0, 0, time.UTC)
	ws := time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)
	we := time.Date(2025, 8, 16, 23, 59, 59, 0, time.UTC)
	now := we.Add(14 * 24 * time.Hour)

	res := PairShifts([]punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, in),
	}, ws, we, now, DefaultLongOpenThresholdHours)

	if len(res.Anomalies) != 0 {
		t.Fatalf("historical window must not flag, got %v", res.Anomalies)
	}
	if len(res.Shifts) != 1 || !res.Shifts[0].IsOpen {
		t.Fatalf("expected one open shift, got %+v", res.Shifts)
	}
	if math.Abs(res.Shifts[0].RawHours-0.716) > 0.01 {
		t.Errorf("rawHours = %v, want ~0.716 (capped at windowEnd)", res.Shifts[0].RawHours)
	}
}

func TestPairShifts_Deterministic(t *testing.T) {
	ws, we := window("2025-08-18")
	events := []punch.PunchEvent{
		mkPunch("e1", "d1", punch.TypeClockIn, ws.Add(8*time.Hour)),
		mkPunch("e1", "d1", punch.TypeClockOut, ws.Add(12*time.Hour)),
		mkPunch("e1", "d2", punch.TypeClockIn, ws.Add(13*time.Hour)),
		mkPunch("e1", "d2", punch.TypeClockOut, ws.Add(19*time.Hour)),
		mkPunch("e1", "d1", punch.TypeClockOut, ws.Add(20*time.Hour)), // orphan
	}

	first := PairShifts(events, ws, we, we, DefaultLongOpenThresholdHours)
	for i := 0; i < 10; i++ {
		again := PairShifts(events, ws, we, we, DefaultLongOpenThresholdHours)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestHourBuckets(t *testing.T) {
	start := time.Date(2025, 8, 18, 9, 30, 0, 0, time.UTC)
	end := time.Date(2025, 8, 18, 12, 10, 0, 0, time.UTC)

	got := HourBuckets(start, end)
	want := []int{9, 10, 11, 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HourBuckets = %v, want %v", got, want)
	}
}

func TestHourBuckets_WrapsMidnight(t *testing.T) {
	start := time.Date(2025, 8, 16, 23, 17, 0, 0, time.UTC)
	end := time.Date(2025, 8, 17, 1, 5, 0, 0, time.UTC)

	got := HourBuckets(start, end)
	want := []int{23, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HourBuckets = %v, want %v", got, want)
	}
}
