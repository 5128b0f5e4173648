package payroll

import (
	"math"
	"testing"
)

func TestSplitRegularOvertime(t *testing.T) {
	cases := []struct {
		total        float64
		wantRegular  float64
		wantOvertime float64
	}{
		{0, 0, 0},
		{8, 8, 0},
		{40, 40, 0},
		{40.5, 40, 0.5},
		{44, 40, 4},
		{60, 40, 20},
	}
	for _, c := range cases {
		reg, ot := SplitRegularOvertime(c.total)
		if math.Abs(reg-c.wantRegular) > 1e-9 || math.Abs(ot-c.wantOvertime) > 1e-9 {
			t.Errorf("SplitRegularOvertime(%v) = (%v, %v), want (%v, %v)",
				c.total, reg, ot, c.wantRegular, c.wantOvertime)
		}
	}
}

// regular + overtime must always equal the input, with regular capped at 40.
func TestSplitRegularOvertime_Totals(t *testing.T) {
	for h := 0.0; h <= 80.0; h += 0.5 {
		reg, ot := SplitRegularOvertime(h)
		if math.Abs(reg+ot-h) > 1e-9 {
			t.Errorf("split of %v does not sum: %v + %v", h, reg, ot)
		}
		if reg > WeeklyOvertimeThreshold {
			t.Errorf("regular %v exceeds threshold", reg)
		}
		if ot < 0 {
			t.Errorf("overtime %v is negative", ot)
		}
	}
}

func TestComputePay(t *testing.T) {
	cases := []struct {
		regular, overtime, wage float64
		want                    float64
	}{
		{40, 0, 20, 800},
		{40, 4, 20, 920},  // 800 + 4*30
		{0, 10, 10, 150},  // all overtime
		{8, 0, 15.5, 124}, // partial week
	}
	for _, c := range cases {
		got := ComputePay(c.regular, c.overtime, c.wage)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("ComputePay(%v, %v, %v) = %v, want %v",
				c.regular, c.overtime, c.wage, got, c.want)
		}
	}
}

// Pay is non-decreasing in hours and wage.
func TestComputePay_Monotonic(t *testing.T) {
	prev := -1.0
	for h := 0.0; h <= 60; h += 1 {
		reg, ot := SplitRegularOvertime(h)
		pay := ComputePay(reg, ot, 18.0)
		if pay < prev {
			t.Fatalf("pay decreased at %v hours: %v < %v", h, pay, prev)
		}
		prev = pay
	}
}

func TestVacationPay(t *testing.T) {
	if got := VacationPay(8, 22.5); math.Abs(got-180) > 1e-9 {
		t.Errorf("VacationPay(8, 22.5) = %v, want 180", got)
	}
	// Straight-time even for big hour counts: no overtime premium.
	if got := VacationPay(50, 10); math.Abs(got-500) > 1e-9 {
		t.Errorf("VacationPay(50, 10) = %v, want 500", got)
	}
}

// Mon-Thu 10h/day reaches the threshold exactly; Friday's 4 hours are all
// overtime.
func TestAllocateWeekDaily_FridayAllOvertime(t *testing.T) {
	days := []DayHours{
		{"2025-08-18", 10},
		{"2025-08-19", 10},
		{"2025-08-20", 10},
		{"2025-08-21", 10},
		{"2025-08-22", 4},
	}
	splits := AllocateWeekDaily(days, WeeklyOvertimeThreshold)

	for i := 0; i < 4; i++ {
		if splits[i].RegularHours != 10 || splits[i].OvertimeHours != 0 {
			t.Errorf("day %d = %+v, want all regular", i, splits[i])
		}
	}
	fri := splits[4]
	if fri.RegularHours != 0 || fri.OvertimeHours != 4 {
		t.Errorf("friday = %+v, want regular=0 overtime=4", fri)
	}

	var reg, ot float64
	for _, s := range splits {
		reg += s.RegularHours
		ot += s.OvertimeHours
	}
	if reg != 40 || ot != 4 {
		t.Errorf("week totals = (%v, %v), want (40, 4)", reg, ot)
	}
}

// A day straddling the threshold splits into both kinds.
func TestAllocateWeekDaily_StraddlingDay(t *testing.T) {
	days := []DayHours{
		{"2025-08-18", 12},
		{"2025-08-19", 12},
		{"2025-08-20", 12},
		{"2025-08-21", 12},
	}
	splits := AllocateWeekDaily(days, WeeklyOvertimeThreshold)

	thu := splits[3] // cumulative before: 36h, so 4 regular + 8 overtime
	if math.Abs(thu.RegularHours-4) > 1e-9 || math.Abs(thu.OvertimeHours-8) > 1e-9 {
		t.Errorf("thursday = %+v, want regular=4 overtime=8", thu)
	}
}

// Order matters: the same hours on different days price differently.
func TestAllocateWeekDaily_OrderDependent(t *testing.T) {
	forward := AllocateWeekDaily([]DayHours{
		{"2025-08-18", 38},
		{"2025-08-19", 6},
	}, WeeklyOvertimeThreshold)
	if math.Abs(forward[1].OvertimeHours-4) > 1e-9 {
		t.Errorf("second day = %+v, want overtime=4", forward[1])
	}

	reversed := AllocateWeekDaily([]DayHours{
		{"2025-08-18", 6},
		{"2025-08-19", 38},
	}, WeeklyOvertimeThreshold)
	if math.Abs(reversed[0].OvertimeHours) > 1e-9 {
		t.Errorf("first day = %+v, want no overtime", reversed[0])
	}
	if math.Abs(reversed[1].OvertimeHours-4) > 1e-9 {
		t.Errorf("second day = %+v, want overtime=4", reversed[1])
	}
}
