package payroll

const (
	// WeeklyOvertimeThreshold is the weekly hour count beyond which the
	// overtime multiplier applies.
	WeeklyOvertimeThreshold = 40.0

	// OvertimeMultiplier is the pay premium on overtime hours.
	OvertimeMultiplier = 1.5
)

// SplitRegularOvertime divides total weekly hours at the 40-hour threshold.
// regular + overtime always equals totalHours.
func SplitRegularOvertime(totalHours float64) (regular, overtime float64) {
	return SplitAtThreshold(totalHours, WeeklyOvertimeThreshold)
}

// SplitAtThreshold is SplitRegularOvertime with a caller-chosen threshold.
func SplitAtThreshold(totalHours, threshold float64) (regular, overtime float64) {
	if totalHours <= threshold {
		return totalHours, 0
	}
	return threshold, totalHours - threshold
}

// ComputePay prices regular hours at the wage and overtime hours at the
// wage times the overtime multiplier.
func ComputePay(regularHours, overtimeHours, hourlyWage float64) float64 {
	return regularHours*hourlyWage + overtimeHours*hourlyWage*OvertimeMultiplier
}

// VacationPay is always straight-time. Vacation hours neither count toward
// nor discount the overtime threshold.
func VacationPay(vacationHours, hourlyWage float64) float64 {
	return vacationHours * hourlyWage
}

// DayHours is one calendar day's paid hours, ordered within a week.
type DayHours struct {
	Date      string
	PaidHours float64
}

// DaySplit is a day's hours divided into regular and overtime.
type DaySplit struct {
	Date          string
	PaidHours     float64
	RegularHours  float64
	OvertimeHours float64
}

// AllocateWeekDaily splits each day of a single week into regular and
// overtime hours. Hours worked earlier in the week consume the threshold
// first, so a day's split depends on the cumulative total before it: once
// the week crosses 40 hours, every later hour is overtime. Days must be in
// chronological order and belong to one week.
func AllocateWeekDaily(days []DayHours, threshold float64) []DaySplit {
	splits := make([]DaySplit, 0, len(days))
	cumulative := 0.0

	for _, d := range days {
		split := DaySplit{Date: d.Date, PaidHours: d.PaidHours}

		remaining := threshold - cumulative
		switch {
		case remaining <= 0:
			split.OvertimeHours = d.PaidHours
		case d.PaidHours <= remaining:
			split.RegularHours = d.PaidHours
		default:
			split.RegularHours = remaining
			split.OvertimeHours = d.PaidHours - remaining
		}

		cumulative += d.PaidHours
		splits = append(splits, split)
	}
	return splits
}
