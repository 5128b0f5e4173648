package employee

import (
	"fmt"
	"strconv"
	"strings"
)

// Employee mirrors the external user directory. The core treats wage and
// dealership assignments as inputs; it never owns them.
type Employee struct {
	ID            string   `json:"id"`
	DisplayName   string   `json:"display_name"`
	HourlyWage    float64  `json:"hourly_wage"`
	DealershipIDs []string `json:"dealership_ids"`

	// WageUnavailable is set when the directory record's wage was absent
	// or failed coercion. Reports must surface it rather than pricing the
	// employee's hours at zero.
	WageUnavailable bool `json:"wage_unavailable,omitempty"`
}

// CoerceWage normalizes a loosely-typed wage value from the directory.
// Legacy records store wages as strings or integers; anything non-numeric
// or negative is rejected outright rather than defaulting to zero, because
// a silent zero wage corrupts payroll totals with no visible error.
func CoerceWage(raw any) (float64, error) {
	var wage float64
	switch v := raw.(type) {
	case float64:
		wage = v
	case float32:
		wage = float64(v)
	case int:
		wage = float64(v)
	case int64:
		wage = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrWageNotNumeric, v)
		}
		wage = parsed
	case nil:
		return 0, ErrWageMissing
	default:
		return 0, fmt.Errorf("%w: %T", ErrWageNotNumeric, raw)
	}
	if wage < 0 {
		return 0, fmt.Errorf("%w: %f", ErrWageNegative, wage)
	}
	return wage, nil
}
