package response

import (
	"errors"
	"net/http"

	"github.com/detailops/timeclock-backend/internal/domain/analytics"
	"github.com/detailops/timeclock-backend/internal/domain/auth"
	"github.com/detailops/timeclock-backend/internal/domain/dealership"
	"github.com/detailops/timeclock-backend/internal/domain/employee"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/domain/timeadmin"
	"github.com/detailops/timeclock-backend/internal/domain/vacation"
	"github.com/detailops/timeclock-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Punch domain errors
	case errors.Is(err, punch.ErrOutsideGeofence):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, punch.ErrDoubleClockOut),
		errors.Is(err, punch.ErrClockOutBeforeClockIn):
		Conflict(w, err.Error())
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Directory and dealership errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, dealership.ErrShopNotFound):
		NotFound(w, "Dealership not found")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrEntryNotFound):
		NotFound(w, "Vacation entry not found")
	case errors.Is(err, vacation.ErrDuplicateForDate):
		Conflict(w, err.Error())
	case errors.Is(err, vacation.ErrHoursOutOfRange),
		errors.Is(err, vacation.ErrInvalidType),
		errors.Is(err, vacation.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)

	// Admin correction errors
	case errors.Is(err, timeadmin.ErrNotClockedIn):
		Conflict(w, err.Error())
	case errors.Is(err, timeadmin.ErrInvalidTimeFormat),
		errors.Is(err, timeadmin.ErrInvalidDateFormat),
		errors.Is(err, timeadmin.ErrEndBeforeStart),
		errors.Is(err, timeadmin.ErrReasonRequired):
		BadRequest(w, err.Error(), nil)

	// Analytics errors
	case errors.Is(err, analytics.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
