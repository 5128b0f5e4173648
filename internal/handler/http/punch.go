package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/detailops/timeclock-backend/internal/domain/auth"
	"github.com/detailops/timeclock-backend/internal/domain/punch"
	"github.com/detailops/timeclock-backend/internal/handler/http/middleware"
	"github.com/detailops/timeclock-backend/internal/handler/http/response"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	Sweep(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService   punch.PunchService
	sweepThreshold float64
}

func NewPunchHandler(punchService punch.PunchService, sweepThreshold float64) PunchHandler {
	return &punchHandlerImpl{
		punchService:   punchService,
		sweepThreshold: sweepThreshold,
	}
}

// Record implements PunchHandler. The employee identity comes from the
// token, never from the body.
func (h *punchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req punch.RecordPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.punchService.RecordPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.AutoClockOut != nil {
		response.Created(w, result.Message, result)
		return
	}
	response.Created(w, "Punch recorded", result)
}

// Status implements PunchHandler.
func (h *punchHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	status, err := h.punchService.Status(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

// Recent implements PunchHandler.
func (h *punchHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, err := h.punchService.RecentPunches(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

// Sweep implements PunchHandler. Admin-triggered manual run of the same
// pass the scheduler performs hourly.
func (h *punchHandlerImpl) Sweep(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.SweepOpenShifts(r.Context(), h.sweepThreshold)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Sweep completed", result)
}
