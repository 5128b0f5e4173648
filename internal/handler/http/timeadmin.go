package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/detailops/timeclock-backend/internal/domain/timeadmin"
	"github.com/detailops/timeclock-backend/internal/handler/http/middleware"
	"github.com/detailops/timeclock-backend/internal/handler/http/response"
)

type TimeAdminHandler interface {
	CreatePair(w http.ResponseWriter, r *http.Request)
	EditPunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
	StopShift(w http.ResponseWriter, r *http.Request)
	ChangeHistory(w http.ResponseWriter, r *http.Request)
	AutoStops(w http.ResponseWriter, r *http.Request)
}

type timeAdminHandlerImpl struct {
	timeAdminService timeadmin.Service
}

func NewTimeAdminHandler(timeAdminService timeadmin.Service) TimeAdminHandler {
	return &timeAdminHandlerImpl{
		timeAdminService: timeAdminService,
	}
}

// CreatePair implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) CreatePair(w http.ResponseWriter, r *http.Request) {
	var req timeadmin.CreatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = middleware.UserID(r)

	result, err := h.timeAdminService.CreatePair(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Punch pair created", result)
}

// EditPunch implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) EditPunch(w http.ResponseWriter, r *http.Request) {
	var req timeadmin.EditPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PunchID = chi.URLParam(r, "punchID")
	req.AdminID = middleware.UserID(r)

	event, err := h.timeAdminService.EditPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch updated", event)
}

// DeletePunch implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	var req timeadmin.DeletePunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PunchID = chi.URLParam(r, "punchID")
	req.AdminID = middleware.UserID(r)

	if err := h.timeAdminService.DeletePunch(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// StopShift implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) StopShift(w http.ResponseWriter, r *http.Request) {
	var req timeadmin.StopShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")
	req.AdminID = middleware.UserID(r)

	event, err := h.timeAdminService.StopShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift stopped", event)
}

// ChangeHistory implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) ChangeHistory(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.timeAdminService.ChangeHistory(r.Context(), employeeID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// AutoStops implements TimeAdminHandler.
func (h *timeAdminHandlerImpl) AutoStops(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.timeAdminService.AutoStopEvents(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
