package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/detailops/timeclock-backend/internal/domain/vacation"
	"github.com/detailops/timeclock-backend/internal/handler/http/middleware"
	"github.com/detailops/timeclock-backend/internal/handler/http/response"
)

type VacationHandler interface {
	Grant(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	vacationService vacation.Service
}

func NewVacationHandler(vacationService vacation.Service) VacationHandler {
	return &vacationHandlerImpl{
		vacationService: vacationService,
	}
}

// Grant implements VacationHandler.
func (h *vacationHandlerImpl) Grant(w http.ResponseWriter, r *http.Request) {
	var req vacation.GrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = middleware.UserID(r)

	entry, err := h.vacationService.Grant(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Vacation granted", entry)
}

// List implements VacationHandler.
func (h *vacationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	entries, err := h.vacationService.ListForEmployee(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Update implements VacationHandler.
func (h *vacationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req vacation.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "entryID")
	req.AdminID = middleware.UserID(r)

	entry, err := h.vacationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vacation updated", entry)
}

// Delete implements VacationHandler.
func (h *vacationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.vacationService.Delete(r.Context(), chi.URLParam(r, "entryID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Vacation deleted", nil)
}
