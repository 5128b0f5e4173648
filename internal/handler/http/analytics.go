package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/detailops/timeclock-backend/internal/domain/analytics"
	"github.com/detailops/timeclock-backend/internal/domain/auth"
	"github.com/detailops/timeclock-backend/internal/handler/http/middleware"
	"github.com/detailops/timeclock-backend/internal/handler/http/response"
)

type AnalyticsHandler interface {
	MyToday(w http.ResponseWriter, r *http.Request)
	MyWeek(w http.ResponseWriter, r *http.Request)
	EmployeeReport(w http.ResponseWriter, r *http.Request)
	DealershipReport(w http.ResponseWriter, r *http.Request)
	CompanyReport(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandler(analyticsService analytics.Service) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// MyToday implements AnalyticsHandler.
func (h *analyticsHandlerImpl) MyToday(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	status, err := h.analyticsService.TodayStatus(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, status)
}

// MyWeek implements AnalyticsHandler.
func (h *analyticsHandlerImpl) MyWeek(w http.ResponseWriter, r *http.Request) {
	employeeID := middleware.EmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	summary, err := h.analyticsService.WeeklySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// EmployeeReport implements AnalyticsHandler.
func (h *analyticsHandlerImpl) EmployeeReport(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	labor, err := h.analyticsService.EmployeeRange(r.Context(), employeeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, labor)
}

// DealershipReport implements AnalyticsHandler.
func (h *analyticsHandlerImpl) DealershipReport(w http.ResponseWriter, r *http.Request) {
	dealershipID := chi.URLParam(r, "dealershipID")
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	labor, err := h.analyticsService.DealershipRange(r.Context(), dealershipID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, labor)
}

// CompanyReport implements AnalyticsHandler.
func (h *analyticsHandlerImpl) CompanyReport(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	labor, err := h.analyticsService.CompanyRange(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, labor)
}
