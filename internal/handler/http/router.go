package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/detailops/timeclock-backend/internal/handler/http/middleware"
	"github.com/detailops/timeclock-backend/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	punchHandler PunchHandler,
	timeAdminHandler TimeAdminHandler,
	vacationHandler VacationHandler,
	analyticsHandler AnalyticsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee-facing time clock
			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.Record)
				r.Get("/status", punchHandler.Status)
				r.Get("/recent", punchHandler.Recent)
			})

			r.Route("/me", func(r chi.Router) {
				r.Get("/today", analyticsHandler.MyToday)
				r.Get("/week", analyticsHandler.MyWeek)
			})

			// Admin surface
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admin", func(r chi.Router) {
					r.Route("/punches", func(r chi.Router) {
						r.Post("/pair", timeAdminHandler.CreatePair)
						r.Put("/{punchID}", timeAdminHandler.EditPunch)
						r.Delete("/{punchID}", timeAdminHandler.DeletePunch)
					})
					r.Post("/employees/{employeeID}/stop-shift", timeAdminHandler.StopShift)
					r.Get("/employees/{employeeID}/changes", timeAdminHandler.ChangeHistory)
					r.Get("/auto-stops", timeAdminHandler.AutoStops)
					r.Post("/sweep", punchHandler.Sweep)

					r.Route("/vacations", func(r chi.Router) {
						r.Post("/", vacationHandler.Grant)
						r.Put("/{entryID}", vacationHandler.Update)
						r.Delete("/{entryID}", vacationHandler.Delete)
					})
					r.Get("/employees/{employeeID}/vacations", vacationHandler.List)

					r.Route("/reports", func(r chi.Router) {
						r.Get("/employees/{employeeID}", analyticsHandler.EmployeeReport)
						r.Get("/dealerships/{dealershipID}", analyticsHandler.DealershipReport)
						r.Get("/company", analyticsHandler.CompanyReport)
					})
				})
			})
		})
	})
	return r
}
