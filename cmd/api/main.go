package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/detailops/timeclock-backend/internal/config"
	appHTTP "github.com/detailops/timeclock-backend/internal/handler/http"
	"github.com/detailops/timeclock-backend/internal/pkg/cron"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
	"github.com/detailops/timeclock-backend/internal/pkg/jwt"
	"github.com/detailops/timeclock-backend/internal/repository/postgresql"
	analyticsService "github.com/detailops/timeclock-backend/internal/service/analytics"
	employeeService "github.com/detailops/timeclock-backend/internal/service/employee"
	punchService "github.com/detailops/timeclock-backend/internal/service/punch"
	timeAdminService "github.com/detailops/timeclock-backend/internal/service/timeadmin"
	vacationService "github.com/detailops/timeclock-backend/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(db)
	vacationRepo := postgresql.NewVacationRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	dealershipRepo := postgresql.NewDealershipRepository(db)
	directory := employeeService.NewCachedDirectory(
		postgresql.NewEmployeeDirectory(db),
		cfg.TimeClock.DirectoryCacheSize,
		time.Duration(cfg.TimeClock.DirectoryCacheTTLSeconds)*time.Second,
	)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	punchSvc := punchService.NewPunchService(db, punchRepo, dealershipRepo, directory, auditRepo, cfg.TimeClock.SweepLookbackDays)
	timeAdminSvc := timeAdminService.NewTimeAdminService(db, punchRepo, directory, auditRepo)
	vacationSvc := vacationService.NewVacationService(vacationRepo, directory)
	analyticsSvc := analyticsService.NewAnalyticsService(
		punchRepo,
		vacationRepo,
		dealershipRepo,
		directory,
		cfg.TimeClock.ShiftGuardThresholdHours,
	)

	punchHandler := appHTTP.NewPunchHandler(punchSvc, cfg.TimeClock.ShiftGuardThresholdHours)
	timeAdminHandler := appHTTP.NewTimeAdminHandler(timeAdminSvc)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	scheduler := cron.NewScheduler(context.Background())
	cron.NewShiftGuardJobs(punchSvc, cfg.TimeClock.ShiftGuardThresholdHours).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		jwtService,
		punchHandler,
		timeAdminHandler,
		vacationHandler,
		analyticsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
