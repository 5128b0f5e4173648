package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/detailops/timeclock-backend/internal/config"
	"github.com/detailops/timeclock-backend/internal/pkg/database"
	"github.com/detailops/timeclock-backend/internal/repository/postgresql"
	analyticsService "github.com/detailops/timeclock-backend/internal/service/analytics"
	employeeService "github.com/detailops/timeclock-backend/internal/service/employee"
	punchService "github.com/detailops/timeclock-backend/internal/service/punch"
)

var (
	cfg *config.Config
	db  *database.DB

	punchSvc     *punchService.PunchServiceImpl
	analyticsSvc *analyticsService.AnalyticsServiceImpl
)

var rootCmd = &cobra.Command{
	Use:   "timeclockctl",
	Short: "Operational tooling for the time clock backend",
	Long:  `timeclockctl runs maintenance tasks against the time clock database: Shift Guard sweeps and ad hoc labor reports.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		db, err = database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return err
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

		punchSvc = punchService.NewPunchService(db, punchRepo, dealershipRepo, directory, auditRepo, cfg.TimeClock.SweepLookbackDays)
		analyticsSvc = analyticsService.NewAnalyticsService(
			punchRepo,
			vacationRepo,
			dealershipRepo,
			directory,
			cfg.TimeClock.ShiftGuardThresholdHours,
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

func main() {
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
