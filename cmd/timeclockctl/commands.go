package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Force-close long-open shifts",
	Long:  `Run one Shift Guard pass: scan recently active employees and force-close any shift open past the configured threshold.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := punchSvc.SweepOpenShifts(cmd.Context(), cfg.TimeClock.ShiftGuardThresholdHours)
		if err != nil {
			return err
		}

		fmt.Printf("Scanned %d employee(s), closed %d shift(s)\n", result.EmployeesScanned, result.ShiftsClosed)
		for _, id := range result.Failures {
			fmt.Printf("  failed: %s\n", id)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a labor report as JSON",
	Long:  `Generate a labor report over a date range. With --employee it reports one employee; with --dealership one location; otherwise the whole company.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		employeeID, _ := cmd.Flags().GetString("employee")
		dealershipID, _ := cmd.Flags().GetString("dealership")

		var report any
		var err error
		switch {
		case employeeID != "":
			report, err = analyticsSvc.EmployeeRange(cmd.Context(), employeeID, start, end)
		case dealershipID != "":
			report, err = analyticsSvc.DealershipRange(cmd.Context(), dealershipID, start, end)
		default:
			report, err = analyticsSvc.CompanyRange(cmd.Context(), start, end)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	reportCmd.Flags().String("start", "", "range start date (YYYY-MM-DD)")
	reportCmd.Flags().String("end", "", "range end date (YYYY-MM-DD)")
	reportCmd.Flags().String("employee", "", "report a single employee")
	reportCmd.Flags().String("dealership", "", "report a single dealership")
	_ = reportCmd.MarkFlagRequired("start")
	_ = reportCmd.MarkFlagRequired("end")
}
