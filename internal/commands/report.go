package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/parser"
	"github.com/aldawsari/shopdesk/internal/report"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Shop reports",
}

var reportRevenueCmd = &cobra.Command{
	Use:   "revenue",
	Short: "Revenue grouped by service, minus expenses",
	Long: `Revenue grouped by service, minus expenses.

Examples:
  shopdesk report revenue --range month
  shopdesk report revenue --range "30 days" --xlsx report.xlsx`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin, models.RoleManager) == nil {
			return
		}

		rangeStr, _ := cmd.Flags().GetString("range")
		from, to, err := parser.ParseRange(rangeStr, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		lines, err := db.RevenueSummary(from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		expenses, err := db.ExpenseTotal(from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		if xlsxPath != "" {
			attendance, err := db.GetAttendanceInRange("", from, to)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			data := report.Data{
				OfficeTitle: officeTitle,
				From:        from,
				To:          to,
				Revenue:     lines,
				Expenses:    expenses,
				Attendance:  attendance,
			}
			if err := report.Write(xlsxPath, data); err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("📊 Report written to %s\n", xlsxPath)
			return
		}

		fmt.Printf("📊 Revenue %s → %s\n\n", timeutil.WorkDate(from), timeutil.WorkDate(to))
		if len(lines) == 0 {
			fmt.Println("No orders in this range.")
		} else {
			fmt.Printf("%-30s %7s %5s %12s\n", "SERVICE", "ORDERS", "QTY", "REVENUE")
			var revenue float64
			for _, l := range lines {
				fmt.Printf("%-30s %7d %5d %12.2f\n", l.ServiceName, l.Orders, l.Quantity, l.Revenue)
				revenue += l.Revenue
			}
			fmt.Printf("\n💰 Revenue:  %12.2f\n", revenue)
			fmt.Printf("💸 Expenses: %12.2f\n", expenses)
			fmt.Printf("🏦 Net:      %12.2f\n", revenue-expenses)
		}
	}),
}

func init() {
	reportRevenueCmd.Flags().String("range", "month", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")
	reportRevenueCmd.Flags().String("xlsx", "", "Write an Excel workbook to this path instead of printing")

	reportCmd.AddCommand(reportRevenueCmd)
}
