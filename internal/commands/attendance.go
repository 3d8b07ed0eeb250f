package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/parser"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

var attendanceCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Show the attendance log",
	Long: `Show the attendance log. Employees see their own records; admins and
managers see everyone's and can filter with --user.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireLogin()
		if user == nil {
			return
		}

		rangeStr, _ := cmd.Flags().GetString("range")
		from, to, err := parser.ParseRange(rangeStr, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		// Employees are scoped to themselves
		filterUser := user.ID
		if user.Role == models.RoleAdmin || user.Role == models.RoleManager {
			filterUser = ""
			if email, _ := cmd.Flags().GetString("user"); email != "" {
				target, err := db.FindUserByEmail(email)
				if err != nil {
					if db.IsNotFound(err) {
						fmt.Printf("Error: no account with email '%s'\n", email)
					} else {
						fmt.Printf("Error: %v\n", err)
					}
					return
				}
				filterUser = target.ID
			}
		}

		records, err := db.GetAttendanceInRange(filterUser, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(records) == 0 {
			fmt.Printf("📅 No attendance between %s and %s.\n",
				timeutil.WorkDate(from), timeutil.WorkDate(to))
			return
		}

		totalMinutes := 0
		fmt.Printf("📅 Attendance %s → %s (%d)\n\n",
			timeutil.WorkDate(from), timeutil.WorkDate(to), len(records))
		fmt.Printf("%-11s %-20s %-9s %-9s %10s\n", "DATE", "STAFF", "IN", "OUT", "WORKED")
		for _, a := range records {
			out := "—"
			worked := "open"
			if a.CheckOut != nil {
				out = a.CheckOut.Format("15:04")
			}
			if a.SessionDuration != nil {
				worked = timeutil.FormatMinutes(*a.SessionDuration)
				totalMinutes += *a.SessionDuration
			}
			fmt.Printf("%-11s %-20s %-9s %-9s %10s\n",
				a.WorkDate, a.User.Name, a.CheckIn.Format("15:04"), out, worked)
		}
		fmt.Printf("\n⏱️  Total: %s\n", timeutil.FormatMinutes(totalMinutes))
	}),
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show the login session audit trail",
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

		sessions, err := db.GetSessionsInRange("", from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(sessions) == 0 {
			fmt.Printf("🔑 No logins between %s and %s.\n",
				timeutil.WorkDate(from), timeutil.WorkDate(to))
			return
		}

		fmt.Printf("🔑 Logins %s → %s (%d)\n\n",
			timeutil.WorkDate(from), timeutil.WorkDate(to), len(sessions))
		fmt.Printf("%-11s %-20s %-9s %-9s %-25s\n", "DATE", "STAFF", "IN", "OUT", "DEVICE")
		for _, s := range sessions {
			out := "—"
			if s.LogoutTime != nil {
				out = s.LogoutTime.Format("15:04")
			}
			fmt.Printf("%-11s %-20s %-9s %-9s %-25s\n",
				timeutil.WorkDate(s.LoginTime), s.User.Name,
				s.LoginTime.Format("15:04"), out, s.DeviceInfo)
		}
	}),
}

func init() {
	attendanceCmd.Flags().String("range", "", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")
	attendanceCmd.Flags().String("user", "", "Filter by staff email (admin/manager)")

	sessionsCmd.Flags().String("range", "", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")
}
