package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/session"
	"github.com/aldawsari/shopdesk/internal/timeutil"
	"github.com/aldawsari/shopdesk/internal/tui"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and start the working day",
	Long: `Sign in with your staff account. Signing in auto-starts today's
attendance record, so clocking in is just logging in.

Examples:
  shopdesk login                         # Interactive login form
  shopdesk login amira@shop.sa -p secret # Non-interactive`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if existing, err := currentUser(); err == nil && existing != nil {
			fmt.Printf("💡 Already signed in as %s. Use 'shopdesk logout' first.\n", existing.Email)
			return
		}

		password, _ := cmd.Flags().GetString("password")

		if len(args) == 0 || password == "" {
			// Interactive form
			ok, err := tui.RunLogin(officeTitle, manager)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				fmt.Println("❌ Login cancelled.")
				return
			}
		} else {
			email := strings.TrimSpace(args[0])
			ok, err := manager.Login(email, password)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				fmt.Println("❌ Invalid email or password.")
				return
			}
		}

		printShiftBanner()
	}),
}

// printShiftBanner reports who signed in and where today's shift stands
func printShiftBanner() {
	rec.Flush()
	snap := rec.Snapshot()
	if snap.User == nil {
		return
	}

	fmt.Printf("✅ Signed in as %s (%s)\n", snap.User.Name, snap.User.Role)
	if snap.ActiveSessionStart != nil {
		fmt.Printf("⏱️  On shift since %s\n", snap.ActiveSessionStart.Format("15:04:05"))
	}
	if minutes, err := db.TodayWorkMinutes(snap.User.ID); err == nil && minutes > 0 {
		fmt.Printf("📅 Worked today: %s\n", timeutil.FormatMinutes(minutes))
	}
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and end the working day",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireLogin()
		if user == nil {
			return
		}

		// Grab the running shift before sign-out clears it
		rec.Flush()
		snap := rec.Snapshot()
		var elapsed time.Duration
		if snap.ActiveSessionStart != nil {
			elapsed = time.Since(*snap.ActiveSessionStart)
		}

		if err := manager.Logout(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if elapsed > 0 {
			fmt.Printf("⏹️  Shift ended after %s. Signed out %s.\n",
				timeutil.FormatHHMMSS(elapsed), user.Email)
		} else {
			fmt.Printf("👋 Signed out %s.\n", user.Email)
		}
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show who is signed in and the running shift time",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user, err := currentUser()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if user == nil {
			fmt.Println("🔒 Not signed in.")
			return
		}

		rec.Flush()
		snap := rec.Snapshot()

		fmt.Printf("👤 %s (%s) — %s\n", user.Name, user.Role, user.Email)
		if snap.ActiveSessionStart != nil {
			// One-shot read: the ticker buffers the current elapsed value
			ticker := session.NewTicker()
			elapsed := <-ticker.Start(*snap.ActiveSessionStart)
			ticker.Stop()
			fmt.Printf("⏱️  On shift since %s — elapsed %s\n",
				snap.ActiveSessionStart.Format("15:04:05"), elapsed)
		} else {
			fmt.Println("○ Not clocked in today.")
		}
		if minutes, err := db.TodayWorkMinutes(user.ID); err == nil {
			fmt.Printf("📅 Worked today: %s\n", timeutil.FormatMinutes(minutes))
		}
	}),
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the live shift dashboard",
	Long: `Open the full-screen shift dashboard with a running clock.
Press 'e' to end the shift and log out, or esc to leave it running.`,
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireLogin()
		if user == nil {
			return
		}
		rec.Flush()

		if err := tui.RunDashboard(officeTitle, user, rec, manager); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

func init() {
	loginCmd.Flags().StringP("password", "p", "", "Password for non-interactive login")
}
