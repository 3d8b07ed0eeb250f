package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/auth"
	"github.com/aldawsari/shopdesk/internal/config"
	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/session"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Shared app state, populated by initApp before any command runs
var (
	cfg         config.Config
	rec         *session.Reconciler
	manager     *auth.Manager
	officeTitle string
)

var rootCmd = &cobra.Command{
	Use:   "shopdesk",
	Short: "A service-shop desk manager for the terminal",
	Long: `shopdesk runs the front desk of a small service shop from the terminal.
Staff clock in and out, submit orders, record expenses, and managers pull
revenue and attendance reports — all against a local database.`,
}

// stderrNotifier surfaces background bookkeeping failures without
// interrupting the command that triggered them
type stderrNotifier struct{}

func (stderrNotifier) Notify(action string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s failed: %v\n", action, err)
}

// initApp loads configuration, opens the database and wires the session
// reconciler. Panics on failure: no command can run without the database.
func initApp() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}
	if err := db.Initialize(cfg.DatabasePath()); err != nil {
		panic(err)
	}

	// First run: seed an admin account so the shop isn't locked out
	adminEmail := os.Getenv("SHOPDESK_ADMIN_EMAIL")
	adminPass := os.Getenv("SHOPDESK_ADMIN_PASSWORD")
	if adminEmail != "" && adminPass != "" {
		if seeded, err := db.EnsureAdmin(adminEmail, adminPass); err == nil && seeded != nil {
			fmt.Printf("👑 Created admin account %s\n", seeded.Email)
		}
	}

	settings, err := db.GetSettings()
	if err != nil {
		panic(err)
	}
	officeTitle = settings.OfficeTitle
	if cfg.OfficeTitle != "" {
		officeTitle = cfg.OfficeTitle
	}

	rec = session.NewReconciler(auth.DBStore{}, auth.DBProfiles{}, stderrNotifier{}, auth.DeviceInfo())
	manager = auth.NewManager(rec, cfg.SessionFilePath())
}

// withApp wraps a command function to initialize the app first
func withApp(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initApp()
		fn(cmd, args)
	}
}

// currentUser restores the persisted session and returns the signed-in
// identity, or nil when nobody is signed in
func currentUser() (*session.Identity, error) {
	user, err := manager.Restore()
	if err != nil {
		return nil, err
	}
	return user, nil
}

// requireLogin restores the session and complains when nobody is signed in
func requireLogin() *session.Identity {
	user, err := currentUser()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}
	if user == nil {
		fmt.Println("🔒 Not signed in. Use 'shopdesk login' first.")
		return nil
	}
	return user
}

// requireRole restores the session and checks the user holds one of the
// given roles
func requireRole(roles ...models.Role) *session.Identity {
	user := requireLogin()
	if user == nil {
		return nil
	}
	for _, r := range roles {
		if user.Role == r {
			return user
		}
	}
	fmt.Printf("🚫 This command needs %s access (you are %s).\n", roleList(roles), user.Role)
	return nil
}

func roleList(roles []models.Role) string {
	out := ""
	for i, r := range roles {
		if i > 0 {
			out += " or "
		}
		out += string(r)
	}
	return out
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
