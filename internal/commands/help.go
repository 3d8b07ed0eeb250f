package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for shopdesk",
	Long:  `Display detailed help for all shopdesk commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
███████╗██╗  ██╗ ██████╗ ██████╗ ██████╗ ███████╗███████╗██╗  ██╗
██╔════╝██║  ██║██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔════╝██║ ██╔╝
███████╗███████║██║   ██║██████╔╝██║  ██║█████╗  ███████╗█████╔╝
╚════██║██╔══██║██║   ██║██╔═══╝ ██║  ██║██╔══╝  ╚════██║██╔═██╗
███████║██║  ██║╚██████╔╝██║     ██████╔╝███████╗███████║██║  ██╗
╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═╝     ╚═════╝ ╚══════╝╚══════╝╚═╝  ╚═╝

shopdesk - Service Shop Desk Manager

COMMANDS:

  login [email]           Sign in and start the working day
    -p, --password        Password for non-interactive login

    Signing in auto-starts today's attendance record. Signing in
    twice on the same day resumes the existing shift.

  logout                  Sign out and end the working day
  status                  Show who is signed in and the running shift time
  dashboard               Full-screen shift dashboard with a live clock
    Keys:
      e             End shift and log out
      esc/q         Leave the shift running

  services                List the service catalog
    add <name> <price>    Add a service (admin/manager)
    price <id> <price>    Update a price (admin/manager)

  order <service-id>      Submit a performed service
    -c, --client          Client name
    --phone               Client phone
    -q, --qty             Quantity (default 1)
    -d, --discount        Discount amount
    --note                Order notes
  order ls                List orders
    --range               today|yesterday|week|month|"N days"|dd/mm/yyyy[..dd/mm/yyyy]

  expenses add <name> <amount>   Record an expense
  expenses ls             List expenses
    --range               Date range filter

  team                    List staff accounts (admin)
    add <email>           Create a staff account (admin)
    role <email> <role>   Change a role: admin|manager|employee (admin)

  attendance              Attendance log (own records; all staff for admin/manager)
    --user                Filter by staff email (admin/manager)
    --range               Date range filter

  sessions                Login session audit trail (admin/manager)
    --range               Date range filter

  report revenue          Revenue grouped by service, minus expenses
    --range               Date range filter
    --xlsx                Write an Excel workbook instead of printing

  settings                Show shop settings (admin)
    title <text>          Rename the shop
    theme <dark|light>    Switch the app theme

  help                    Show this help
  version                 Show version information

Set SHOPDESK_ADMIN_EMAIL and SHOPDESK_ADMIN_PASSWORD to seed the first
admin account on an empty database.

`)
}
