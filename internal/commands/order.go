package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/parser"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

var orderCmd = &cobra.Command{
	Use:   "order <service-id>",
	Short: "Submit a performed service",
	Long: `Submit a performed service. The catalog price is snapshotted into the
order, so later price changes don't rewrite history.

Examples:
  shopdesk order 3 -c "Fatima" -q 2
  shopdesk order 3 -c "Fatima" --phone 0501234567 -d 10 --note "regular"`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireLogin()
		if user == nil {
			return
		}

		serviceID, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid service ID '%s'\n", args[0])
			return
		}

		client, _ := cmd.Flags().GetString("client")
		phone, _ := cmd.Flags().GetString("phone")
		qty, _ := cmd.Flags().GetInt("qty")
		discount, _ := cmd.Flags().GetFloat64("discount")
		note, _ := cmd.Flags().GetString("note")

		if client == "" {
			fmt.Println("Error: client name is required (-c)")
			return
		}

		order, err := db.CreateOrder(db.CreateOrderRequest{
			UserID:      user.ID,
			ServiceID:   uint(serviceID),
			ClientName:  client,
			ClientPhone: phone,
			Quantity:    qty,
			Discount:    discount,
			Notes:       note,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🧾 Order #%d: %s ×%d for %s — total %.2f\n",
			order.ID, order.Service.Name, order.Quantity, order.Client.Name, order.Total)
	}),
}

var orderListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List submitted orders",
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

		// Employees see their own orders, managers see everyone's
		filterUser := user.ID
		if user.Role == models.RoleAdmin || user.Role == models.RoleManager {
			filterUser = ""
		}

		orders, err := db.GetOrdersInRange(filterUser, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(orders) == 0 {
			fmt.Printf("🧾 No orders between %s and %s.\n",
				timeutil.WorkDate(from), timeutil.WorkDate(to))
			return
		}

		var total float64
		fmt.Printf("🧾 Orders %s → %s (%d)\n\n",
			timeutil.WorkDate(from), timeutil.WorkDate(to), len(orders))
		fmt.Printf("%-5s %-11s %-25s %-20s %4s %10s\n",
			"ID", "DATE", "SERVICE", "CLIENT", "QTY", "TOTAL")
		for _, o := range orders {
			fmt.Printf("%-5d %-11s %-25s %-20s %4d %10.2f\n",
				o.ID, timeutil.WorkDate(o.CreatedAt), o.Service.Name, o.Client.Name,
				o.Quantity, o.Total)
			total += o.Total
		}
		fmt.Printf("\n💰 Total: %.2f\n", total)
	}),
}

func init() {
	orderCmd.Flags().StringP("client", "c", "", "Client name")
	orderCmd.Flags().String("phone", "", "Client phone")
	orderCmd.Flags().IntP("qty", "q", 1, "Quantity")
	orderCmd.Flags().Float64P("discount", "d", 0, "Discount amount")
	orderCmd.Flags().String("note", "", "Order notes")

	orderListCmd.Flags().String("range", "", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")

	orderCmd.AddCommand(orderListCmd)
}
