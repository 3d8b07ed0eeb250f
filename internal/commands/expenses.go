package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/parser"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

var expensesCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Record and list shop expenses",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		runExpensesList(cmd)
	}),
}

var expensesAddCmd = &cobra.Command{
	Use:   "add <name> <amount>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireLogin()
		if user == nil {
			return
		}

		amount, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Printf("Error: invalid amount '%s'\n", args[1])
			return
		}

		expense, err := db.AddExpense(user.ID, args[0], amount)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("💸 Recorded expense \"%s\" of %.2f - ID: %d\n",
			expense.Name, expense.Amount, expense.ID)
	}),
}

var expensesListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List expenses",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		runExpensesList(cmd)
	}),
}

func runExpensesList(cmd *cobra.Command) {
	if requireLogin() == nil {
		return
	}

	rangeStr, _ := cmd.Flags().GetString("range")
	from, to, err := parser.ParseRange(rangeStr, time.Now())
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	expenses, err := db.GetExpensesInRange(from, to)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(expenses) == 0 {
		fmt.Printf("💸 No expenses between %s and %s.\n",
			timeutil.WorkDate(from), timeutil.WorkDate(to))
		return
	}

	var total float64
	fmt.Printf("💸 Expenses %s → %s (%d)\n\n",
		timeutil.WorkDate(from), timeutil.WorkDate(to), len(expenses))
	fmt.Printf("%-5s %-11s %-30s %-20s %10s\n", "ID", "DATE", "NAME", "BY", "AMOUNT")
	for _, e := range expenses {
		fmt.Printf("%-5d %-11s %-30s %-20s %10.2f\n",
			e.ID, timeutil.WorkDate(e.CreatedAt), e.Name, e.User.Name, e.Amount)
		total += e.Amount
	}
	fmt.Printf("\n💰 Total: %.2f\n", total)
}

func init() {
	expensesCmd.Flags().String("range", "", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")
	expensesListCmd.Flags().String("range", "", "Date range (today, week, month, N days, dd/mm/yyyy[..dd/mm/yyyy])")

	expensesCmd.AddCommand(expensesAddCmd)
	expensesCmd.AddCommand(expensesListCmd)
}
