package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "List staff accounts",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin) == nil {
			return
		}

		users, err := db.GetUsers()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("👥 Staff (%d)\n\n", len(users))
		fmt.Printf("%-30s %-20s %-10s %-11s\n", "EMAIL", "NAME", "ROLE", "SINCE")
		for _, u := range users {
			fmt.Printf("%-30s %-20s %-10s %-11s\n",
				u.Email, u.Name, u.Role, timeutil.WorkDate(u.CreatedAt))
		}
	}),
}

var teamAddCmd = &cobra.Command{
	Use:   "add <email>",
	Short: "Create a staff account",
	Long: `Create a staff account. The role defaults to employee.

Examples:
  shopdesk team add amira@shop.sa -n "Amira" --password secret
  shopdesk team add omar@shop.sa --role manager --password secret`,
	Args: cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin) == nil {
			return
		}

		name, _ := cmd.Flags().GetString("name")
		roleStr, _ := cmd.Flags().GetString("role")
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			fmt.Println("Error: password is required (--password)")
			return
		}

		user, err := db.CreateUser(db.CreateUserRequest{
			Email:    args[0],
			Name:     name,
			Role:     models.Role(strings.ToLower(roleStr)),
			Password: password,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Created %s account for %s (%s)\n", user.Role, user.Name, user.Email)
	}),
}

var teamRoleCmd = &cobra.Command{
	Use:   "role <email> <role>",
	Short: "Change a staff member's role",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		admin := requireRole(models.RoleAdmin)
		if admin == nil {
			return
		}

		target, err := db.FindUserByEmail(args[0])
		if err != nil {
			if db.IsNotFound(err) {
				fmt.Printf("Error: no account with email '%s'\n", args[0])
			} else {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if target.ID == admin.ID {
			fmt.Println("🚫 You cannot change your own role.")
			return
		}

		user, err := db.UpdateUserRole(target.ID, models.Role(strings.ToLower(args[1])))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ %s is now %s\n", user.Email, user.Role)
	}),
}

func init() {
	teamAddCmd.Flags().StringP("name", "n", "", "Display name (defaults to the email)")
	teamAddCmd.Flags().String("role", "employee", "Role: admin, manager or employee")
	teamAddCmd.Flags().String("password", "", "Initial password")

	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamRoleCmd)
}
