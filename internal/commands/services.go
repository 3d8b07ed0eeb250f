package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the service catalog",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireLogin() == nil {
			return
		}

		services, err := db.GetServices()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(services) == 0 {
			fmt.Println("📋 The catalog is empty. Add services with 'shopdesk services add'.")
			return
		}

		fmt.Printf("📋 Service catalog (%d)\n\n", len(services))
		fmt.Printf("%-4s %-30s %-15s %10s\n", "ID", "NAME", "CATEGORY", "PRICE")
		for _, s := range services {
			fmt.Printf("%-4d %-30s %-15s %10.2f\n", s.ID, s.Name, s.Category, s.Price)
		}
	}),
}

var servicesAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Add a service to the catalog",
	Args:  cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin, models.RoleManager) == nil {
			return
		}

		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			fmt.Printf("Error: invalid price '%s'\n", args[1])
			return
		}
		category, _ := cmd.Flags().GetString("category")
		link, _ := cmd.Flags().GetString("link")

		service, err := db.CreateService(args[0], category, price, link)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Added service \"%s\" at %.2f - ID: %d\n", service.Name, service.Price, service.ID)
	}),
}

var servicesPriceCmd = &cobra.Command{
	Use:   "price <id> <price>",
	Short: "Update a catalog price",
	Long: `Update a catalog price. Existing orders keep the price they were
submitted at.`,
	Args: cobra.ExactArgs(2),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin, models.RoleManager) == nil {
			return
		}

		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Error: invalid service ID '%s'\n", args[0])
			return
		}
		price, err := strconv.ParseFloat(args[1], 64)
		if err != nil || price < 0 {
			fmt.Printf("Error: invalid price '%s'\n", args[1])
			return
		}

		service, err := db.UpdateServicePrice(uint(id), price)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ \"%s\" now costs %.2f\n", service.Name, service.Price)
	}),
}

func init() {
	servicesAddCmd.Flags().String("category", "", "Service category")
	servicesAddCmd.Flags().String("link", "", "Reference link for the service")
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesPriceCmd)
}
