package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show shop settings",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		if requireRole(models.RoleAdmin) == nil {
			return
		}

		settings, err := db.GetSettings()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Println("⚙️  Shop settings")
		fmt.Printf("  Title: %s\n", settings.OfficeTitle)
		fmt.Printf("  Theme: %s\n", settings.AppTheme)
	}),
}

var settingsTitleCmd = &cobra.Command{
	Use:   "title <text>",
	Short: "Rename the shop",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireRole(models.RoleAdmin)
		if user == nil {
			return
		}

		settings, err := db.UpdateSettings(args[0], "")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		db.LogActivity(user.ID, "settings", "renamed shop to "+settings.OfficeTitle)
		fmt.Printf("✅ Shop renamed to \"%s\"\n", settings.OfficeTitle)
	}),
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme <dark|light>",
	Short: "Switch the app theme",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		user := requireRole(models.RoleAdmin)
		if user == nil {
			return
		}

		theme := args[0]
		if theme != "dark" && theme != "light" {
			fmt.Printf("Error: unknown theme '%s' (use dark or light)\n", theme)
			return
		}

		settings, err := db.UpdateSettings("", theme)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		db.LogActivity(user.ID, "settings", "switched theme to "+settings.AppTheme)
		fmt.Printf("✅ Theme set to %s\n", settings.AppTheme)
	}),
}

func init() {
	settingsCmd.AddCommand(settingsTitleCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
}
