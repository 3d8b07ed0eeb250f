package tui

// Color constants for the shopdesk TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A4A55" // Grey-teal

	// Text Colors
	ColorPrimaryText   = "#EAF2EF" // Primary text (labels, user input, titles)
	ColorSecondaryText = "#AEC4BD" // Secondary text - muted teal-grey
	ColorDisabledText  = "#6D7F7A" // Disabled/muted text
	ColorPlaceholder   = "#AEC4BD" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal & gold theme)
	ColorAccentMain   = "#0D9488" // Logo, accent elements, active borders
	ColorAccentBright = "#2DD4BF" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Validation errors
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings, open shifts
	ColorGold    = "#D4A657" // Revenue figures
)
