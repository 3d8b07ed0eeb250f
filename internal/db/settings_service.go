package db

import (
	"strings"

	"github.com/aldawsari/shopdesk/internal/models"
)

// GetSettings returns the single settings row, creating it with defaults
// on first use.
func GetSettings() (*models.AppSettings, error) {
	var settings models.AppSettings
	err := DB.First(&settings, 1).Error
	if err != nil {
		if !IsNotFound(err) {
			return nil, err
		}
		settings = models.AppSettings{ID: 1, OfficeTitle: "Shopdesk", AppTheme: "dark"}
		if err := DB.Create(&settings).Error; err != nil {
			return nil, err
		}
	}
	return &settings, nil
}

// UpdateSettings overwrites the shop title and theme
func UpdateSettings(officeTitle, appTheme string) (*models.AppSettings, error) {
	settings, err := GetSettings()
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(officeTitle); title != "" {
		settings.OfficeTitle = title
	}
	if theme := strings.TrimSpace(appTheme); theme != "" {
		settings.AppTheme = theme
	}

	if err := DB.Save(settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// LogActivity appends a row to the audit trail. Audit failures are
// returned but callers generally treat them as non-fatal.
func LogActivity(userID, action, details string) error {
	entry := models.ActivityLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Timestamp: nowFunc(),
	}
	return DB.Create(&entry).Error
}
