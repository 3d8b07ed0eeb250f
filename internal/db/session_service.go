package db

import (
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
)

// StartLoginSession records the beginning of an authenticated app session.
// Unlike attendance, several login sessions per day are fine.
func StartLoginSession(userID, deviceInfo, ipAddress string) (uint, error) {
	session := models.LoginSession{
		UserID:     userID,
		LoginTime:  nowFunc(),
		DeviceInfo: deviceInfo,
		IPAddress:  ipAddress,
	}
	if err := DB.Create(&session).Error; err != nil {
		return 0, err
	}
	return session.ID, nil
}

// EndLoginSession stamps the logout time on a session row. A session that
// no longer exists is ignored.
func EndLoginSession(sessionID uint) error {
	if sessionID == 0 {
		return nil
	}
	now := nowFunc()
	return DB.Model(&models.LoginSession{}).
		Where("id = ?", sessionID).
		Update("logout_time", &now).Error
}

// GetSessionsInRange returns login-session audit rows between two times,
// for one user or for everyone when userID is empty.
func GetSessionsInRange(userID string, from, to time.Time) ([]models.LoginSession, error) {
	query := DB.Where("login_time >= ? AND login_time <= ?", from, to)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var sessions []models.LoginSession
	err := query.Preload("User").
		Order("login_time DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
