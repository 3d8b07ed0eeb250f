package auth

import (
	"time"

	"github.com/aldawsari/shopdesk/internal/db"
	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/session"
)

// DBStore adapts the db package to the reconciler's Store interface.
type DBStore struct{}

func (DBStore) AutoStartAttendance(userID string) (session.StartResult, error) {
	res, err := db.AutoStartAttendance(userID)
	if err != nil {
		return session.StartResult{}, err
	}
	return session.StartResult{AttendanceID: res.AttendanceID, NewSession: res.NewSession}, nil
}

func (DBStore) EndCurrentAttendance(userID string) (bool, error) {
	return db.EndCurrentAttendance(userID)
}

func (DBStore) ActiveSessionStart(userID string, day time.Time) (*time.Time, error) {
	return db.ActiveSessionStart(userID, day)
}

func (DBStore) StartLoginSession(userID, deviceInfo string) (uint, error) {
	return db.StartLoginSession(userID, deviceInfo, "")
}

func (DBStore) EndLoginSession(sessionID uint) error {
	return db.EndLoginSession(sessionID)
}

// DBProfiles adapts the user service to the reconciler's profile lookup.
type DBProfiles struct{}

func (DBProfiles) GetUserProfile(userID string) (string, models.Role, error) {
	return db.GetUserProfile(userID)
}
