package models

import (
	"time"
)

// Attendance represents one continuous clocked-in interval for a user on
// one calendar day. At most one row per user may have a null CheckOut.
type Attendance struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID          string     `gorm:"not null;index:idx_attendance_user_day" json:"user_id"`
	WorkDate        string     `gorm:"not null;index:idx_attendance_user_day" json:"work_date"` // 2006-01-02
	CheckIn         time.Time  `gorm:"not null" json:"check_in"`
	CheckOut        *time.Time `json:"check_out"`
	SessionDuration *int       `json:"session_duration"` // whole minutes, set on checkout

	// Relationships
	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}

// Open reports whether the interval is still running.
func (a Attendance) Open() bool {
	return a.CheckOut == nil
}

// LoginSession is an audit record of one authenticated app session. It is
// independent of Attendance: several sessions may exist per day, only
// attendance enforces the one-open-interval rule.
type LoginSession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     string     `gorm:"not null;index" json:"user_id"`
	LoginTime  time.Time  `gorm:"not null" json:"login_time"`
	LogoutTime *time.Time `json:"logout_time"`
	DeviceInfo string     `json:"device_info"`
	IPAddress  string     `json:"ip_address"`

	// Relationships
	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
}
