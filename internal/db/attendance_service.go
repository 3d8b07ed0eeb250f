package db

import (
	"time"

	"github.com/aldawsari/shopdesk/internal/models"
	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// nowFunc is the clock used by attendance bookkeeping, swappable in tests.
var nowFunc = time.Now

// StartResult is what AutoStartAttendance reports back.
type StartResult struct {
	AttendanceID uint
	NewSession   bool
}

// AutoStartAttendance ensures the user has exactly one open attendance row
// for today. It is idempotent:
//   - an open row for today is reused as-is
//   - an open row left dangling from a previous day is closed at that day's
//     end before today's row is created
//   - otherwise a new row with check_in = now is created
func AutoStartAttendance(userID string) (*StartResult, error) {
	now := nowFunc()
	today := timeutil.WorkDate(now)

	var open models.Attendance
	err := DB.Where("user_id = ? AND check_out IS NULL", userID).
		Order("check_in DESC").
		First(&open).Error
	if err == nil {
		if open.WorkDate == today {
			return &StartResult{AttendanceID: open.ID}, nil
		}
		if err := closeAttendance(&open, timeutil.EndOfDay(open.CheckIn)); err != nil {
			return nil, err
		}
	} else if !IsNotFound(err) {
		return nil, err
	}

	record := models.Attendance{
		UserID:   userID,
		WorkDate: today,
		CheckIn:  now,
	}
	if err := DB.Create(&record).Error; err != nil {
		return nil, err
	}

	return &StartResult{AttendanceID: record.ID, NewSession: true}, nil
}

// EndCurrentAttendance closes the user's open attendance row, setting the
// checkout time and the floored duration in minutes. Rows that are already
// closed are never touched. Returns false when nothing was open, which is
// not an error.
func EndCurrentAttendance(userID string) (bool, error) {
	var open models.Attendance
	err := DB.Where("user_id = ? AND check_out IS NULL", userID).
		Order("check_in DESC").
		First(&open).Error
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if err := closeAttendance(&open, nowFunc()); err != nil {
		return false, err
	}
	return true, nil
}

// closeAttendance stamps the checkout and computed duration on a row
func closeAttendance(a *models.Attendance, at time.Time) error {
	minutes := timeutil.DurationMinutes(a.CheckIn, at)
	a.CheckOut = &at
	a.SessionDuration = &minutes
	return DB.Save(a).Error
}

// ActiveSessionStart returns the check-in time of the user's open attendance
// row for the given day, most recent first, or nil if there is none.
func ActiveSessionStart(userID string, day time.Time) (*time.Time, error) {
	var row models.Attendance
	err := DB.Where("user_id = ? AND work_date = ? AND check_out IS NULL", userID, timeutil.WorkDate(day)).
		Order("check_in DESC").
		First(&row).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil // no open interval is not an error
		}
		return nil, err
	}
	return &row.CheckIn, nil
}

// TodayWorkMinutes sums the user's closed intervals for today plus the
// running open one, in whole minutes.
func TodayWorkMinutes(userID string) (int, error) {
	now := nowFunc()

	var rows []models.Attendance
	err := DB.Where("user_id = ? AND work_date = ?", userID, timeutil.WorkDate(now)).
		Find(&rows).Error
	if err != nil {
		return 0, err
	}

	total := 0
	for _, row := range rows {
		if row.SessionDuration != nil {
			total += *row.SessionDuration
		} else if row.Open() {
			total += timeutil.DurationMinutes(row.CheckIn, now)
		}
	}
	return total, nil
}

// GetAttendanceInRange returns attendance rows between two days inclusive,
// for one user or for everyone when userID is empty.
func GetAttendanceInRange(userID string, from, to time.Time) ([]models.Attendance, error) {
	query := DB.Where("work_date >= ? AND work_date <= ?", timeutil.WorkDate(from), timeutil.WorkDate(to))
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var rows []models.Attendance
	err := query.Preload("User").
		Order("check_in ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
