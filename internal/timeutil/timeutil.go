package timeutil

import (
	"fmt"
	"time"
)

// FormatHHMMSS formats an elapsed duration as HH:MM:SS. Hours are not
// wrapped at 24, so a shift spanning midnight keeps counting up.
func FormatHHMMSS(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	ms := elapsed.Milliseconds()
	h := ms / 3_600_000
	m := (ms % 3_600_000) / 60_000
	s := (ms % 60_000) / 1000
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// DurationMinutes returns the whole minutes between checkIn and checkOut,
// always rounded down and never negative.
func DurationMinutes(checkIn, checkOut time.Time) int {
	ms := checkOut.Sub(checkIn).Milliseconds()
	if ms < 0 {
		return 0
	}
	return int(ms / 60_000)
}

// WorkDate returns the calendar-day key used for attendance rows.
func WorkDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// FormatMinutes renders whole minutes as "Xh Ym" or "Ym".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
