package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/aldawsari/shopdesk/internal/timeutil"
)

// ParseRange parses the period filters used by list and report commands
// Supported formats:
// - named periods: "today", "yesterday", "week", "month"
// - X days (e.g., "7 days", "1 day") counting back from today
// - dd/mm/yyyy for a single day
// - dd/mm/yyyy..dd/mm/yyyy for an inclusive span
// The returned range covers whole days: from 00:00:00 to 23:59:59.
func ParseRange(input string, now time.Time) (time.Time, time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		input = "today"
	}

	switch input {
	case "today":
		return timeutil.StartOfDay(now), timeutil.EndOfDay(now), nil
	case "yesterday":
		y := now.AddDate(0, 0, -1)
		return timeutil.StartOfDay(y), timeutil.EndOfDay(y), nil
	case "week":
		return timeutil.StartOfDay(now.AddDate(0, 0, -6)), timeutil.EndOfDay(now), nil
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, timeutil.EndOfDay(now), nil
	}

	if from, to, err := parseDaysBack(input, now); err == nil {
		return from, to, nil
	}

	if strings.Contains(input, "..") {
		parts := strings.SplitN(input, "..", 2)
		from, err := parseDay(parts[0])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to, err := parseDay(parts[1])
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if to.Before(from) {
			return time.Time{}, time.Time{}, fmt.Errorf("range end is before range start")
		}
		return from, timeutil.EndOfDay(to), nil
	}

	if day, err := parseDay(input); err == nil {
		return day, timeutil.EndOfDay(day), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("invalid period %q. Use: today, yesterday, week, month, X days, dd/mm/yyyy or dd/mm/yyyy..dd/mm/yyyy", input)
}

var dayRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// parseDay parses dd/mm/yyyy into the start of that day
func parseDay(input string) (time.Time, error) {
	matches := dayRegex.FindStringSubmatch(strings.TrimSpace(input))
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check the date is real (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

var daysBackRegex = regexp.MustCompile(`^(\d+)\s+(day|days)$`)

// parseDaysBack parses "X days" as the last X calendar days including today
func parseDaysBack(input string, now time.Time) (time.Time, time.Time, error) {
	matches := daysBackRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid relative period")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount < 1 || amount > 365 {
		return time.Time{}, time.Time{}, fmt.Errorf("days must be between 1 and 365")
	}

	from := timeutil.StartOfDay(now.AddDate(0, 0, -(amount - 1)))
	return from, timeutil.EndOfDay(now), nil
}
