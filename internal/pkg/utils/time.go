package utils

import (
	"fmt"
	"regexp"
	"smileworks-service/internal/pkg/constvars"
	"strconv"
	"time"
)

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?$`)

// ParseDate parses a YYYY-MM-DD date string at local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.ParseInLocation(constvars.DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	return t.Format(constvars.DateLayout)
}

// ClockToMinutes converts an HH:MM clock string to minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parsed, err := time.Parse(constvars.ClockLayout, clock)
	if err != nil {
		return 0, err
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// MinutesToClock converts minutes since midnight to an HH:MM clock string.
func MinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseISODurationMinutes converts an ISO-8601 duration such as PT8H or
// PT4H30M to integer minutes. Only hour and minute designators are supported;
// shift durations never carry seconds.
func ParseISODurationMinutes(iso string) (int, error) {
	match := isoDurationPattern.FindStringSubmatch(iso)
	if match == nil || (match[1] == "" && match[2] == "") {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", iso)
	}
	hours := 0
	minutes := 0
	if match[1] != "" {
		hours, _ = strconv.Atoi(match[1])
	}
	if match[2] != "" {
		minutes, _ = strconv.Atoi(match[2])
	}
	return hours*60 + minutes, nil
}

// MinutesBetweenClocks returns endTime minus startTime in minutes.
func MinutesBetweenClocks(startTime, endTime string) (int, error) {
	start, err := ClockToMinutes(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ClockToMinutes(endTime)
	if err != nil {
		return 0, err
	}
	if end < start {
		return 0, fmt.Errorf("end time %s precedes start time %s", endTime, startTime)
	}
	return end - start, nil
}

// DaysBetween returns the whole number of calendar days from fromDate to
// toDate, negative when toDate precedes fromDate. Both dates anchor at UTC
// midnight so the difference is always an exact multiple of 24 hours.
func DaysBetween(fromDate, toDate string) (int, error) {
	from, err := time.ParseInLocation(constvars.DateLayout, fromDate, time.UTC)
	if err != nil {
		return 0, err
	}
	to, err := time.ParseInLocation(constvars.DateLayout, toDate, time.UTC)
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from) / (24 * time.Hour)), nil
}

// WeekdayLabel returns the three-letter weekday label ("Mon", "Tue", ...)
// used by shift template weekday sets.
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

// DatesInRange returns every YYYY-MM-DD date from fromDate through toDate
// inclusive.
func DatesInRange(fromDate, toDate string) ([]string, error) {
	from, err := time.ParseInLocation(constvars.DateLayout, fromDate, time.UTC)
	if err != nil {
		return nil, err
	}
	to, err := time.ParseInLocation(constvars.DateLayout, toDate, time.UTC)
	if err != nil {
		return nil, err
	}
	dates := []string{}
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		dates = append(dates, cursor.Format(constvars.DateLayout))
	}
	return dates, nil
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
