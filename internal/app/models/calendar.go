package models

type HolidayCalendar struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type HolidayDate struct {
	ID         string `bson:"_id" json:"id"`
	CalendarID string `bson:"calendar_id" json:"calendarId"`
	Date       string `bson:"date" json:"date"`
	Name       string `bson:"name" json:"name"`
}

type PtoCalendar struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// PtoEntry blocks a date range, optionally narrowed to a clock window.
// An entry with no StartTime/EndTime blocks every date in range in full.
type PtoEntry struct {
	ID         string `bson:"_id" json:"id"`
	CalendarID string `bson:"calendar_id" json:"calendarId"`
	StartDate  string `bson:"start_date" json:"startDate"`
	EndDate    string `bson:"end_date" json:"endDate"`
	StartTime  string `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime    string `bson:"end_time,omitempty" json:"endTime,omitempty"`
	Reason     string `bson:"reason,omitempty" json:"reason,omitempty"`
}

// CoversDate reports whether the entry's date range includes the given
// YYYY-MM-DD date. Zero-padded date strings compare correctly as strings.
func (p PtoEntry) CoversDate(date string) bool {
	return date >= p.StartDate && date <= p.EndDate
}

// IsFullDayOn reports whether the entry blocks the whole of the given date:
// either the entry has no time component at all, or the date lies strictly
// between the first and last day of a multi-day entry.
func (p PtoEntry) IsFullDayOn(date string) bool {
	if !p.CoversDate(date) {
		return false
	}
	if p.StartTime == "" && p.EndTime == "" {
		return true
	}
	return p.StartDate < date && date < p.EndDate
}
