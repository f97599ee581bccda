package requests

type UpsertLocation struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Timezone string `json:"timezone" validate:"required"`
}

type UpsertProvider struct {
	ID                string   `json:"id"`
	Name              string   `json:"name" validate:"required"`
	Role              string   `json:"role" validate:"required"`
	Bio               string   `json:"bio"`
	PrimaryLocationID string   `json:"primaryLocationId" validate:"required"`
	PtoCalendarID     string   `json:"ptoCalendarId" validate:"required"`
	HolidayCalendarID string   `json:"holidayCalendarId" validate:"required"`
	ShiftPlanIDs      []string `json:"shiftPlanIds"`
}

type UpsertHolidayDate struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendarId" validate:"required"`
	Date       string `json:"date" validate:"required,date"`
	Name       string `json:"name" validate:"required"`
}

type UpsertPtoEntry struct {
	ID         string `json:"id"`
	CalendarID string `json:"calendarId" validate:"required"`
	StartDate  string `json:"startDate" validate:"required,date"`
	EndDate    string `json:"endDate" validate:"required,date"`
	StartTime  string `json:"startTime" validate:"omitempty,clock"`
	EndTime    string `json:"endTime" validate:"omitempty,clock"`
	Reason     string `json:"reason"`
}
