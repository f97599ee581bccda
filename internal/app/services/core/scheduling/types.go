package scheduling

import (
	"fmt"
	"smileworks-service/internal/app/models"
)

// Window is a half-open [Start, End) interval in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// ScheduleDataset holds every record the engine needs for one computation,
// pre-loaded by the usecase layer. The engine performs no I/O of its own.
type ScheduleDataset struct {
	Providers    map[string]models.Provider
	Plans        map[string]models.ShiftPlan
	Slots        map[string]models.ShiftPlanSlot
	Templates    map[string]models.ShiftTemplate
	Assignments  []models.ProviderAssignment
	HolidayDates []models.HolidayDate
	PtoEntries   []models.PtoEntry
	Bookings     []models.Appointment
	Overrides    map[string]models.ShiftOccurrence
}

// OverrideKey builds the lookup key for a stored occurrence override.
func OverrideKey(assignmentID, date string) string {
	return fmt.Sprintf("%s|%s", assignmentID, date)
}

// AvailableSlot is one bookable start time with the shift context it came
// from.
type AvailableSlot struct {
	Time         string
	LocationID   string
	TemplateID   string
	TemplateName string
}

// SlotResult is the full availability answer for one provider and date.
// Exactly one of the blocked flags is set when the day yields no slots for a
// structural reason; a day whose slots were all consumed by bookings has all
// flags false and an empty slot list.
type SlotResult struct {
	Slots            []AvailableSlot
	BlockedByHoliday bool
	HolidayName      string
	BlockedByPto     bool
	PtoNote          string
	NoShift          bool
}

// DaySummary is one calendar day reduced to a single category for the month
// view.
type DaySummary struct {
	Status      string
	HolidayName string
	SlotCount   int
}

// GeneratedOccurrence binds an assignment to a concrete date, decorated with
// any stored override. A nil Override means the occurrence stands as
// generated, with effective status "scheduled".
type GeneratedOccurrence struct {
	Date         string
	ProviderID   string
	AssignmentID string
	SlotID       string
	TemplateID   string
	TemplateName string
	Color        string
	StartTime    string
	EndTime      string
	LocationID   string
	Override     *models.ShiftOccurrence
}
