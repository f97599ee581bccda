package models

// DaySegment overrides a template's single window for one weekday with one or
// two sub-windows, e.g. a morning and afternoon block split by a lunch break.
type DaySegment struct {
	Day       string `bson:"day" json:"day"`
	Seg1Start string `bson:"seg1_start" json:"seg1Start"`
	Seg1End   string `bson:"seg1_end" json:"seg1End"`
	Seg2Start string `bson:"seg2_start,omitempty" json:"seg2Start,omitempty"`
	Seg2End   string `bson:"seg2_end,omitempty" json:"seg2End,omitempty"`
}

// ShiftTemplate is a reusable shift shape independent of any provider or plan.
// DurationMinutes is the canonical duration; ISO-8601 strings and end times
// are converted at the request boundary.
type ShiftTemplate struct {
	ID              string       `bson:"_id" json:"id"`
	Name            string       `bson:"name" json:"name"`
	LocationID      string       `bson:"location_id,omitempty" json:"locationId,omitempty"`
	WeekDays        []string     `bson:"week_days" json:"weekDays"`
	StartTime       string       `bson:"start_time" json:"startTime"`
	DurationMinutes int          `bson:"duration_minutes" json:"durationMinutes"`
	DaySegments     []DaySegment `bson:"day_segments,omitempty" json:"daySegments,omitempty"`
	Months          []int        `bson:"months,omitempty" json:"months,omitempty"`
	DaysOfMonth     []int        `bson:"days_of_month,omitempty" json:"daysOfMonth,omitempty"`
	DefaultRole     string       `bson:"default_role,omitempty" json:"defaultRole,omitempty"`
	Color           string       `bson:"color,omitempty" json:"color,omitempty"`
}

// SegmentsFor returns the day-segment override for the given weekday label,
// or nil when the template's single start/duration window applies.
func (t ShiftTemplate) SegmentsFor(weekday string) *DaySegment {
	for i := range t.DaySegments {
		if t.DaySegments[i].Day == weekday {
			return &t.DaySegments[i]
		}
	}
	return nil
}

type ShiftPlan struct {
	ID            string `bson:"_id" json:"id"`
	Name          string `bson:"name" json:"name"`
	CycleLength   int    `bson:"cycle_length" json:"cycleLength"`
	CycleUnit     string `bson:"cycle_unit" json:"cycleUnit"`
	EffectiveDate string `bson:"effective_date" json:"effectiveDate"`
}

type ShiftPlanSlot struct {
	ID          string `bson:"_id" json:"id"`
	ShiftPlanID string `bson:"shift_plan_id" json:"shiftPlanId"`
	CycleIndex  int    `bson:"cycle_index" json:"cycleIndex"`
	TemplateID  string `bson:"template_id" json:"templateId"`
}

type ProviderAssignment struct {
	ID              string `bson:"_id" json:"id"`
	ProviderID      string `bson:"provider_id" json:"providerId"`
	ShiftPlanSlotID string `bson:"shift_plan_slot_id" json:"shiftPlanSlotId"`
	EffectiveDate   string `bson:"effective_date" json:"effectiveDate"`
	EndDate         string `bson:"end_date,omitempty" json:"endDate,omitempty"`
}

// ActiveOn reports whether the assignment covers the given date. An empty
// EndDate means the assignment is open-ended.
func (a ProviderAssignment) ActiveOn(date string) bool {
	if date < a.EffectiveDate {
		return false
	}
	return a.EndDate == "" || date <= a.EndDate
}

// ShiftOccurrence is an admin override for one generated occurrence, keyed by
// (AssignmentID, Date). Absence of a row means the generated occurrence
// stands unmodified.
type ShiftOccurrence struct {
	ID                   string `bson:"_id" json:"id"`
	AssignmentID         string `bson:"assignment_id" json:"assignmentId"`
	Date                 string `bson:"date" json:"date"`
	Status               string `bson:"status" json:"status"`
	SubstituteProviderID string `bson:"substitute_provider_id,omitempty" json:"substituteProviderId,omitempty"`
	Note                 string `bson:"note,omitempty" json:"note,omitempty"`
}
