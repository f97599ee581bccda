package requests

// UpsertShiftTemplate accepts either an ISO-8601 duration (PT8H) or an
// explicit end time; the usecase converts whichever is present to canonical
// minutes.
type UpsertShiftTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name" validate:"required"`
	LocationID  string           `json:"locationId"`
	WeekDays    []string         `json:"weekDays" validate:"required,min=1,dive,weekday"`
	StartTime   string           `json:"startTime" validate:"required,clock"`
	Duration    string           `json:"duration"`
	EndTime     string           `json:"endTime" validate:"omitempty,clock"`
	DaySegments []TemplateDaySeg `json:"daySegments" validate:"omitempty,dive"`
	Months      []int            `json:"months" validate:"omitempty,dive,gte=1,lte=12"`
	DaysOfMonth []int            `json:"daysOfMonth" validate:"omitempty,dive,gte=1,lte=31"`
	DefaultRole string           `json:"defaultRole"`
	Color       string           `json:"color"`
}

type TemplateDaySeg struct {
	Day       string `json:"day" validate:"required,weekday"`
	Seg1Start string `json:"seg1Start" validate:"required,clock"`
	Seg1End   string `json:"seg1End" validate:"required,clock"`
	Seg2Start string `json:"seg2Start" validate:"omitempty,clock"`
	Seg2End   string `json:"seg2End" validate:"omitempty,clock"`
}

type UpsertShiftPlan struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	CycleLength   int    `json:"cycleLength" validate:"required,gte=1"`
	CycleUnit     string `json:"cycleUnit" validate:"required,cycle_unit"`
	EffectiveDate string `json:"effectiveDate" validate:"required,date"`
}

type UpsertShiftPlanSlot struct {
	ID          string `json:"id"`
	ShiftPlanID string `json:"shiftPlanId" validate:"required"`
	CycleIndex  int    `json:"cycleIndex" validate:"required,gte=1"`
	TemplateID  string `json:"templateId" validate:"required"`
}

type UpsertProviderAssignment struct {
	ID              string `json:"id"`
	ProviderID      string `json:"providerId" validate:"required"`
	ShiftPlanSlotID string `json:"shiftPlanSlotId" validate:"required"`
	EffectiveDate   string `json:"effectiveDate" validate:"required,date"`
	EndDate         string `json:"endDate" validate:"omitempty,date"`
}
