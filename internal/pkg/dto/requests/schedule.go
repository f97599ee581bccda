package requests

type CancelOccurrence struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	Date         string `json:"date" validate:"required,date"`
	Note         string `json:"note"`
}

type RestoreOccurrence struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	Date         string `json:"date" validate:"required,date"`
}

type SwapOccurrence struct {
	AssignmentID         string `json:"assignmentId" validate:"required"`
	Date                 string `json:"date" validate:"required,date"`
	SubstituteProviderID string `json:"substituteProviderId" validate:"required"`
	Note                 string `json:"note"`
}

// ReassignOccurrence moves an occurrence to another date, another provider,
// or both. TargetProviderID may equal the source provider for a plain date
// move.
type ReassignOccurrence struct {
	AssignmentID     string `json:"assignmentId" validate:"required"`
	Date             string `json:"date" validate:"required,date"`
	TargetProviderID string `json:"targetProviderId" validate:"required"`
	TargetDate       string `json:"targetDate" validate:"required,date"`
	Note             string `json:"note"`
}

// AvailabilityQuery asks for bookable slots for one provider on one date.
// DurationMinutes falls back to the configured default when zero.
type AvailabilityQuery struct {
	ProviderID      string `json:"providerId" validate:"required"`
	Date            string `json:"date" validate:"required,date"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,gt=0"`
	LocationID      string `json:"locationId"`
}

type MonthAvailabilityQuery struct {
	ProviderID      string `json:"providerId" validate:"required"`
	Year            int    `json:"year" validate:"required,gte=2000,lte=2200"`
	Month           int    `json:"month" validate:"required,gte=1,lte=12"`
	DurationMinutes int    `json:"durationMinutes" validate:"omitempty,gt=0"`
	LocationID      string `json:"locationId"`
}

// OccurrenceQuery expands assignments into concrete shift occurrences over a
// date range, optionally narrowed to one provider or one location.
type OccurrenceQuery struct {
	From       string `json:"from" validate:"required,date"`
	To         string `json:"to" validate:"required,date"`
	ProviderID string `json:"providerId"`
	LocationID string `json:"locationId"`
}
