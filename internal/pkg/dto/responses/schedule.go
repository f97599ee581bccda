package responses

// UpsertResult carries the ID of a created or updated record.
type UpsertResult struct {
	ID string `json:"id"`
}

// ProviderPhoto carries the stored object URL after an upload.
type ProviderPhoto struct {
	PhotoURL string `json:"photoUrl"`
}

// AvailableSlot is one bookable window, clocks in HH:MM.
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// DayAvailability summarizes one calendar day for the month view.
type DayAvailability struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	HolidayName string `json:"holidayName,omitempty"`
	SlotCount   int    `json:"slotCount,omitempty"`
}

// ScheduleOccurrence is one expanded shift occurrence with any admin
// override already applied.
type ScheduleOccurrence struct {
	AssignmentID         string `json:"assignmentId"`
	ProviderID           string `json:"providerId"`
	ProviderName         string `json:"providerName,omitempty"`
	LocationID           string `json:"locationId"`
	TemplateID           string `json:"templateId"`
	TemplateName         string `json:"templateName,omitempty"`
	Date                 string `json:"date"`
	StartTime            string `json:"startTime"`
	EndTime              string `json:"endTime"`
	Status               string `json:"status"`
	SubstituteProviderID string `json:"substituteProviderId,omitempty"`
	Note                 string `json:"note,omitempty"`
	Color                string `json:"color,omitempty"`
}
