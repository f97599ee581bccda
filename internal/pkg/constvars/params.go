package constvars

const (
	URLParamLocationID      = "location_id"
	URLParamProviderID      = "provider_id"
	URLParamHolidayDateID   = "holiday_date_id"
	URLParamPtoEntryID      = "pto_entry_id"
	URLParamShiftTemplateID = "shift_template_id"
	URLParamShiftPlanID     = "shift_plan_id"
	URLParamShiftPlanSlotID = "shift_plan_slot_id"
	URLParamAssignmentID    = "assignment_id"
	URLParamAppointmentID   = "appointment_id"
)

const (
	URLQueryParamPage       = "page"
	URLQueryParamPageSize   = "page_size"
	URLQueryParamProviderID = "providerId"
	URLQueryParamLocationID = "locationId"
	URLQueryParamCalendarID = "calendarId"
	URLQueryParamPlanID     = "planId"
	URLQueryParamDate       = "date"
	URLQueryParamFrom       = "from"
	URLQueryParamTo         = "to"
	URLQueryParamYear       = "year"
	URLQueryParamMonth      = "month"
	URLQueryParamDuration   = "durationMinutes"
)
