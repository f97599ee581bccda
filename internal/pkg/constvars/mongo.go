package constvars

const (
	MongoCollectionLocations           = "locations"
	MongoCollectionProviders           = "providers"
	MongoCollectionHolidayCalendars    = "holiday_calendars"
	MongoCollectionHolidayDates        = "holiday_dates"
	MongoCollectionPtoCalendars        = "pto_calendars"
	MongoCollectionPtoEntries          = "pto_entries"
	MongoCollectionShiftTemplates      = "shift_templates"
	MongoCollectionShiftPlans          = "shift_plans"
	MongoCollectionShiftPlanSlots      = "shift_plan_slots"
	MongoCollectionProviderAssignments = "provider_assignments"
	MongoCollectionShiftOccurrences    = "shift_occurrences"
	MongoCollectionAppointments        = "appointments"
)
