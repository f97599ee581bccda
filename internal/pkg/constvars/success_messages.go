package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// CRUD messages
	LocationListSuccess       = "locations retrieved successfully"
	LocationUpsertSuccess     = "location saved successfully"
	LocationDeleteSuccess     = "location deleted successfully"
	ProviderListSuccess       = "providers retrieved successfully"
	ProviderGetSuccess        = "provider retrieved successfully"
	ProviderUpsertSuccess     = "provider saved successfully"
	ProviderDeleteSuccess     = "provider deleted successfully"
	ProviderPhotoSuccess      = "provider photo uploaded successfully"
	HolidayListSuccess        = "holiday dates retrieved successfully"
	HolidayUpsertSuccess      = "holiday date saved successfully"
	HolidayDeleteSuccess      = "holiday date deleted successfully"
	PtoListSuccess            = "pto entries retrieved successfully"
	PtoUpsertSuccess          = "pto entry saved successfully"
	PtoDeleteSuccess          = "pto entry deleted successfully"
	ShiftTemplateListSuccess  = "shift templates retrieved successfully"
	ShiftTemplateSaveSuccess  = "shift template saved successfully"
	ShiftTemplateDelSuccess   = "shift template deleted successfully"
	ShiftPlanListSuccess      = "shift plans retrieved successfully"
	ShiftPlanSaveSuccess      = "shift plan saved successfully"
	ShiftPlanDeleteSuccess    = "shift plan deleted successfully"
	ShiftPlanSlotListSuccess  = "shift plan slots retrieved successfully"
	ShiftPlanSlotSaveSuccess  = "shift plan slot saved successfully"
	ShiftPlanSlotDelSuccess   = "shift plan slot deleted successfully"
	AssignmentListSuccess     = "provider assignments retrieved successfully"
	AssignmentSaveSuccess     = "provider assignment saved successfully"
	AssignmentDeleteSuccess   = "provider assignment deleted successfully"
	AppointmentListSuccess    = "appointments retrieved successfully"
	AppointmentCreateSuccess  = "appointment booked successfully"
	AppointmentUpsertSuccess  = "appointment saved successfully"
	AppointmentDeleteSuccess  = "appointment deleted successfully"

	// Scheduling messages
	AvailableSlotsSuccess    = "available slots computed successfully"
	MonthAvailabilitySuccess = "month availability computed successfully"
	OccurrenceListSuccess    = "shift occurrences generated successfully"
	OccurrenceCancelSuccess  = "shift occurrence cancelled"
	OccurrenceRestoreSuccess = "shift occurrence restored"
	OccurrenceSwapSuccess    = "shift occurrence swapped"
	OccurrenceMoveSuccess    = "shift occurrence reassigned"
)
