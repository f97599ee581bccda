package constvars

type ContextKey string

const (
	ResourceLocations      = "locations"
	ResourceProviders      = "providers"
	ResourceHolidays       = "holidays"
	ResourcePto            = "pto"
	ResourceShiftTemplates = "shift-templates"
	ResourceShiftPlans     = "shift-plans"
	ResourceAssignments    = "assignments"
	ResourceAppointments   = "appointments"
	ResourceAvailability   = "availability"
	ResourceSchedule       = "schedule"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	REQUEST_ID_PREFIX = "SMLW_SVC_"
)
