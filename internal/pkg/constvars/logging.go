package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingProviderIDKey         = "provider_id"
	LoggingAssignmentIDKey       = "assignment_id"
	LoggingCalendarIDKey         = "calendar_id"
	LoggingPlanIDKey             = "plan_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingDateKey               = "date"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
)
