package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"email":      "must be a valid email",
	"alphanum":   "must contain only alphanumeric characters",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"numeric":    "must be a number",
	"oneof":      "must be one of [%s]",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"url":        "must be a valid URL",
	"uuid":       "must be a valid UUID",
	"date":       "must be a date in YYYY-MM-DD format",
	"clock":      "must be a time in HH:MM format",
	"cycle_unit": "must be either 'Weeks' or 'Months'",
	"weekday":    "must be a three-letter weekday label (Mon..Sun)",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientInvalidSlotDuration           = "slot duration must be a positive number of minutes"
	ErrClientInvalidDate                   = "date must be in YYYY-MM-DD format"
	ErrClientProviderNotFound              = "provider not found"
	ErrClientLocationNotFound              = "location not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientSlotNotAvailable              = "the requested time is not available"
	ErrClientOccurrenceNotFound            = "no shift occurrence matches the given assignment and date"
	ErrClientSubstituteRequired            = "a substitute provider is required"
	ErrClientReassignTargetHoliday         = "cannot move the shift: the target date is a holiday for the target provider"
	ErrClientReassignTargetOccupied        = "cannot move the shift: the target provider already has a shift on that date"
	ErrClientOccurrenceLocked              = "another change to this shift is in progress, please retry"
	ErrClientInvalidDateRange              = "end date must not be before start date"
	ErrClientShiftTemplateNotFound         = "shift template not found"
	ErrClientShiftPlanNotFound             = "shift plan not found"
	ErrClientDurationRequired              = "a duration or an end time is required"
	ErrClientCycleIndexOutOfRange          = "cycle index exceeds the plan's cycle length"
	ErrClientPtoTimesIncomplete            = "start time and end time must be provided together"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevCannotParseDate            = "cannot parse date"
	ErrDevCannotParseClock           = "cannot parse clock time"
	ErrDevCannotParseDuration        = "cannot parse ISO-8601 duration"
	ErrDevDocumentNotFound           = "document not found"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevURLParamIDValidationFailed = "invalid URL parameter: %s"
	ErrDevInvalidSlotDuration        = "slot duration must be a positive integer"
	ErrDevProviderNotFound           = "provider not found"
	ErrDevDanglingSlotReference      = "shift plan slot references a missing document"
	ErrDevReassignTargetHoliday      = "reassignment target date is a holiday for the target provider"
	ErrDevReassignTargetOccupied     = "reassignment target already has a non-cancelled occurrence"
	ErrDevOccurrenceLockContended    = "failed to acquire occurrence lock"
	ErrDevInvalidDateRange           = "end date precedes start date"
	ErrDevPtoTimesIncomplete         = "partial-day pto needs both start and end times"

	// MongoDB messages
	ErrDevMongoDBFindDocument     = "failed to find document(s) in mongodb"
	ErrDevMongoDBInsertDocument   = "failed to insert document into mongodb"
	ErrDevMongoDBUpdateDocument   = "failed to update document in mongodb"
	ErrDevMongoDBDeleteDocument   = "failed to delete document from mongodb"
	ErrDevMongoDBIterateDocuments = "failed to iterate mongodb cursor"

	// Redis messages
	ErrDevRedisSet       = "failed to set value in redis"
	ErrDevRedisGetNoData = "failed to get value from redis for key %s"
	ErrDevRedisDelete    = "failed to delete value from redis"
	ErrDevRedisSetNX     = "failed to set value with NX in redis"
	ErrDevRedisUnlock    = "failed to release redis lock"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to rabbitmq"

	// Minio messages
	ErrDevMinioUpload = "failed to upload object to minio"
)
