package exceptions

import (
	"fmt"
	"smileworks-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDate, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseClock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseClock)
	}
	ErrCannotParseDuration = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDuration)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrNotAuthorized = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevInvalidInput)
	}

	// Scheduling engine errors
	ErrInvalidSlotDuration = func(durationMinutes int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidSlotDuration, fmt.Sprintf("%s: got %d", constvars.ErrDevInvalidSlotDuration, durationMinutes))
	}
	ErrProviderNotFound = func(err error, providerID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientProviderNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevProviderNotFound, providerID))
	}
	ErrLocationNotFound = func(err error, locationID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientLocationNotFound, fmt.Sprintf("location not found: %s", locationID))
	}
	ErrAppointmentNotFound = func(err error, appointmentID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, fmt.Sprintf("appointment not found: %s", appointmentID))
	}
	ErrSlotNotAvailable = func(date, startTime string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientSlotNotAvailable, fmt.Sprintf("no open slot at %s %s", date, startTime))
	}
	ErrOccurrenceNotFound = func(assignmentID, date string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientOccurrenceNotFound, fmt.Sprintf("no generated occurrence for assignment %s on %s", assignmentID, date))
	}
	ErrSubstituteRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSubstituteRequired, constvars.ErrDevInvalidInput)
	}
	ErrReassignTargetHoliday = func(providerID, date, holidayName string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReassignTargetHoliday, fmt.Sprintf("%s: provider %s, date %s (%s)", constvars.ErrDevReassignTargetHoliday, providerID, date, holidayName))
	}
	ErrReassignTargetOccupied = func(providerID, date string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientReassignTargetOccupied, fmt.Sprintf("%s: provider %s, date %s", constvars.ErrDevReassignTargetOccupied, providerID, date))
	}
	ErrOccurrenceLockContended = func(assignmentID, date string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientOccurrenceLocked, fmt.Sprintf("%s: assignment %s, date %s", constvars.ErrDevOccurrenceLockContended, assignmentID, date))
	}
	ErrInvalidDateRange = func(startDate, endDate string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientInvalidDateRange, fmt.Sprintf("%s: %s > %s", constvars.ErrDevInvalidDateRange, startDate, endDate))
	}
	ErrPtoTimesIncomplete = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientPtoTimesIncomplete, constvars.ErrDevPtoTimesIncomplete)
	}
	ErrShiftTemplateNotFound = func(err error, templateID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientShiftTemplateNotFound, fmt.Sprintf("shift template not found: %s", templateID))
	}
	ErrShiftPlanNotFound = func(err error, planID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientShiftPlanNotFound, fmt.Sprintf("shift plan not found: %s", planID))
	}
	ErrCycleIndexOutOfRange = func(cycleIndex, cycleLength int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCycleIndexOutOfRange, fmt.Sprintf("cycle index %d out of range 1..%d", cycleIndex, cycleLength))
	}
	ErrDurationRequired = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientDurationRequired, constvars.ErrDevCannotParseDuration)
	}

	// MongoDB errors
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBIterateDocuments)
	}

	// Redis errors
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ errors
	ErrRabbitMQPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublish)
	}

	// Minio errors
	ErrMinioUpload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMinioUpload)
	}
)
