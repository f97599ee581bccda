package holidays

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type holidayUsecase struct {
	HolidayCalendarRepository contracts.HolidayCalendarRepository
	HolidayDateRepository     contracts.HolidayDateRepository
	Log                       *zap.Logger
}

func NewHolidayUsecase(
	holidayCalendarRepository contracts.HolidayCalendarRepository,
	holidayDateRepository contracts.HolidayDateRepository,
	logger *zap.Logger,
) contracts.HolidayUsecase {
	return &holidayUsecase{
		HolidayCalendarRepository: holidayCalendarRepository,
		HolidayDateRepository:     holidayDateRepository,
		Log:                       logger,
	}
}

func (uc *holidayUsecase) FindHolidayDates(ctx context.Context, calendarID string) ([]models.HolidayDate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("holidayUsecase.FindHolidayDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalendarIDKey, calendarID),
	)
	return uc.HolidayDateRepository.FindByCalendarID(ctx, calendarID)
}

func (uc *holidayUsecase) UpsertHolidayDate(ctx context.Context, request *requests.UpsertHolidayDate) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("holidayUsecase.UpsertHolidayDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalendarIDKey, request.CalendarID),
	)

	// Create the calendar lazily the first time a date references it, so a
	// fresh provider calendar does not need a separate setup call.
	calendar, err := uc.HolidayCalendarRepository.FindByID(ctx, request.CalendarID)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		calendar = &models.HolidayCalendar{ID: request.CalendarID, Name: request.CalendarID}
		if err := uc.HolidayCalendarRepository.Upsert(ctx, calendar); err != nil {
			return nil, err
		}
	}

	holidayDate := &models.HolidayDate{
		ID:         request.ID,
		CalendarID: request.CalendarID,
		Date:       request.Date,
		Name:       request.Name,
	}
	if holidayDate.ID == "" {
		holidayDate.ID = utils.GenerateEntityID("hol")
	}

	if err := uc.HolidayDateRepository.Upsert(ctx, holidayDate); err != nil {
		uc.Log.Error("holidayUsecase.UpsertHolidayDate error persisting holiday date",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: holidayDate.ID}, nil
}

func (uc *holidayUsecase) DeleteHolidayDate(ctx context.Context, holidayDateID string) error {
	return uc.HolidayDateRepository.Delete(ctx, holidayDateID)
}
