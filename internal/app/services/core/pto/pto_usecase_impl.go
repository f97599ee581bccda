package pto

import (
	"context"
	"smileworks-service/internal/app/contracts"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ptoUsecase struct {
	PtoCalendarRepository contracts.PtoCalendarRepository
	PtoEntryRepository    contracts.PtoEntryRepository
	Log                   *zap.Logger
}

func NewPtoUsecase(
	ptoCalendarRepository contracts.PtoCalendarRepository,
	ptoEntryRepository contracts.PtoEntryRepository,
	logger *zap.Logger,
) contracts.PtoUsecase {
	return &ptoUsecase{
		PtoCalendarRepository: ptoCalendarRepository,
		PtoEntryRepository:    ptoEntryRepository,
		Log:                   logger,
	}
}

func (uc *ptoUsecase) FindPtoEntries(ctx context.Context, calendarID string) ([]models.PtoEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ptoUsecase.FindPtoEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalendarIDKey, calendarID),
	)
	return uc.PtoEntryRepository.FindByCalendarID(ctx, calendarID)
}

func (uc *ptoUsecase) UpsertPtoEntry(ctx context.Context, request *requests.UpsertPtoEntry) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("ptoUsecase.UpsertPtoEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCalendarIDKey, request.CalendarID),
	)

	if request.EndDate < request.StartDate {
		return nil, exceptions.ErrInvalidDateRange(request.StartDate, request.EndDate)
	}
	if (request.StartTime == "") != (request.EndTime == "") {
		return nil, exceptions.ErrPtoTimesIncomplete()
	}

	calendar, err := uc.PtoCalendarRepository.FindByID(ctx, request.CalendarID)
	if err != nil {
		return nil, err
	}
	if calendar == nil {
		calendar = &models.PtoCalendar{ID: request.CalendarID, Name: request.CalendarID}
		if err := uc.PtoCalendarRepository.Upsert(ctx, calendar); err != nil {
			return nil, err
		}
	}

	entry := &models.PtoEntry{
		ID:         request.ID,
		CalendarID: request.CalendarID,
		StartDate:  request.StartDate,
		EndDate:    request.EndDate,
		StartTime:  request.StartTime,
		EndTime:    request.EndTime,
		Reason:     request.Reason,
	}
	if entry.ID == "" {
		entry.ID = utils.GenerateEntityID("pto")
	}

	if err := uc.PtoEntryRepository.Upsert(ctx, entry); err != nil {
		uc.Log.Error("ptoUsecase.UpsertPtoEntry error persisting pto entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: entry.ID}, nil
}

func (uc *ptoUsecase) DeletePtoEntry(ctx context.Context, ptoEntryID string) error {
	return uc.PtoEntryRepository.Delete(ctx, ptoEntryID)
}
