package shifttemplates

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

type shiftTemplateUsecase struct {
	ShiftTemplateRepository contracts.ShiftTemplateRepository
	Log                     *zap.Logger
}

func NewShiftTemplateUsecase(
	shiftTemplateRepository contracts.ShiftTemplateRepository,
	logger *zap.Logger,
) contracts.ShiftTemplateUsecase {
	return &shiftTemplateUsecase{
		ShiftTemplateRepository: shiftTemplateRepository,
		Log:                     logger,
	}
}

func (uc *shiftTemplateUsecase) FindAllShiftTemplates(ctx context.Context) ([]models.ShiftTemplate, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTemplateUsecase.FindAllShiftTemplates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ShiftTemplateRepository.FindAll(ctx)
}

func (uc *shiftTemplateUsecase) FindShiftTemplateByID(ctx context.Context, templateID string) (*models.ShiftTemplate, error) {
	template, err := uc.ShiftTemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrShiftTemplateNotFound(nil, templateID)
	}
	return template, nil
}

func (uc *shiftTemplateUsecase) UpsertShiftTemplate(ctx context.Context, request *requests.UpsertShiftTemplate) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftTemplateUsecase.UpsertShiftTemplate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	durationMinutes, err := resolveDurationMinutes(request)
	if err != nil {
		return nil, err
	}

	template := &models.ShiftTemplate{
		ID:              request.ID,
		Name:            request.Name,
		LocationID:      request.LocationID,
		WeekDays:        request.WeekDays,
		StartTime:       request.StartTime,
		DurationMinutes: durationMinutes,
		Months:          request.Months,
		DaysOfMonth:     request.DaysOfMonth,
		DefaultRole:     request.DefaultRole,
		Color:           request.Color,
	}
	for _, seg := range request.DaySegments {
		template.DaySegments = append(template.DaySegments, models.DaySegment{
			Day:       seg.Day,
			Seg1Start: seg.Seg1Start,
			Seg1End:   seg.Seg1End,
			Seg2Start: seg.Seg2Start,
			Seg2End:   seg.Seg2End,
		})
	}
	if template.ID == "" {
		template.ID = utils.GenerateEntityID("tpl")
	}

	if err := uc.ShiftTemplateRepository.Upsert(ctx, template); err != nil {
		uc.Log.Error("shiftTemplateUsecase.UpsertShiftTemplate error persisting template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: template.ID}, nil
}

func (uc *shiftTemplateUsecase) DeleteShiftTemplate(ctx context.Context, templateID string) error {
	return uc.ShiftTemplateRepository.Delete(ctx, templateID)
}

// resolveDurationMinutes converts the request's ISO-8601 duration string or
// end time to canonical minutes. Duration wins when both are present.
func resolveDurationMinutes(request *requests.UpsertShiftTemplate) (int, error) {
	if request.Duration != "" {
		minutes, err := utils.ParseISODurationMinutes(request.Duration)
		if err != nil {
			return 0, exceptions.ErrCannotParseDuration(err)
		}
		return minutes, nil
	}
	if request.EndTime != "" {
		minutes, err := utils.MinutesBetweenClocks(request.StartTime, request.EndTime)
		if err != nil {
			return 0, exceptions.ErrCannotParseClock(err)
		}
		if minutes <= 0 {
			return 0, exceptions.ErrInvalidSlotDuration(minutes)
		}
		return minutes, nil
	}
	return 0, exceptions.ErrDurationRequired()
}
