package shiftplans

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

type shiftPlanUsecase struct {
	ShiftPlanRepository     contracts.ShiftPlanRepository
	ShiftPlanSlotRepository contracts.ShiftPlanSlotRepository
	ShiftTemplateRepository contracts.ShiftTemplateRepository
	Log                     *zap.Logger
}

func NewShiftPlanUsecase(
	shiftPlanRepository contracts.ShiftPlanRepository,
	shiftPlanSlotRepository contracts.ShiftPlanSlotRepository,
	shiftTemplateRepository contracts.ShiftTemplateRepository,
	logger *zap.Logger,
) contracts.ShiftPlanUsecase {
	return &shiftPlanUsecase{
		ShiftPlanRepository:     shiftPlanRepository,
		ShiftPlanSlotRepository: shiftPlanSlotRepository,
		ShiftTemplateRepository: shiftTemplateRepository,
		Log:                     logger,
	}
}

func (uc *shiftPlanUsecase) FindAllShiftPlans(ctx context.Context) ([]models.ShiftPlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftPlanUsecase.FindAllShiftPlans called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.ShiftPlanRepository.FindAll(ctx)
}

func (uc *shiftPlanUsecase) FindShiftPlanByID(ctx context.Context, planID string) (*models.ShiftPlan, error) {
	plan, err := uc.ShiftPlanRepository.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrShiftPlanNotFound(nil, planID)
	}
	return plan, nil
}

func (uc *shiftPlanUsecase) UpsertShiftPlan(ctx context.Context, request *requests.UpsertShiftPlan) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftPlanUsecase.UpsertShiftPlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanIDKey, request.ID),
	)

	plan := &models.ShiftPlan{
		ID:            request.ID,
		Name:          request.Name,
		CycleLength:   request.CycleLength,
		CycleUnit:     request.CycleUnit,
		EffectiveDate: request.EffectiveDate,
	}
	if plan.ID == "" {
		plan.ID = utils.GenerateEntityID("plan")
	}

	if err := uc.ShiftPlanRepository.Upsert(ctx, plan); err != nil {
		uc.Log.Error("shiftPlanUsecase.UpsertShiftPlan error persisting plan",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: plan.ID}, nil
}

func (uc *shiftPlanUsecase) DeleteShiftPlan(ctx context.Context, planID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	// Remove the plan's slots first so no slot is left pointing at a
	// missing plan.
	slots, err := uc.ShiftPlanSlotRepository.FindByPlanID(ctx, planID)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		if err := uc.ShiftPlanSlotRepository.Delete(ctx, slot.ID); err != nil {
			uc.Log.Error("shiftPlanUsecase.DeleteShiftPlan error deleting slot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingPlanIDKey, planID),
				zap.Error(err),
			)
			return err
		}
	}
	return uc.ShiftPlanRepository.Delete(ctx, planID)
}

func (uc *shiftPlanUsecase) FindSlotsByPlanID(ctx context.Context, planID string) ([]models.ShiftPlanSlot, error) {
	return uc.ShiftPlanSlotRepository.FindByPlanID(ctx, planID)
}

func (uc *shiftPlanUsecase) UpsertShiftPlanSlot(ctx context.Context, request *requests.UpsertShiftPlanSlot) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("shiftPlanUsecase.UpsertShiftPlanSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanIDKey, request.ShiftPlanID),
	)

	plan, err := uc.ShiftPlanRepository.FindByID(ctx, request.ShiftPlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, exceptions.ErrShiftPlanNotFound(nil, request.ShiftPlanID)
	}
	if plan.CycleUnit == constvars.CycleUnitWeeks && request.CycleIndex > plan.CycleLength {
		return nil, exceptions.ErrCycleIndexOutOfRange(request.CycleIndex, plan.CycleLength)
	}

	template, err := uc.ShiftTemplateRepository.FindByID(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrShiftTemplateNotFound(nil, request.TemplateID)
	}

	slot := &models.ShiftPlanSlot{
		ID:          request.ID,
		ShiftPlanID: request.ShiftPlanID,
		CycleIndex:  request.CycleIndex,
		TemplateID:  request.TemplateID,
	}
	if slot.ID == "" {
		slot.ID = utils.GenerateEntityID("slot")
	}

	if err := uc.ShiftPlanSlotRepository.Upsert(ctx, slot); err != nil {
		uc.Log.Error("shiftPlanUsecase.UpsertShiftPlanSlot error persisting slot",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: slot.ID}, nil
}

func (uc *shiftPlanUsecase) DeleteShiftPlanSlot(ctx context.Context, slotID string) error {
	return uc.ShiftPlanSlotRepository.Delete(ctx, slotID)
}
