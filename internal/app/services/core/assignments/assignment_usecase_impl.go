package assignments

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

type assignmentUsecase struct {
	ProviderAssignmentRepository contracts.ProviderAssignmentRepository
	ProviderRepository           contracts.ProviderRepository
	ShiftPlanSlotRepository      contracts.ShiftPlanSlotRepository
	Log                          *zap.Logger
}

func NewAssignmentUsecase(
	providerAssignmentRepository contracts.ProviderAssignmentRepository,
	providerRepository contracts.ProviderRepository,
	shiftPlanSlotRepository contracts.ShiftPlanSlotRepository,
	logger *zap.Logger,
) contracts.AssignmentUsecase {
	return &assignmentUsecase{
		ProviderAssignmentRepository: providerAssignmentRepository,
		ProviderRepository:           providerRepository,
		ShiftPlanSlotRepository:      shiftPlanSlotRepository,
		Log:                          logger,
	}
}

func (uc *assignmentUsecase) FindAssignments(ctx context.Context, providerID string) ([]models.ProviderAssignment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.FindAssignments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, providerID),
	)
	if providerID == "" {
		return uc.ProviderAssignmentRepository.FindAll(ctx)
	}
	return uc.ProviderAssignmentRepository.FindByProviderID(ctx, providerID)
}

func (uc *assignmentUsecase) UpsertAssignment(ctx context.Context, request *requests.UpsertProviderAssignment) (*responses.UpsertResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.UpsertAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProviderIDKey, request.ProviderID),
	)

	if request.EndDate != "" && request.EndDate < request.EffectiveDate {
		return nil, exceptions.ErrInvalidDateRange(request.EffectiveDate, request.EndDate)
	}

	provider, err := uc.ProviderRepository.FindByID(ctx, request.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.ProviderID)
	}

	slot, err := uc.ShiftPlanSlotRepository.FindByID(ctx, request.ShiftPlanSlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrShiftPlanNotFound(nil, request.ShiftPlanSlotID)
	}

	assignment := &models.ProviderAssignment{
		ID:              request.ID,
		ProviderID:      request.ProviderID,
		ShiftPlanSlotID: request.ShiftPlanSlotID,
		EffectiveDate:   request.EffectiveDate,
		EndDate:         request.EndDate,
	}
	if assignment.ID == "" {
		assignment.ID = utils.GenerateEntityID("asg")
	}

	if err := uc.ProviderAssignmentRepository.Upsert(ctx, assignment); err != nil {
		uc.Log.Error("assignmentUsecase.UpsertAssignment error persisting assignment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return &responses.UpsertResult{ID: assignment.ID}, nil
}

func (uc *assignmentUsecase) DeleteAssignment(ctx context.Context, assignmentID string) error {
	return uc.ProviderAssignmentRepository.Delete(ctx, assignmentID)
}
