package contracts

import (
	"context"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
)

type ShiftTemplateRepository interface {
	FindAll(ctx context.Context) ([]models.ShiftTemplate, error)
	FindByID(ctx context.Context, templateID string) (*models.ShiftTemplate, error)
	FindByIDs(ctx context.Context, templateIDs []string) ([]models.ShiftTemplate, error)
	Upsert(ctx context.Context, template *models.ShiftTemplate) error
	Delete(ctx context.Context, templateID string) error
}

type ShiftPlanRepository interface {
	FindAll(ctx context.Context) ([]models.ShiftPlan, error)
	FindByID(ctx context.Context, planID string) (*models.ShiftPlan, error)
	FindByIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlan, error)
	Upsert(ctx context.Context, plan *models.ShiftPlan) error
	Delete(ctx context.Context, planID string) error
}

type ShiftPlanSlotRepository interface {
	FindByID(ctx context.Context, slotID string) (*models.ShiftPlanSlot, error)
	FindByIDs(ctx context.Context, slotIDs []string) ([]models.ShiftPlanSlot, error)
	FindByPlanID(ctx context.Context, planID string) ([]models.ShiftPlanSlot, error)
	FindByPlanIDs(ctx context.Context, planIDs []string) ([]models.ShiftPlanSlot, error)
	Upsert(ctx context.Context, slot *models.ShiftPlanSlot) error
	Delete(ctx context.Context, slotID string) error
}

type ProviderAssignmentRepository interface {
	FindAll(ctx context.Context) ([]models.ProviderAssignment, error)
	FindByID(ctx context.Context, assignmentID string) (*models.ProviderAssignment, error)
	FindByProviderID(ctx context.Context, providerID string) ([]models.ProviderAssignment, error)
	Upsert(ctx context.Context, assignment *models.ProviderAssignment) error
	Delete(ctx context.Context, assignmentID string) error
}

type ShiftOccurrenceRepository interface {
	// FindByAssignmentIDAndDate returns nil, nil when no override exists.
	FindByAssignmentIDAndDate(ctx context.Context, assignmentID, date string) (*models.ShiftOccurrence, error)
	FindByAssignmentIDs(ctx context.Context, assignmentIDs []string, fromDate, toDate string) ([]models.ShiftOccurrence, error)
	Upsert(ctx context.Context, occurrence *models.ShiftOccurrence) error
	Delete(ctx context.Context, occurrenceID string) error
}

type ShiftTemplateUsecase interface {
	FindAllShiftTemplates(ctx context.Context) ([]models.ShiftTemplate, error)
	FindShiftTemplateByID(ctx context.Context, templateID string) (*models.ShiftTemplate, error)
	UpsertShiftTemplate(ctx context.Context, request *requests.UpsertShiftTemplate) (*responses.UpsertResult, error)
	DeleteShiftTemplate(ctx context.Context, templateID string) error
}

type ShiftPlanUsecase interface {
	FindAllShiftPlans(ctx context.Context) ([]models.ShiftPlan, error)
	FindShiftPlanByID(ctx context.Context, planID string) (*models.ShiftPlan, error)
	UpsertShiftPlan(ctx context.Context, request *requests.UpsertShiftPlan) (*responses.UpsertResult, error)
	DeleteShiftPlan(ctx context.Context, planID string) error
	FindSlotsByPlanID(ctx context.Context, planID string) ([]models.ShiftPlanSlot, error)
	UpsertShiftPlanSlot(ctx context.Context, request *requests.UpsertShiftPlanSlot) (*responses.UpsertResult, error)
	DeleteShiftPlanSlot(ctx context.Context, slotID string) error
}

type AssignmentUsecase interface {
	// FindAssignments returns every assignment when providerID is empty.
	FindAssignments(ctx context.Context, providerID string) ([]models.ProviderAssignment, error)
	UpsertAssignment(ctx context.Context, request *requests.UpsertProviderAssignment) (*responses.UpsertResult, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
}
