package scheduling

import (
	"context"
	"fmt"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/dto/requests"
	"smileworks-service/internal/pkg/dto/responses"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (uc *schedulingUsecase) CancelOccurrence(ctx context.Context, request *requests.CancelOccurrence) (*responses.ScheduleOccurrence, error) {
	occ, data, err := uc.requireGeneratedOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	override, err := uc.upsertOverride(ctx, request.AssignmentID, request.Date, constvars.OccurrenceStatusCancelled, "", request.Note)
	if err != nil {
		return nil, err
	}

	occ.Override = override
	response := uc.toOccurrenceResponse(data, occ)
	return &response, nil
}

func (uc *schedulingUsecase) RestoreOccurrence(ctx context.Context, request *requests.RestoreOccurrence) (*responses.ScheduleOccurrence, error) {
	occ, data, err := uc.requireGeneratedOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}

	unlock, err := uc.lockOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	existing, err := uc.occurrences.FindByAssignmentIDAndDate(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Status = constvars.OccurrenceStatusScheduled
		existing.SubstituteProviderID = ""
		if err := uc.occurrences.Upsert(ctx, existing); err != nil {
			return nil, err
		}
	}
	// When nothing overrides this occurrence the generated default already
	// stands; the response reflects it either way.
	occ.Override = existing
	response := uc.toOccurrenceResponse(data, occ)
	return &response, nil
}

func (uc *schedulingUsecase) SwapOccurrence(ctx context.Context, request *requests.SwapOccurrence) (*responses.ScheduleOccurrence, error) {
	occ, data, err := uc.requireGeneratedOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}

	substitute, err := uc.providers.FindByID(ctx, request.SubstituteProviderID)
	if err != nil {
		return nil, err
	}
	if substitute == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.SubstituteProviderID)
	}

	unlock, err := uc.lockOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	defer unlock()

	override, err := uc.upsertOverride(ctx, request.AssignmentID, request.Date, constvars.OccurrenceStatusSwapped, request.SubstituteProviderID, request.Note)
	if err != nil {
		return nil, err
	}

	data.Providers[substitute.ID] = *substitute
	occ.Override = override
	response := uc.toOccurrenceResponse(data, occ)
	return &response, nil
}

// ReassignOccurrence moves an occurrence to another date, another provider,
// or both, as two coordinated override writes: cancel the source, then mark
// the target. The target write lands on the target provider's own assignment
// when one with the same template is active on the target date, otherwise on
// the source assignment with a substitute field. Conflicts reject before
// anything is written.
func (uc *schedulingUsecase) ReassignOccurrence(ctx context.Context, request *requests.ReassignOccurrence) (*responses.ScheduleOccurrence, error) {
	sourceOcc, sourceData, err := uc.requireGeneratedOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	if request.TargetProviderID == sourceOcc.ProviderID && request.TargetDate == request.Date {
		response := uc.toOccurrenceResponse(sourceData, sourceOcc)
		return &response, nil
	}

	targetProvider, err := uc.providers.FindByID(ctx, request.TargetProviderID)
	if err != nil {
		return nil, err
	}
	if targetProvider == nil {
		return nil, exceptions.ErrProviderNotFound(nil, request.TargetProviderID)
	}

	holiday, err := uc.holidayDates.FindByCalendarIDAndDate(ctx, targetProvider.HolidayCalendarID, request.TargetDate)
	if err != nil {
		return nil, err
	}
	if holiday != nil {
		return nil, exceptions.ErrReassignTargetHoliday(targetProvider.ID, request.TargetDate, holiday.Name)
	}

	targetData, err := uc.loadProviderDataset(ctx, targetProvider, request.TargetDate, request.TargetDate)
	if err != nil {
		return nil, err
	}
	targetOccs, err := uc.engine.GenerateOccurrences(targetData, []string{request.TargetDate})
	if err != nil {
		return nil, err
	}
	for i := range targetOccs {
		occ := &targetOccs[i]
		if occ.AssignmentID == request.AssignmentID && occ.Date == request.Date {
			continue
		}
		if occ.Override == nil || occ.Override.Status != constvars.OccurrenceStatusCancelled {
			return nil, exceptions.ErrReassignTargetOccupied(targetProvider.ID, request.TargetDate)
		}
	}

	targetAssignment := uc.matchingTargetAssignment(targetData, targetProvider.ID, sourceOcc.TemplateID, request.TargetDate)

	unlockSource, err := uc.lockOccurrence(ctx, request.AssignmentID, request.Date)
	if err != nil {
		return nil, err
	}
	defer unlockSource()

	targetAssignmentID := request.AssignmentID
	if targetAssignment != nil {
		targetAssignmentID = targetAssignment.ID
	}
	unlockTarget, err := uc.lockOccurrence(ctx, targetAssignmentID, request.TargetDate)
	if err != nil {
		return nil, err
	}
	defer unlockTarget()

	var targetOverride *models.ShiftOccurrence
	if targetAssignment != nil {
		targetOverride, err = uc.upsertOverride(ctx, targetAssignment.ID, request.TargetDate, constvars.OccurrenceStatusScheduled, "", request.Note)
	} else {
		targetOverride, err = uc.upsertOverride(ctx, request.AssignmentID, request.TargetDate, constvars.OccurrenceStatusSwapped, request.TargetProviderID, request.Note)
	}
	if err != nil {
		return nil, err
	}

	if _, err = uc.upsertOverride(ctx, request.AssignmentID, request.Date, constvars.OccurrenceStatusCancelled, "", request.Note); err != nil {
		return nil, err
	}

	response := responses.ScheduleOccurrence{
		AssignmentID:         targetOverride.AssignmentID,
		ProviderID:           request.TargetProviderID,
		ProviderName:         targetProvider.Name,
		LocationID:           sourceOcc.LocationID,
		TemplateID:           sourceOcc.TemplateID,
		TemplateName:         sourceOcc.TemplateName,
		Date:                 request.TargetDate,
		StartTime:            sourceOcc.StartTime,
		EndTime:              sourceOcc.EndTime,
		Status:               targetOverride.Status,
		SubstituteProviderID: targetOverride.SubstituteProviderID,
		Note:                 targetOverride.Note,
		Color:                sourceOcc.Color,
	}
	return &response, nil
}

// requireGeneratedOccurrence verifies the generator actually produces an
// occurrence for the assignment on the date. Override actions on dates the
// rotation never reaches are rejected as not-found.
func (uc *schedulingUsecase) requireGeneratedOccurrence(ctx context.Context, assignmentID, date string) (*GeneratedOccurrence, *ScheduleDataset, error) {
	assignment, err := uc.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		return nil, nil, err
	}
	if assignment == nil {
		return nil, nil, exceptions.ErrOccurrenceNotFound(assignmentID, date)
	}

	provider, err := uc.providers.FindByID(ctx, assignment.ProviderID)
	if err != nil {
		return nil, nil, err
	}
	if provider == nil {
		return nil, nil, exceptions.ErrProviderNotFound(nil, assignment.ProviderID)
	}

	data, err := uc.loadProviderDataset(ctx, provider, date, date)
	if err != nil {
		return nil, nil, err
	}
	occurrences, err := uc.engine.GenerateOccurrences(data, []string{date})
	if err != nil {
		return nil, nil, err
	}
	for i := range occurrences {
		if occurrences[i].AssignmentID == assignmentID {
			return &occurrences[i], data, nil
		}
	}
	return nil, nil, exceptions.ErrOccurrenceNotFound(assignmentID, date)
}

// matchingTargetAssignment finds the target provider's own assignment for
// the same template, active on the target date.
func (uc *schedulingUsecase) matchingTargetAssignment(data *ScheduleDataset, providerID, templateID, date string) *models.ProviderAssignment {
	for i := range data.Assignments {
		assignment := &data.Assignments[i]
		if assignment.ProviderID != providerID || !assignment.ActiveOn(date) {
			continue
		}
		slot, ok := data.Slots[assignment.ShiftPlanSlotID]
		if !ok || slot.TemplateID != templateID {
			continue
		}
		return assignment
	}
	return nil
}

func (uc *schedulingUsecase) lockOccurrence(ctx context.Context, assignmentID, date string) (func(), error) {
	lockKey := fmt.Sprintf(constvars.RedisKeyOccurrenceLockFormat, assignmentID, date)
	acquired, lockValue, err := uc.locker.TryLock(ctx, lockKey, occurrenceLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrOccurrenceLockContended(assignmentID, date)
	}
	return func() {
		if unlockErr := uc.locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("schedulingUsecase failed to release occurrence lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}, nil
}

func (uc *schedulingUsecase) upsertOverride(ctx context.Context, assignmentID, date, status, substituteProviderID, note string) (*models.ShiftOccurrence, error) {
	existing, err := uc.occurrences.FindByAssignmentIDAndDate(ctx, assignmentID, date)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing = &models.ShiftOccurrence{
			ID:           utils.GenerateEntityID("occ"),
			AssignmentID: assignmentID,
			Date:         date,
		}
	}
	existing.Status = status
	existing.SubstituteProviderID = substituteProviderID
	if note != "" {
		existing.Note = note
	}

	if err := uc.occurrences.Upsert(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
