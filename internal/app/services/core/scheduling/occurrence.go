package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// GenerateOccurrences expands every active assignment into concrete per-date
// shift occurrences across the supplied dates, attaching any stored override
// by (assignmentID, date). Dates before a plan's effective date are skipped
// entirely rather than wrapped into the rotation.
func (e *Engine) GenerateOccurrences(data *ScheduleDataset, dates []string) ([]GeneratedOccurrence, error) {
	results := []GeneratedOccurrence{}

	for _, date := range dates {
		parsedDate, err := utils.ParseDate(date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		weekday := utils.WeekdayLabel(parsedDate)

		for i := range data.Assignments {
			assignment := &data.Assignments[i]
			if !assignment.ActiveOn(date) {
				continue
			}

			slot, ok := data.Slots[assignment.ShiftPlanSlotID]
			if !ok {
				e.Log.Warn("scheduling: assignment references missing shift plan slot",
					zap.String(constvars.LoggingAssignmentIDKey, assignment.ID),
					zap.String("shift_plan_slot_id", assignment.ShiftPlanSlotID),
				)
				continue
			}
			plan, ok := data.Plans[slot.ShiftPlanID]
			if !ok {
				e.Log.Warn("scheduling: slot references missing shift plan",
					zap.String("shift_plan_slot_id", slot.ID),
					zap.String("shift_plan_id", slot.ShiftPlanID),
				)
				continue
			}

			cycleIndex, active, err := ResolveActiveCycleIndex(&plan, date)
			if err != nil {
				return nil, exceptions.ErrCannotParseDate(err)
			}
			if !active || cycleIndex != slot.CycleIndex {
				continue
			}

			template, ok := data.Templates[slot.TemplateID]
			if !ok {
				e.Log.Warn("scheduling: slot references missing shift template",
					zap.String("shift_plan_slot_id", slot.ID),
					zap.String("template_id", slot.TemplateID),
				)
				continue
			}
			if !templateMatchesDate(&template, weekday, parsedDate) {
				continue
			}

			startTime, endTime, err := occurrenceSpan(&template, weekday)
			if err != nil {
				return nil, err
			}

			locationID := template.LocationID
			if locationID == "" {
				if provider, found := data.Providers[assignment.ProviderID]; found {
					locationID = provider.PrimaryLocationID
				}
			}

			occurrence := GeneratedOccurrence{
				Date:         date,
				ProviderID:   assignment.ProviderID,
				AssignmentID: assignment.ID,
				SlotID:       slot.ID,
				TemplateID:   template.ID,
				TemplateName: template.Name,
				Color:        template.Color,
				StartTime:    startTime,
				EndTime:      endTime,
				LocationID:   locationID,
			}
			if override, found := data.Overrides[OverrideKey(assignment.ID, date)]; found {
				stored := override
				occurrence.Override = &stored
			}
			results = append(results, occurrence)
		}
	}

	return results, nil
}

// occurrenceSpan returns the overall start and end clock of the shift on the
// given weekday: segment boundaries when a day-segment override exists,
// otherwise the template's single start/duration window.
func occurrenceSpan(template *models.ShiftTemplate, weekday string) (string, string, error) {
	if seg := template.SegmentsFor(weekday); seg != nil {
		end := seg.Seg1End
		if seg.Seg2End != "" {
			end = seg.Seg2End
		}
		return seg.Seg1Start, end, nil
	}

	start, err := utils.ClockToMinutes(template.StartTime)
	if err != nil {
		return "", "", exceptions.ErrCannotParseClock(err)
	}
	return template.StartTime, utils.MinutesToClock(start + template.DurationMinutes), nil
}
