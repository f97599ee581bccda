package scheduling

import (
	"fmt"
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/exceptions"
	"smileworks-service/internal/pkg/utils"
	"sort"
	"time"

	"go.uber.org/zap"
)

type templateWindows struct {
	template   *models.ShiftTemplate
	windows    []Window
	locationID string
}

// AvailableSlots computes the bookable start times for one provider on one
// date. Precedence is strict: holiday blocks the whole day, then shift
// resolution decides whether the provider works at all, then full-day PTO
// preempts, then partial PTO windows are carved out, then slots already
// booked are removed.
func (e *Engine) AvailableSlots(data *ScheduleDataset, provider *models.Provider, date string, durationMinutes int, locationFilter string) (*SlotResult, error) {
	if durationMinutes <= 0 {
		return nil, exceptions.ErrInvalidSlotDuration(durationMinutes)
	}
	parsedDate, err := utils.ParseDate(date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	for _, holiday := range data.HolidayDates {
		if holiday.Date == date {
			return &SlotResult{
				Slots:            []AvailableSlot{},
				BlockedByHoliday: true,
				HolidayName:      holiday.Name,
			}, nil
		}
	}

	matched, err := e.resolveTemplateWindows(data, provider, date, parsedDate, locationFilter)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return &SlotResult{Slots: []AvailableSlot{}, NoShift: true}, nil
	}

	blockers, ptoNote, fullDay, err := e.ptoBlockers(data, date)
	if err != nil {
		return nil, err
	}
	if fullDay {
		return &SlotResult{
			Slots:        []AvailableSlot{},
			BlockedByPto: true,
			PtoNote:      ptoNote,
		}, nil
	}
	partialPto := len(blockers) > 0

	allSlots := []AvailableSlot{}
	for _, tw := range matched {
		remaining := SubtractWindows(tw.windows, blockers)
		for _, startTime := range ChopIntoSlots(remaining, durationMinutes) {
			allSlots = append(allSlots, AvailableSlot{
				Time:         startTime,
				LocationID:   tw.locationID,
				TemplateID:   tw.template.ID,
				TemplateName: tw.template.Name,
			})
		}
	}

	// Bookings are keyed by start time alone; a booking removes its start
	// slot regardless of its own duration.
	booked := map[string]bool{}
	for _, booking := range data.Bookings {
		if booking.ProviderID == provider.ID && booking.Date == date && booking.Status != constvars.AppointmentStatusCancelled {
			booked[booking.StartTime] = true
		}
	}

	seen := map[string]bool{}
	finalSlots := []AvailableSlot{}
	for _, slot := range allSlots {
		if booked[slot.Time] {
			continue
		}
		key := fmt.Sprintf("%s|%s", slot.Time, slot.LocationID)
		if seen[key] {
			continue
		}
		seen[key] = true
		finalSlots = append(finalSlots, slot)
	}

	sort.Slice(finalSlots, func(i, j int) bool {
		return finalSlots[i].Time < finalSlots[j].Time
	})

	result := &SlotResult{Slots: finalSlots, BlockedByPto: partialPto}
	if partialPto {
		result.PtoNote = ptoNote
	}
	return result, nil
}

// resolveTemplateWindows walks the provider's active assignments, keeps the
// slots whose rotation position matches the date, and builds the raw minute
// windows for each surviving template. Dangling slot or template references
// are skipped and logged for cleanup.
func (e *Engine) resolveTemplateWindows(data *ScheduleDataset, provider *models.Provider, date string, parsedDate time.Time, locationFilter string) ([]templateWindows, error) {
	weekday := utils.WeekdayLabel(parsedDate)
	matched := []templateWindows{}

	for i := range data.Assignments {
		assignment := &data.Assignments[i]
		if assignment.ProviderID != provider.ID || !assignment.ActiveOn(date) {
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

		cycleIndex, err := ResolveCycleIndex(&plan, date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		if cycleIndex != slot.CycleIndex {
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
		if locationFilter != "" && template.LocationID != "" && template.LocationID != locationFilter {
			continue
		}

		windows, err := templateWindowsForWeekday(&template, weekday)
		if err != nil {
			return nil, err
		}
		locationID := template.LocationID
		if locationID == "" {
			locationID = provider.PrimaryLocationID
		}

		tmpl := template
		matched = append(matched, templateWindows{
			template:   &tmpl,
			windows:    windows,
			locationID: locationID,
		})
	}

	return matched, nil
}

// templateWindowsForWeekday builds one or two raw minute windows: the
// weekday's segment override when present, otherwise the template's single
// start/duration pair.
func templateWindowsForWeekday(template *models.ShiftTemplate, weekday string) ([]Window, error) {
	if seg := template.SegmentsFor(weekday); seg != nil {
		seg1Start, err := utils.ClockToMinutes(seg.Seg1Start)
		if err != nil {
			return nil, exceptions.ErrCannotParseClock(err)
		}
		seg1End, err := utils.ClockToMinutes(seg.Seg1End)
		if err != nil {
			return nil, exceptions.ErrCannotParseClock(err)
		}
		windows := []Window{{Start: seg1Start, End: seg1End}}

		if seg.Seg2Start != "" && seg.Seg2End != "" {
			seg2Start, err := utils.ClockToMinutes(seg.Seg2Start)
			if err != nil {
				return nil, exceptions.ErrCannotParseClock(err)
			}
			seg2End, err := utils.ClockToMinutes(seg.Seg2End)
			if err != nil {
				return nil, exceptions.ErrCannotParseClock(err)
			}
			windows = append(windows, Window{Start: seg2Start, End: seg2End})
		}
		return windows, nil
	}

	start, err := utils.ClockToMinutes(template.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseClock(err)
	}
	return []Window{{Start: start, End: start + template.DurationMinutes}}, nil
}

// ptoBlockers classifies the PTO entries covering the date. A full-day hit
// short-circuits the whole computation; partial hits accumulate as blocker
// windows.
func (e *Engine) ptoBlockers(data *ScheduleDataset, date string) ([]Window, string, bool, error) {
	blockers := []Window{}
	note := ""

	for _, entry := range data.PtoEntries {
		if !entry.CoversDate(date) {
			continue
		}
		if entry.IsFullDayOn(date) {
			return nil, entry.Reason, true, nil
		}

		startMin := 0
		if entry.StartTime != "" && entry.StartDate == date {
			parsed, err := utils.ClockToMinutes(entry.StartTime)
			if err != nil {
				return nil, "", false, exceptions.ErrCannotParseClock(err)
			}
			startMin = parsed
		}
		endMin := constvars.MinutesPerDay
		if entry.EndTime != "" && entry.EndDate == date {
			parsed, err := utils.ClockToMinutes(entry.EndTime)
			if err != nil {
				return nil, "", false, exceptions.ErrCannotParseClock(err)
			}
			endMin = parsed
		}

		blockers = append(blockers, Window{Start: startMin, End: endMin})
		note = entry.Reason
	}

	return blockers, note, false, nil
}
