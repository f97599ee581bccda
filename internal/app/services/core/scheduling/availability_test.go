package scheduling

import (
	"smileworks-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlotsHolidayPrecedence(t *testing.T) {
	data, provider := newTestDataset()
	data.HolidayDates = append(data.HolidayDates, models.HolidayDate{
		ID: "hd-1", CalendarID: "hcal-1", Date: "2026-01-05", Name: "Founders Day",
	})
	// Holiday wins even over a full-day PTO entry on the same date.
	data.PtoEntries = append(data.PtoEntries, models.PtoEntry{
		ID: "pto-1", CalendarID: "pcal-1", StartDate: "2026-01-05", EndDate: "2026-01-05",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.True(t, result.BlockedByHoliday)
	assert.Equal(t, "Founders Day", result.HolidayName)
	assert.False(t, result.BlockedByPto)
	assert.Empty(t, result.Slots)
}

func TestAvailableSlotsFullDayPtoPrecedence(t *testing.T) {
	data, provider := newTestDataset()
	data.PtoEntries = append(data.PtoEntries, models.PtoEntry{
		ID: "pto-1", CalendarID: "pcal-1", StartDate: "2026-01-05", EndDate: "2026-01-05",
		Reason: "Conference",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.True(t, result.BlockedByPto)
	assert.Equal(t, "Conference", result.PtoNote)
	assert.Empty(t, result.Slots)
	assert.False(t, result.NoShift)
}

func TestAvailableSlotsInteriorDayOfMultiDayPtoBlocksFully(t *testing.T) {
	data, provider := newTestDataset()
	data.PtoEntries = append(data.PtoEntries, models.PtoEntry{
		ID: "pto-1", CalendarID: "pcal-1",
		StartDate: "2026-01-05", EndDate: "2026-01-09",
		StartTime: "12:00", EndTime: "12:00",
	})

	// Wednesday sits strictly inside the range, so the times are irrelevant.
	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-07", 60, "")
	require.NoError(t, err)
	assert.True(t, result.BlockedByPto)
	assert.Empty(t, result.Slots)
}

func TestAvailableSlotsPartialPtoCarveOut(t *testing.T) {
	data, provider := newTestDataset()
	data.PtoEntries = append(data.PtoEntries, models.PtoEntry{
		ID: "pto-1", CalendarID: "pcal-1",
		StartDate: "2026-01-05", EndDate: "2026-01-05",
		StartTime: "12:00", EndTime: "13:00",
		Reason: "Dentist",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.True(t, result.BlockedByPto)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00", "13:00", "14:00", "15:00"}, slotTimes(result))
}

func TestAvailableSlotsMultiDayPtoEdgeDays(t *testing.T) {
	data, provider := newTestDataset()
	data.PtoEntries = append(data.PtoEntries, models.PtoEntry{
		ID: "pto-1", CalendarID: "pcal-1",
		StartDate: "2026-01-05", EndDate: "2026-01-06",
		StartTime: "12:00", EndTime: "10:00",
	})

	engine := newTestEngine()

	// First day blocked from 12:00 to midnight.
	firstDay, err := engine.AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, slotTimes(firstDay))

	// Last day blocked from midnight to 10:00.
	lastDay, err := engine.AvailableSlots(data, provider, "2026-01-06", 60, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00"}, slotTimes(lastDay))
}

func TestAvailableSlotsBookingRemoval(t *testing.T) {
	data, provider := newTestDataset()
	data.Bookings = append(data.Bookings, models.Appointment{
		ID: "appt-1", ProviderID: "prov-1", Date: "2026-01-05", StartTime: "09:00",
		DurationMinutes: 30, Status: "confirmed",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	// A booking removes its start time regardless of its own duration.
	assert.NotContains(t, slotTimes(result), "09:00")
	assert.Contains(t, slotTimes(result), "08:00")
	assert.Contains(t, slotTimes(result), "10:00")
}

func TestAvailableSlotsCancelledBookingDoesNotBlock(t *testing.T) {
	data, provider := newTestDataset()
	data.Bookings = append(data.Bookings, models.Appointment{
		ID: "appt-1", ProviderID: "prov-1", Date: "2026-01-05", StartTime: "09:00",
		Status: "cancelled",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.Contains(t, slotTimes(result), "09:00")
}

func TestAvailableSlotsNoShiftDays(t *testing.T) {
	data, provider := newTestDataset()

	t.Run("weekend excluded by weekday set", func(t *testing.T) {
		result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-10", 60, "")
		require.NoError(t, err)
		assert.True(t, result.NoShift)
		assert.Empty(t, result.Slots)
	})

	t.Run("date before assignment effective date", func(t *testing.T) {
		result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-02", 60, "")
		require.NoError(t, err)
		assert.True(t, result.NoShift)
	})
}

func TestAvailableSlotsRotationOffWeek(t *testing.T) {
	data, provider := newTestDataset()
	plan := data.Plans["plan-1"]
	plan.CycleLength = 2
	data.Plans["plan-1"] = plan

	engine := newTestEngine()

	onWeek, err := engine.AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.NotEmpty(t, onWeek.Slots)

	offWeek, err := engine.AvailableSlots(data, provider, "2026-01-12", 60, "")
	require.NoError(t, err)
	assert.True(t, offWeek.NoShift)
}

func TestAvailableSlotsDaySegments(t *testing.T) {
	data, provider := newTestDataset()
	template := data.Templates["tpl-day"]
	template.DaySegments = []models.DaySegment{
		{Day: "Mon", Seg1Start: "08:00", Seg1End: "12:00", Seg2Start: "13:00", Seg2End: "17:00"},
	}
	data.Templates["tpl-day"] = template

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 120, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "10:00", "13:00", "15:00"}, slotTimes(result))
}

func TestAvailableSlotsMonthAndDayOfMonthConstraints(t *testing.T) {
	data, provider := newTestDataset()
	template := data.Templates["tpl-day"]
	template.Months = []int{1}
	template.DaysOfMonth = []int{5, 6}
	data.Templates["tpl-day"] = template

	engine := newTestEngine()

	matching, err := engine.AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.NotEmpty(t, matching.Slots)

	wrongDayOfMonth, err := engine.AvailableSlots(data, provider, "2026-01-12", 60, "")
	require.NoError(t, err)
	assert.True(t, wrongDayOfMonth.NoShift)

	wrongMonth, err := engine.AvailableSlots(data, provider, "2026-02-05", 60, "")
	require.NoError(t, err)
	assert.True(t, wrongMonth.NoShift)
}

func TestAvailableSlotsLocationHandling(t *testing.T) {
	data, provider := newTestDataset()

	t.Run("empty template location inherits primary location", func(t *testing.T) {
		result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
		require.NoError(t, err)
		require.NotEmpty(t, result.Slots)
		assert.Equal(t, "loc-main", result.Slots[0].LocationID)
	})

	t.Run("location filter passes templates without a location", func(t *testing.T) {
		result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "loc-north")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Slots)
	})

	t.Run("location filter excludes mismatched templates", func(t *testing.T) {
		template := data.Templates["tpl-day"]
		template.LocationID = "loc-main"
		data.Templates["tpl-day"] = template

		result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "loc-north")
		require.NoError(t, err)
		assert.True(t, result.NoShift)
	})
}

func TestAvailableSlotsDeduplicatesAcrossSlots(t *testing.T) {
	data, provider := newTestDataset()
	// A second slot in the same rotation position with the identical template
	// shape generates the same start times at the same location.
	data.Slots["slot-2"] = models.ShiftPlanSlot{
		ID: "slot-2", ShiftPlanID: "plan-1", CycleIndex: 1, TemplateID: "tpl-day",
	}
	data.Assignments = append(data.Assignments, models.ProviderAssignment{
		ID: "asg-2", ProviderID: "prov-1", ShiftPlanSlotID: "slot-2", EffectiveDate: "2026-01-05",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	times := slotTimes(result)
	seen := map[string]bool{}
	for _, clock := range times {
		assert.False(t, seen[clock], "duplicate slot %s", clock)
		seen[clock] = true
	}
}

func TestAvailableSlotsInvalidInput(t *testing.T) {
	data, provider := newTestDataset()
	engine := newTestEngine()

	t.Run("non-positive duration fails fast", func(t *testing.T) {
		_, err := engine.AvailableSlots(data, provider, "2026-01-05", 0, "")
		assert.Error(t, err)
	})

	t.Run("malformed date fails fast", func(t *testing.T) {
		_, err := engine.AvailableSlots(data, provider, "05/01/2026", 60, "")
		assert.Error(t, err)
	})
}

func TestAvailableSlotsSkipsDanglingReferences(t *testing.T) {
	data, provider := newTestDataset()
	data.Assignments = append(data.Assignments, models.ProviderAssignment{
		ID: "asg-dangling", ProviderID: "prov-1", ShiftPlanSlotID: "slot-gone", EffectiveDate: "2026-01-05",
	})

	result, err := newTestEngine().AvailableSlots(data, provider, "2026-01-05", 60, "")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Slots)
}
