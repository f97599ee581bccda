package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"smileworks-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine() *Engine {
	return NewEngine(zap.NewNop())
}

// newTestDataset builds a provider on a weekly rotation working a single
// 08:00-16:00 template Monday through Friday, effective 2026-01-05 (a
// Monday).
func newTestDataset() (*ScheduleDataset, *models.Provider) {
	provider := &models.Provider{
		ID:                "prov-1",
		Name:              "Dr. Elena Vasquez",
		PrimaryLocationID: "loc-main",
		HolidayCalendarID: "hcal-1",
		PtoCalendarID:     "pcal-1",
		ShiftPlanIDs:      []string{"plan-1"},
	}

	data := &ScheduleDataset{
		Providers: map[string]models.Provider{provider.ID: *provider},
		Plans: map[string]models.ShiftPlan{
			"plan-1": {
				ID:            "plan-1",
				Name:          "Weekly Rotation",
				CycleLength:   1,
				CycleUnit:     constvars.CycleUnitWeeks,
				EffectiveDate: "2026-01-05",
			},
		},
		Slots: map[string]models.ShiftPlanSlot{
			"slot-1": {ID: "slot-1", ShiftPlanID: "plan-1", CycleIndex: 1, TemplateID: "tpl-day"},
		},
		Templates: map[string]models.ShiftTemplate{
			"tpl-day": {
				ID:              "tpl-day",
				Name:            "Day Shift",
				WeekDays:        []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
				StartTime:       "08:00",
				DurationMinutes: 480,
			},
		},
		Assignments: []models.ProviderAssignment{
			{ID: "asg-1", ProviderID: "prov-1", ShiftPlanSlotID: "slot-1", EffectiveDate: "2026-01-05"},
		},
		HolidayDates: []models.HolidayDate{},
		PtoEntries:   []models.PtoEntry{},
		Bookings:     []models.Appointment{},
		Overrides:    map[string]models.ShiftOccurrence{},
	}
	return data, provider
}

func clockMinutes(t *testing.T, clock string) int {
	t.Helper()
	minutes, err := utils.ClockToMinutes(clock)
	require.NoError(t, err)
	return minutes
}

func slotTimes(result *SlotResult) []string {
	times := make([]string, 0, len(result.Slots))
	for _, slot := range result.Slots {
		times = append(times, slot.Time)
	}
	return times
}
