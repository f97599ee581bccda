package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOccurrences(t *testing.T) {
	data, _ := newTestDataset()

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2026-01-05", "2026-01-06", "2026-01-10"})
	require.NoError(t, err)

	// Monday and Tuesday generate; Saturday is outside the weekday set.
	require.Len(t, occurrences, 2)
	first := occurrences[0]
	assert.Equal(t, "2026-01-05", first.Date)
	assert.Equal(t, "asg-1", first.AssignmentID)
	assert.Equal(t, "prov-1", first.ProviderID)
	assert.Equal(t, "08:00", first.StartTime)
	assert.Equal(t, "16:00", first.EndTime)
	assert.Equal(t, "loc-main", first.LocationID)
	assert.Nil(t, first.Override)
}

func TestGenerateOccurrencesRespectsAssignmentWindow(t *testing.T) {
	data, _ := newTestDataset()
	data.Assignments[0].EffectiveDate = "2026-02-01"
	data.Assignments[0].EndDate = "2026-02-28"

	marchDates := []string{"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06"}
	occurrences, err := newTestEngine().GenerateOccurrences(data, marchDates)
	require.NoError(t, err)
	assert.Empty(t, occurrences)
}

func TestGenerateOccurrencesSkipsDatesBeforePlanEpoch(t *testing.T) {
	data, _ := newTestDataset()
	// Assignment opens before the plan's epoch; the generator must not wrap.
	data.Assignments[0].EffectiveDate = "2025-12-01"

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2025-12-29", "2026-01-05"})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, "2026-01-05", occurrences[0].Date)
}

func TestGenerateOccurrencesSkipsOffRotationWeeks(t *testing.T) {
	data, _ := newTestDataset()
	plan := data.Plans["plan-1"]
	plan.CycleLength = 2
	data.Plans["plan-1"] = plan

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2026-01-05", "2026-01-12", "2026-01-19"})
	require.NoError(t, err)
	require.Len(t, occurrences, 2)
	assert.Equal(t, "2026-01-05", occurrences[0].Date)
	assert.Equal(t, "2026-01-19", occurrences[1].Date)
}

func TestGenerateOccurrencesAttachesOverrides(t *testing.T) {
	data, _ := newTestDataset()
	data.Overrides[OverrideKey("asg-1", "2026-01-05")] = models.ShiftOccurrence{
		ID: "occ-1", AssignmentID: "asg-1", Date: "2026-01-05",
		Status: constvars.OccurrenceStatusCancelled, Note: "storm closure",
	}

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2026-01-05", "2026-01-06"})
	require.NoError(t, err)
	require.Len(t, occurrences, 2)

	require.NotNil(t, occurrences[0].Override)
	assert.Equal(t, constvars.OccurrenceStatusCancelled, occurrences[0].Override.Status)
	assert.Nil(t, occurrences[1].Override)
}

func TestGenerateOccurrencesSkipsDanglingReferences(t *testing.T) {
	data, _ := newTestDataset()
	data.Assignments = append(data.Assignments,
		models.ProviderAssignment{ID: "asg-no-slot", ProviderID: "prov-1", ShiftPlanSlotID: "slot-gone", EffectiveDate: "2026-01-05"},
	)
	data.Slots["slot-no-template"] = models.ShiftPlanSlot{
		ID: "slot-no-template", ShiftPlanID: "plan-1", CycleIndex: 1, TemplateID: "tpl-gone",
	}
	data.Assignments = append(data.Assignments,
		models.ProviderAssignment{ID: "asg-no-template", ProviderID: "prov-1", ShiftPlanSlotID: "slot-no-template", EffectiveDate: "2026-01-05"},
	)

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2026-01-05"})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, "asg-1", occurrences[0].AssignmentID)
}

func TestGenerateOccurrencesDaySegmentSpan(t *testing.T) {
	data, _ := newTestDataset()
	template := data.Templates["tpl-day"]
	template.DaySegments = []models.DaySegment{
		{Day: "Mon", Seg1Start: "07:30", Seg1End: "12:00", Seg2Start: "13:00", Seg2End: "17:30"},
	}
	data.Templates["tpl-day"] = template

	occurrences, err := newTestEngine().GenerateOccurrences(data, []string{"2026-01-05"})
	require.NoError(t, err)
	require.Len(t, occurrences, 1)
	assert.Equal(t, "07:30", occurrences[0].StartTime)
	assert.Equal(t, "17:30", occurrences[0].EndTime)
}
