package scheduling

import (
	"smileworks-service/internal/app/models"
	"smileworks-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCycleIndex(t *testing.T) {
	twoWeekPlan := &models.ShiftPlan{
		ID:            "plan-biweekly",
		CycleLength:   2,
		CycleUnit:     constvars.CycleUnitWeeks,
		EffectiveDate: "2026-01-05", // a Monday
	}

	testCases := []struct {
		name     string
		plan     *models.ShiftPlan
		date     string
		expected int
	}{
		{name: "epoch date resolves to index 1", plan: twoWeekPlan, date: "2026-01-05", expected: 1},
		{name: "second week resolves to index 2", plan: twoWeekPlan, date: "2026-01-12", expected: 2},
		{name: "full wraparound after cycle length", plan: twoWeekPlan, date: "2026-01-19", expected: 1},
		{name: "mid-week date stays in its week", plan: twoWeekPlan, date: "2026-01-15", expected: 2},
		{name: "date before epoch wraps via non-negative modulo", plan: twoWeekPlan, date: "2025-12-29", expected: 2},
		{
			name:     "monthly plan always resolves to index 1",
			plan:     &models.ShiftPlan{CycleLength: 1, CycleUnit: constvars.CycleUnitMonths, EffectiveDate: "2026-01-01"},
			date:     "2026-03-14",
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			index, err := ResolveCycleIndex(tc.plan, tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, index)
		})
	}
}

func TestResolveActiveCycleIndex(t *testing.T) {
	plan := &models.ShiftPlan{
		CycleLength:   2,
		CycleUnit:     constvars.CycleUnitWeeks,
		EffectiveDate: "2026-01-05",
	}

	t.Run("active date matches the wrapped resolver", func(t *testing.T) {
		index, active, err := ResolveActiveCycleIndex(plan, "2026-01-12")
		require.NoError(t, err)
		assert.True(t, active)
		assert.Equal(t, 2, index)
	})

	t.Run("date before effective date reports inactive", func(t *testing.T) {
		_, active, err := ResolveActiveCycleIndex(plan, "2026-01-04")
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("malformed date surfaces an error", func(t *testing.T) {
		_, _, err := ResolveActiveCycleIndex(plan, "not-a-date")
		assert.Error(t, err)
	})
}
