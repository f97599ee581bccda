package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtractWindows(t *testing.T) {
	testCases := []struct {
		name     string
		windows  []Window
		blockers []Window
		expected []Window
	}{
		{
			name:     "disjoint blocker leaves window intact",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 1020, End: 1080}},
			expected: []Window{{Start: 480, End: 960}},
		},
		{
			name:     "interior blocker splits window in two",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 720, End: 780}},
			expected: []Window{{Start: 480, End: 720}, {Start: 780, End: 960}},
		},
		{
			name:     "blocker truncating left edge keeps right remainder",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 400, End: 540}},
			expected: []Window{{Start: 540, End: 960}},
		},
		{
			name:     "blocker truncating right edge keeps left remainder",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 900, End: 1000}},
			expected: []Window{{Start: 480, End: 900}},
		},
		{
			name:     "covering blocker consumes window",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 0, End: 1440}},
			expected: []Window{},
		},
		{
			name:     "multiple blockers apply sequentially",
			windows:  []Window{{Start: 480, End: 960}},
			blockers: []Window{{Start: 540, End: 600}, {Start: 720, End: 780}},
			expected: []Window{{Start: 480, End: 540}, {Start: 600, End: 720}, {Start: 780, End: 960}},
		},
		{
			name:     "no blockers returns input unchanged",
			windows:  []Window{{Start: 0, End: 60}, {Start: 120, End: 180}},
			blockers: []Window{},
			expected: []Window{{Start: 0, End: 60}, {Start: 120, End: 180}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := SubtractWindows(tc.windows, tc.blockers)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestSubtractWindowsIdempotence(t *testing.T) {
	windows := []Window{{Start: 480, End: 960}, {Start: 1020, End: 1200}}
	blockers := []Window{{Start: 720, End: 780}, {Start: 1100, End: 1300}}

	once := SubtractWindows(windows, blockers)
	twice := SubtractWindows(once, blockers)
	assert.Equal(t, once, twice)
}

func TestChopIntoSlots(t *testing.T) {
	t.Run("emits starts at duration strides", func(t *testing.T) {
		slots := ChopIntoSlots([]Window{{Start: 480, End: 720}}, 60)
		assert.Equal(t, []string{"08:00", "09:00", "10:00", "11:00"}, slots)
	})

	t.Run("discards partial trailing slot", func(t *testing.T) {
		slots := ChopIntoSlots([]Window{{Start: 480, End: 570}}, 60)
		assert.Equal(t, []string{"08:00"}, slots)
	})

	t.Run("window shorter than duration yields nothing", func(t *testing.T) {
		slots := ChopIntoSlots([]Window{{Start: 480, End: 510}}, 60)
		assert.Empty(t, slots)
	})

	t.Run("every slot lies fully within its window", func(t *testing.T) {
		windows := []Window{{Start: 480, End: 695}, {Start: 780, End: 1000}}
		duration := 45
		slots := ChopIntoSlots(windows, duration)
		require.NotEmpty(t, slots)
		for _, clock := range slots {
			start := clockMinutes(t, clock)
			contained := false
			for _, w := range windows {
				if start >= w.Start && start+duration <= w.End {
					require.Zero(t, (start-w.Start)%duration, "slot %s is not at a stride offset", clock)
					contained = true
				}
			}
			assert.True(t, contained, "slot %s extends outside every window", clock)
		}
	})
}
