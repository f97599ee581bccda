package shifttemplates

import (
	"smileworks-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDurationMinutes(t *testing.T) {
	t.Run("iso duration", func(t *testing.T) {
		minutes, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "08:00",
			Duration:  "PT8H",
		})
		require.NoError(t, err)
		assert.Equal(t, 480, minutes)
	})

	t.Run("iso duration with minutes", func(t *testing.T) {
		minutes, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "09:00",
			Duration:  "PT7H30M",
		})
		require.NoError(t, err)
		assert.Equal(t, 450, minutes)
	})

	t.Run("end time fallback", func(t *testing.T) {
		minutes, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "08:30",
			EndTime:   "17:00",
		})
		require.NoError(t, err)
		assert.Equal(t, 510, minutes)
	})

	t.Run("duration wins over end time", func(t *testing.T) {
		minutes, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "08:00",
			Duration:  "PT4H",
			EndTime:   "17:00",
		})
		require.NoError(t, err)
		assert.Equal(t, 240, minutes)
	})

	t.Run("end time before start rejected", func(t *testing.T) {
		_, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "17:00",
			EndTime:   "08:00",
		})
		assert.Error(t, err)
	})

	t.Run("malformed iso duration rejected", func(t *testing.T) {
		_, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "08:00",
			Duration:  "8 hours",
		})
		assert.Error(t, err)
	})

	t.Run("neither duration nor end time rejected", func(t *testing.T) {
		_, err := resolveDurationMinutes(&requests.UpsertShiftTemplate{
			StartTime: "08:00",
		})
		assert.Error(t, err)
	})
}
