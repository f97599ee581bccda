package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		iso      string
		expected int
		wantErr  bool
	}{
		{name: "hours only", iso: "PT8H", expected: 480},
		{name: "hours and minutes", iso: "PT4H30M", expected: 270},
		{name: "minutes only", iso: "PT45M", expected: 45},
		{name: "missing designators", iso: "PT", wantErr: true},
		{name: "not a duration", iso: "8 hours", wantErr: true},
		{name: "empty", iso: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := ParseISODurationMinutes(tt.iso)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	minutes, err := ClockToMinutes("13:05")
	assert.NoError(t, err)
	assert.Equal(t, 785, minutes)
	assert.Equal(t, "13:05", MinutesToClock(785))

	_, err = ClockToMinutes("25:00")
	assert.Error(t, err)
}

func TestMinutesBetweenClocks(t *testing.T) {
	minutes, err := MinutesBetweenClocks("08:00", "16:00")
	assert.NoError(t, err)
	assert.Equal(t, 480, minutes)

	_, err = MinutesBetweenClocks("16:00", "08:00")
	assert.Error(t, err)
}
