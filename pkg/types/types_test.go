package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayKey_SameLocalDay(t *testing.T) {
	morning := time.Date(2025, 6, 10, 0, 5, 0, 0, time.Local)
	evening := time.Date(2025, 6, 10, 23, 55, 0, 0, time.Local)

	assert.Equal(t, DayKey("2025-06-10"), NewDayKey(morning))
	assert.Equal(t, NewDayKey(morning), NewDayKey(evening))
}

func TestNewDayKey_ZeroPadded(t *testing.T) {
	assert.Equal(t, DayKey("2025-01-05"), NewDayKey(time.Date(2025, 1, 5, 12, 0, 0, 0, time.Local)))
}

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "canonical", input: "2025-06-10"},
		{name: "leap day", input: "2024-02-29"},
		{name: "empty", input: "", wantErr: true},
		{name: "not padded", input: "2025-6-10", wantErr: true},
		{name: "impossible date", input: "2025-02-30", wantErr: true},
		{name: "with time", input: "2025-06-10T10:00", wantErr: true},
		{name: "garbage", input: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseDayKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDayKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DayKey(tt.input), key)
		})
	}
}

func TestNewTimeLabelFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "09:00"},
		{name: "last minute", input: "23:59"},
		{name: "midnight", input: "00:00"},
		{name: "not padded", input: "9:00", wantErr: true},
		{name: "hour overflow", input: "24:00", wantErr: true},
		{name: "minute overflow", input: "10:60", wantErr: true},
		{name: "seconds", input: "10:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, err := NewTimeLabelFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeLabel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, label.String())
		})
	}
}

func TestTimeLabel_AddMinutes(t *testing.T) {
	next, err := TimeLabel("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeLabel("10:15"), next)

	_, err = TimeLabel("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeLabel_OrderingIsChronological(t *testing.T) {
	assert.True(t, TimeLabel("09:30").IsBefore("10:00"))
	assert.True(t, TimeLabel("10:00").IsAfter("09:59"))
	assert.False(t, TimeLabel("10:00").IsBefore("10:00"))
}

func TestParseTimeLabels(t *testing.T) {
	labels, err := ParseTimeLabels([]string{"10:00", "10:30"})
	require.NoError(t, err)
	assert.Equal(t, []TimeLabel{"10:00", "10:30"}, labels)
	assert.Equal(t, []string{"10:00", "10:30"}, ToStrings(labels))

	_, err = ParseTimeLabels([]string{"10:00", "ten"})
	assert.ErrorIs(t, err, ErrInvalidTimeLabel)
}
