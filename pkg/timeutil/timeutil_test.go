package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDayStartToUTC(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	tests := []struct {
		name    string
		dateISO string
		loc     *time.Location
		wantUTC string
	}{
		{
			name:    "moscow fixed offset",
			dateISO: "2026-02-10",
			loc:     moscow,
			wantUTC: "2026-02-09T21:00:00Z",
		},
		{
			name:    "berlin winter (CET, +1)",
			dateISO: "2026-01-15",
			loc:     berlin,
			wantUTC: "2026-01-14T23:00:00Z",
		},
		{
			name:    "berlin summer (CEST, +2)",
			dateISO: "2026-07-15",
			loc:     berlin,
			wantUTC: "2026-07-14T22:00:00Z",
		},
		{
			name:    "utc passthrough",
			dateISO: "2026-02-10",
			loc:     time.UTC,
			wantUTC: "2026-02-10T00:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalDayStartToUTC(tt.dateISO, tt.loc)
			require.NoError(t, err)

			want, err := time.Parse(time.RFC3339, tt.wantUTC)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestLocalDayStartToUTC_InvalidDate(t *testing.T) {
	_, err := LocalDayStartToUTC("10.02.2026", time.UTC)
	assert.Error(t, err)

	_, err = LocalDayStartToUTC("", time.UTC)
	assert.Error(t, err)
}

func TestISOWeekday(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	// 2026-02-09 - понедельник
	monday, err := LocalDayStartToUTC("2026-02-09", moscow)
	require.NoError(t, err)
	assert.Equal(t, 1, ISOWeekday(monday, moscow))

	// 2026-02-15 - воскресенье: ISO даёт 7, а не 0
	sunday, err := LocalDayStartToUTC("2026-02-15", moscow)
	require.NoError(t, err)
	assert.Equal(t, 7, ISOWeekday(sunday, moscow))

	// Граница дня: 21:30 UTC в субботу - это уже воскресенье 00:30 по Москве
	lateSaturdayUTC := time.Date(2026, 2, 14, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, 7, ISOWeekday(lateSaturdayUTC, moscow))
	assert.Equal(t, 6, ISOWeekday(lateSaturdayUTC, time.UTC))
}

func TestAddMinutes(t *testing.T) {
	base := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC), AddMinutes(base, 60))
	assert.Equal(t, time.Date(2026, 2, 10, 9, 45, 0, 0, time.UTC), AddMinutes(base, -15))
	assert.Equal(t, base, AddMinutes(base, 0))
}
