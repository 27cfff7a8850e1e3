package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeekWindowMondayToSunday(t *testing.T) {
	cases := []struct {
		name  string
		ref   time.Time
		start time.Time
		end   time.Time
	}{
		{
			name:  "hafta ortası (çarşamba)",
			ref:   time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC),
			start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "pazartesi kendisi hafta başı",
			ref:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "pazar hafta sonu sayılır",
			ref:   time.Date(2026, 3, 8, 23, 59, 0, 0, time.UTC),
			start: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ay sınırını aşan hafta",
			ref:   time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
			start: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end := WeekWindow(tc.ref)
			require.Equal(t, tc.start, start)
			require.Equal(t, tc.end, end)
		})
	}
}

func TestHoursRounded(t *testing.T) {
	// 480 + 450 dakika, molasız: 930 dakika = 15.5 saat
	require.Equal(t, 15.5, HoursRounded(930))
	require.Equal(t, 8.0, HoursRounded(480))
	// 505 dakika = 8.4166... -> 8.4
	require.Equal(t, 8.4, HoursRounded(505))
	require.Equal(t, 0.0, HoursRounded(0))
}

func TestNetMinutesFloorsAtZero(t *testing.T) {
	require.Equal(t, 450, NetMinutes(480, 30))
	require.Equal(t, 0, NetMinutes(30, 480))
	require.Equal(t, 0, NetMinutes(0, 0))
}
