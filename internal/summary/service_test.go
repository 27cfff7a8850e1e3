package summary

import (
	"testing"

	"pdks-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestThresholdFromPrecedence(t *testing.T) {
	cases := []struct {
		name string
		rule *models.LaborRule
		want int
	}{
		{
			name: "kural yok, 40 saat varsayılanı",
			rule: nil,
			want: 40,
		},
		{
			name: "sadece federal limit",
			rule: &models.LaborRule{FederalMaxWeekly: 45},
			want: 45,
		},
		{
			name: "state limiti federal'i ezer",
			rule: &models.LaborRule{FederalMaxWeekly: 45, StateMaxWeekly: intPtr(38)},
			want: 38,
		},
		{
			name: "store limiti hepsini ezer",
			rule: &models.LaborRule{
				FederalMaxWeekly: 45,
				StateMaxWeekly:   intPtr(38),
				StoreMaxWeekly:   intPtr(35),
			},
			want: 35,
		},
		{
			name: "boş satır yine 40 saat",
			rule: &models.LaborRule{},
			want: 40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, thresholdFrom(tc.rule))
		})
	}
}

func TestOvertimeForAboveThreshold(t *testing.T) {
	// 2772 dk brüt = 46.2 saat, limit 40 -> 6.2 saat fazla
	alert := overtimeFor(weeklyRow{UserID: 7, TotalWork: 2772}, 40)
	require.NotNil(t, alert)
	require.Equal(t, uint(7), alert.UserID)
	require.Equal(t, 40, alert.MaxWeeklyHours)
	require.InDelta(t, 46.2, alert.TotalHours, 1e-9)
	require.InDelta(t, 6.2, alert.OvertimeHours, 1e-9)
}

func TestOvertimeForAtOrBelowThreshold(t *testing.T) {
	// Limit aşılmadıkça alarm yok, tam limit dahil
	require.Nil(t, overtimeFor(weeklyRow{TotalWork: 2400}, 40))
	require.Nil(t, overtimeFor(weeklyRow{TotalWork: 2399}, 40))
}

func TestOvertimeForRoundsToOneDecimal(t *testing.T) {
	// 2406 dk = 40.1 saat -> 0.1 saat fazla
	alert := overtimeFor(weeklyRow{TotalWork: 2406}, 40)
	require.NotNil(t, alert)
	require.InDelta(t, 40.1, alert.TotalHours, 1e-9)
	require.InDelta(t, 0.1, alert.OvertimeHours, 1e-9)
}
