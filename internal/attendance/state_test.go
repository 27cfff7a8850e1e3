package attendance

import (
	"errors"
	"testing"
	"time"

	"pdks-backend/internal/apperr"
	"pdks-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func recInState(t *testing.T, status models.AttendanceStatus, clockIn time.Time) *models.Attendance {
	t.Helper()

	rec := &models.Attendance{
		OrganizationID: 1,
		StoreID:        1,
		UserID:         1,
		WorkDate:       dateOnly(clockIn),
		ClockIn:        &clockIn,
		Status:         status,
	}
	if status == models.StatusOnBreak {
		breakStart := clockIn.Add(2 * time.Hour)
		rec.BreakStart = &breakStart
	}
	if status == models.StatusClockedOut {
		clockOut := clockIn.Add(8 * time.Hour)
		rec.ClockOut = &clockOut
	}
	return rec
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()

	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr), "apperr.Error bekleniyordu, gelen: %v", err)
	require.Equal(t, kind, appErr.Kind)
}

func TestParseEvent(t *testing.T) {
	for _, s := range []string{"clock_in", "break_start", "break_end", "clock_out"} {
		ev, err := ParseEvent(s)
		require.NoError(t, err)
		require.Equal(t, Event(s), ev)
	}

	_, err := ParseEvent("lunch")
	requireKind(t, err, apperr.KindBadRequest)
}

func TestApplyClockInCreatesRecord(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	rec, err := Apply(nil, EventClockIn, now, "Europe/Istanbul")
	require.NoError(t, err)

	require.Equal(t, models.StatusClockedIn, rec.Status)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), rec.WorkDate)
	require.NotNil(t, rec.ClockIn)
	require.Equal(t, now, *rec.ClockIn)
	require.Equal(t, "Europe/Istanbul", rec.ClockInTimezone)
	require.Nil(t, rec.TotalWorkMinutes)
	require.Nil(t, rec.TotalBreakMinutes)
}

func TestApplyFullDayScenario(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	rec, err := Apply(nil, EventClockIn, t0, "Europe/Istanbul")
	require.NoError(t, err)
	require.Equal(t, models.StatusClockedIn, rec.Status)

	rec, err = Apply(&rec, EventBreakStart, t0.Add(2*time.Hour), "Europe/Istanbul")
	require.NoError(t, err)
	require.Equal(t, models.StatusOnBreak, rec.Status)
	require.NotNil(t, rec.BreakStart)

	rec, err = Apply(&rec, EventBreakEnd, t0.Add(2*time.Hour+30*time.Minute), "Europe/Istanbul")
	require.NoError(t, err)
	require.Equal(t, models.StatusClockedIn, rec.Status)
	require.NotNil(t, rec.TotalBreakMinutes)
	require.Equal(t, 30, *rec.TotalBreakMinutes)

	rec, err = Apply(&rec, EventClockOut, t0.Add(8*time.Hour), "Europe/Istanbul")
	require.NoError(t, err)
	require.Equal(t, models.StatusClockedOut, rec.Status)
	require.NotNil(t, rec.TotalWorkMinutes)
	require.Equal(t, 480, *rec.TotalWorkMinutes)
	require.NotNil(t, rec.ClockOut)
}

func TestApplyClockOutClosesOpenBreak(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rec := recInState(t, models.StatusOnBreak, clockIn)

	// Mola 11:00'de başladı, 11:45'te mola kapanmadan çıkış yapılıyor
	out, err := Apply(rec, EventClockOut, clockIn.Add(2*time.Hour+45*time.Minute), "")
	require.NoError(t, err)

	require.Equal(t, models.StatusClockedOut, out.Status)
	require.NotNil(t, out.BreakEnd)
	require.NotNil(t, out.TotalBreakMinutes)
	require.Equal(t, 45, *out.TotalBreakMinutes)
	require.NotNil(t, out.TotalWorkMinutes)
	require.Equal(t, 165, *out.TotalWorkMinutes)
}

func TestApplySecondBreakAccumulates(t *testing.T) {
	t0 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	rec, err := Apply(nil, EventClockIn, t0, "")
	require.NoError(t, err)

	rec, err = Apply(&rec, EventBreakStart, t0.Add(time.Hour), "")
	require.NoError(t, err)
	rec, err = Apply(&rec, EventBreakEnd, t0.Add(time.Hour+15*time.Minute), "")
	require.NoError(t, err)
	require.Equal(t, 15, *rec.TotalBreakMinutes)

	rec, err = Apply(&rec, EventBreakStart, t0.Add(4*time.Hour), "")
	require.NoError(t, err)
	rec, err = Apply(&rec, EventBreakEnd, t0.Add(4*time.Hour+20*time.Minute), "")
	require.NoError(t, err)
	require.Equal(t, 35, *rec.TotalBreakMinutes)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rec := recInState(t, models.StatusClockedIn, clockIn)

	_, err := Apply(rec, EventBreakStart, clockIn.Add(time.Hour), "")
	require.NoError(t, err)

	require.Equal(t, models.StatusClockedIn, rec.Status)
	require.Nil(t, rec.BreakStart)
}

// Tablodaki her (durum, aksiyon) çifti: tabloda olmayanlar invalid_transition
// ile düşmeli, olanlar belirtilen duruma geçmeli.
func TestApplyTransitionTableExhaustive(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	now := clockIn.Add(3 * time.Hour)

	states := []models.AttendanceStatus{"", models.StatusClockedIn, models.StatusOnBreak, models.StatusClockedOut}
	events := []Event{EventClockIn, EventBreakStart, EventBreakEnd, EventClockOut}

	valid := map[models.AttendanceStatus]map[Event]models.AttendanceStatus{
		"": {
			EventClockIn: models.StatusClockedIn,
		},
		models.StatusClockedIn: {
			EventBreakStart: models.StatusOnBreak,
			EventClockOut:   models.StatusClockedOut,
		},
		models.StatusOnBreak: {
			EventBreakEnd: models.StatusClockedIn,
			EventClockOut: models.StatusClockedOut,
		},
		models.StatusClockedOut: {},
	}

	for _, state := range states {
		for _, ev := range events {
			var rec *models.Attendance
			if state != "" {
				rec = recInState(t, state, clockIn)
			}

			out, err := Apply(rec, ev, now, "")
			if next, ok := valid[state][ev]; ok {
				require.NoError(t, err, "durum=%q aksiyon=%q", state, ev)
				require.Equal(t, next, out.Status, "durum=%q aksiyon=%q", state, ev)
			} else {
				requireKind(t, err, apperr.KindInvalidTransition)
				// Hata mesajı durumu ve aksiyonu adlandırmalı
				require.Contains(t, err.Error(), stateName(rec))
				require.Contains(t, err.Error(), string(ev))
			}
		}
	}
}

func TestMinutesBetweenTruncates(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 3, 2, 17, 30, 45, 0, time.UTC)

	// 8sa 30dk 45sn -> 510 dakika (yuvarlama değil kırpma)
	require.Equal(t, 510, MinutesBetween(clockIn, clockOut))
	require.Equal(t, 0, MinutesBetween(clockIn, clockIn.Add(59*time.Second)))
	require.Equal(t, 1, MinutesBetween(clockIn, clockIn.Add(60*time.Second)))
}

func TestDateOnlyUsesUTC(t *testing.T) {
	ist := time.FixedZone("TRT", 3*60*60)
	// İstanbul'da 3 Mart 01:30 = UTC 2 Mart 22:30; iş günü UTC'ye göre 2 Mart
	local := time.Date(2026, 3, 3, 1, 30, 0, 0, ist)
	require.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), dateOnly(local))
}
