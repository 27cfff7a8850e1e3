package correction

import (
	"testing"
	"time"

	"pdks-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCorrectableFieldWhitelist(t *testing.T) {
	for _, f := range []string{"clock_in", "clock_out", "break_start", "break_end"} {
		require.True(t, correctableFields[f], "alan düzeltilebilir olmalı: %s", f)
	}
	require.False(t, correctableFields["status"])
	require.False(t, correctableFields["work_date"])
	require.False(t, correctableFields["total_work_minutes"])
	require.Len(t, correctableFields, 4)
}

func TestSetAndGetFieldValue(t *testing.T) {
	var rec models.Attendance
	value := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for _, f := range []string{"clock_in", "clock_out", "break_start", "break_end"} {
		require.Nil(t, fieldValue(&rec, f))
		setFieldValue(&rec, f, value)
		got := fieldValue(&rec, f)
		require.NotNil(t, got, "alan: %s", f)
		require.Equal(t, value, *got)
	}
}

func TestRecomputeWorkMinutes(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	clockOut := time.Date(2026, 3, 2, 17, 30, 45, 0, time.UTC)

	rec := models.Attendance{ClockIn: &clockIn, ClockOut: &clockOut}
	recompute(&rec, "clock_out")

	require.NotNil(t, rec.TotalWorkMinutes)
	require.Equal(t, 510, *rec.TotalWorkMinutes) // kırpma, yuvarlama değil
	require.Nil(t, rec.TotalBreakMinutes)
}

func TestRecomputeBreakMinutes(t *testing.T) {
	breakStart := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	breakEnd := time.Date(2026, 3, 2, 12, 45, 30, 0, time.UTC)

	rec := models.Attendance{BreakStart: &breakStart, BreakEnd: &breakEnd}
	recompute(&rec, "break_start")

	require.NotNil(t, rec.TotalBreakMinutes)
	require.Equal(t, 45, *rec.TotalBreakMinutes)
	require.Nil(t, rec.TotalWorkMinutes)
}

func TestRecomputeSkipsWhenCounterpartMissing(t *testing.T) {
	clockIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// clock_out yokken clock_in düzeltilirse süre hesaplanmaz
	rec := models.Attendance{ClockIn: &clockIn}
	recompute(&rec, "clock_in")
	require.Nil(t, rec.TotalWorkMinutes)

	// Düzeltme durum makinesine bağlı değildir: kapanmış bir kayıtta da
	// sadece ilgili alan yeniden hesaplanır
	rec.Status = models.StatusClockedOut
	recompute(&rec, "break_end")
	require.Nil(t, rec.TotalBreakMinutes)
}
