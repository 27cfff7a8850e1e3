package attendance

import (
	"fmt"
	"time"

	"pdks-backend/internal/apperr"
	"pdks-backend/internal/models"
)

// Event - QR taramasıyla gelen mesai aksiyonu.
type Event string

const (
	EventClockIn    Event = "clock_in"
	EventBreakStart Event = "break_start"
	EventBreakEnd   Event = "break_end"
	EventClockOut   Event = "clock_out"
)

func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventClockIn, EventBreakStart, EventBreakEnd, EventClockOut:
		return Event(s), nil
	default:
		return "", apperr.BadRequest(fmt.Sprintf("Geçersiz aksiyon: %q (clock_in|break_start|break_end|clock_out)", s))
	}
}

// MinutesBetween - İki an arasındaki süre, tam dakikaya AŞAĞI yuvarlanır.
// Yuvarlama değil kırpma: 8sa30dk45sn -> 510 dakika. Düzeltme sonrası
// yeniden hesaplamalar da aynı kuralı kullanmak zorunda.
func MinutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}

// stateName - Hata mesajlarında kullanılan durum adı. Kayıt yoksa "none".
func stateName(rec *models.Attendance) string {
	if rec == nil {
		return "none"
	}
	return string(rec.Status)
}

func invalidTransition(rec *models.Attendance, ev Event) error {
	return apperr.InvalidTransition(fmt.Sprintf("Geçersiz geçiş: %q durumunda %q yapılamaz", stateName(rec), ev))
}

// dateOnly - Zaman damgasının UTC takvim günü (00:00 UTC).
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// closeBreak - Açık molayı kapatır ve süresini biriktirir.
func closeBreak(rec *models.Attendance, now time.Time) {
	if rec.BreakStart == nil {
		return
	}
	rec.BreakEnd = &now
	total := MinutesBetween(*rec.BreakStart, now)
	if rec.TotalBreakMinutes != nil {
		total += *rec.TotalBreakMinutes
	}
	rec.TotalBreakMinutes = &total
}

// Apply - Mesai durum makinesi, saf fonksiyon olarak. rec nil ise bugün
// için henüz kayıt yoktur (NONE durumu). Girdi kaydı değiştirilmez; yeni
// kayıt değeri döner, bu sayede depolamadan bağımsız test edilebilir.
//
// Geçiş tablosu:
//
//	NONE        + clock_in    -> CLOCKED_IN (yeni kayıt)
//	CLOCKED_IN  + break_start -> ON_BREAK
//	ON_BREAK    + break_end   -> CLOCKED_IN (mola süresi biriktirilir)
//	CLOCKED_IN  + clock_out   -> CLOCKED_OUT
//	ON_BREAK    + clock_out   -> CLOCKED_OUT (önce mola kapatılır)
//
// Tablodaki her diğer (durum, aksiyon) çifti invalid_transition ile düşer.
// Tüm aritmetik UTC; client timezone sadece gösterim için saklanır.
func Apply(rec *models.Attendance, ev Event, now time.Time, clientTimezone string) (models.Attendance, error) {
	now = now.UTC()

	switch ev {
	case EventClockIn:
		if rec != nil {
			return models.Attendance{}, invalidTransition(rec, ev)
		}
		clockIn := now
		return models.Attendance{
			WorkDate:        dateOnly(now),
			ClockIn:         &clockIn,
			ClockInTimezone: clientTimezone,
			Status:          models.StatusClockedIn,
		}, nil

	case EventBreakStart:
		if rec == nil || rec.Status != models.StatusClockedIn {
			return models.Attendance{}, invalidTransition(rec, ev)
		}
		out := *rec
		breakStart := now
		out.BreakStart = &breakStart
		out.Status = models.StatusOnBreak
		return out, nil

	case EventBreakEnd:
		if rec == nil || rec.Status != models.StatusOnBreak {
			return models.Attendance{}, invalidTransition(rec, ev)
		}
		out := *rec
		closeBreak(&out, now)
		out.Status = models.StatusClockedIn
		return out, nil

	case EventClockOut:
		if rec == nil || (rec.Status != models.StatusClockedIn && rec.Status != models.StatusOnBreak) {
			return models.Attendance{}, invalidTransition(rec, ev)
		}
		out := *rec
		// Mola açıksa önce kapat
		if out.Status == models.StatusOnBreak {
			closeBreak(&out, now)
		}
		clockOut := now
		out.ClockOut = &clockOut
		out.ClockOutTimezone = clientTimezone
		if out.ClockIn != nil {
			work := MinutesBetween(*out.ClockIn, now)
			out.TotalWorkMinutes = &work
		}
		out.Status = models.StatusClockedOut
		return out, nil

	default:
		return models.Attendance{}, invalidTransition(rec, ev)
	}
}
