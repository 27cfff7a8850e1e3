package correction

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pdks-backend/internal/apperr"
	"pdks-backend/internal/attendance"
	"pdks-backend/internal/models"
	"pdks-backend/internal/notification"

	"gorm.io/gorm"
)

// Düzeltilebilir alan beyaz listesi — durum makinesi sıralaması burada
// geçerli değildir, düzeltme geçmiş herhangi bir alana dokunabilir.
var correctableFields = map[string]bool{
	"clock_in":    true,
	"clock_out":   true,
	"break_start": true,
	"break_end":   true,
}

type CorrectInput struct {
	AttendanceID   uint
	OrganizationID uint
	FieldName      string
	CorrectedValue string // ISO-8601
	Reason         string
	CorrectedBy    uint
}

func fieldValue(rec *models.Attendance, fieldName string) *time.Time {
	switch fieldName {
	case "clock_in":
		return rec.ClockIn
	case "clock_out":
		return rec.ClockOut
	case "break_start":
		return rec.BreakStart
	case "break_end":
		return rec.BreakEnd
	}
	return nil
}

func setFieldValue(rec *models.Attendance, fieldName string, value time.Time) {
	switch fieldName {
	case "clock_in":
		rec.ClockIn = &value
	case "clock_out":
		rec.ClockOut = &value
	case "break_start":
		rec.BreakStart = &value
	case "break_end":
		rec.BreakEnd = &value
	}
}

// recompute - Düzeltme sonrası türetilmiş süreleri yeniler. Durum
// makinesiyle aynı dakika kırpma kuralı; kaydın mevcut status'üne bakılmaz.
func recompute(rec *models.Attendance, fieldName string) {
	switch fieldName {
	case "clock_in", "clock_out":
		if rec.ClockIn != nil && rec.ClockOut != nil {
			work := attendance.MinutesBetween(*rec.ClockIn, *rec.ClockOut)
			rec.TotalWorkMinutes = &work
		}
	case "break_start", "break_end":
		if rec.BreakStart != nil && rec.BreakEnd != nil {
			brk := attendance.MinutesBetween(*rec.BreakStart, *rec.BreakEnd)
			rec.TotalBreakMinutes = &brk
		}
	}
}

// Correct - Denetimli, yetkili düzeltme: alan beyaz listesi kontrolü,
// düzeltme öncesi değerin yakalanması, append-only iz kaydı, alanın
// uygulanması ve türetilmiş sürelerin yeniden hesabı tek transaction'da.
// Bildirim transaction kapandıktan sonra gönderilir; başarısızlığı
// loglanır ama API hatasına dönüşmez.
func Correct(db *gorm.DB, in CorrectInput) (models.AttendanceCorrection, error) {
	if !correctableFields[in.FieldName] {
		return models.AttendanceCorrection{}, apperr.BadRequest(
			fmt.Sprintf("Düzeltilemez alan: %q (clock_in|clock_out|break_start|break_end)", in.FieldName))
	}
	if in.Reason == "" {
		return models.AttendanceCorrection{}, apperr.BadRequest("Düzeltme sebebi (reason) zorunlu")
	}

	correctedAt, err := time.Parse(time.RFC3339, in.CorrectedValue)
	if err != nil {
		return models.AttendanceCorrection{}, apperr.BadRequest("corrected_value ISO-8601 formatında olmalı")
	}

	var entry models.AttendanceCorrection
	var rec models.Attendance

	err = db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("id = ? AND organization_id = ?", in.AttendanceID, in.OrganizationID).First(&rec).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Mesai kaydı bulunamadı")
		}
		if findErr != nil {
			return findErr
		}

		// Düzeltme öncesi değeri yakala (alan boşsa null)
		var originalValue *string
		if orig := fieldValue(&rec, in.FieldName); orig != nil {
			formatted := orig.UTC().Format(time.RFC3339)
			originalValue = &formatted
		}

		entry = models.AttendanceCorrection{
			AttendanceID:   in.AttendanceID,
			FieldName:      in.FieldName,
			OriginalValue:  originalValue,
			CorrectedValue: in.CorrectedValue,
			Reason:         in.Reason,
			CorrectedBy:    in.CorrectedBy,
		}
		if createErr := tx.Create(&entry).Error; createErr != nil {
			return createErr
		}

		setFieldValue(&rec, in.FieldName, correctedAt.UTC())
		recompute(&rec, in.FieldName)

		return tx.Save(&rec).Error
	})
	if err != nil {
		return models.AttendanceCorrection{}, err
	}

	// Bildirim fire-and-forget: transaction açık tutulmaz, hata yutulur
	if notifyErr := notification.CreateCorrectionAlert(db, rec, in.FieldName, in.CorrectedBy); notifyErr != nil {
		log.Printf("Düzeltme bildirimi gönderilemedi: %v", notifyErr)
	}

	return entry, nil
}

// ListForRecord - Bir mesai kaydının düzeltme geçmişi, en yeniden eskiye.
func ListForRecord(db *gorm.DB, attendanceID uint) ([]models.AttendanceCorrection, error) {
	var entries []models.AttendanceCorrection
	err := db.Where("attendance_id = ?", attendanceID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
