package models

import "time"

// AttendanceCorrection - Mesai kaydı düzeltme izi. Append-only: hiçbir kayıt
// güncellenmez veya silinmez, her düzeltme yeni satır olarak eklenir.
type AttendanceCorrection struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	AttendanceID   uint      `gorm:"index;not null" json:"attendance_id"`
	FieldName      string    `gorm:"size:50;not null" json:"field_name"`
	OriginalValue  *string   `gorm:"type:text" json:"original_value"` // Düzeltme öncesi değer (ISO-8601), boşsa null
	CorrectedValue string    `gorm:"type:text;not null" json:"corrected_value"`
	Reason         string    `gorm:"type:text;not null" json:"reason"`
	CorrectedBy    uint      `gorm:"not null" json:"corrected_by"`
	CreatedAt      time.Time `json:"created_at"`
}
