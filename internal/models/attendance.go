package models

import "time"

type AttendanceStatus string

const (
	StatusClockedIn  AttendanceStatus = "clocked_in"
	StatusOnBreak    AttendanceStatus = "on_break"
	StatusClockedOut AttendanceStatus = "clocked_out"
)

// Attendance - Kullanıcı başına günde tek mesai kaydı.
// Durum akışı: clocked_in -> on_break -> clocked_in -> clocked_out
// (user_id, work_date) unique index'i çift clock_in yarışını veritabanı
// seviyesinde engeller.
type Attendance struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrganizationID uint      `gorm:"index;not null" json:"organization_id"`
	StoreID        uint      `gorm:"index;not null" json:"store_id"`
	UserID         uint      `gorm:"not null;uniqueIndex:uq_attendance_user_date" json:"user_id"`
	WorkDate       time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_user_date" json:"work_date"`

	ClockIn          *time.Time `json:"clock_in"`
	ClockInTimezone  string     `gorm:"size:50" json:"clock_in_timezone"` // Sadece gösterim için, hesaplamada kullanılmaz
	BreakStart       *time.Time `json:"break_start"`
	BreakEnd         *time.Time `json:"break_end"`
	ClockOut         *time.Time `json:"clock_out"`
	ClockOutTimezone string     `gorm:"size:50" json:"clock_out_timezone"`

	Status AttendanceStatus `gorm:"size:20;not null;index" json:"status"`

	// clock_out gerçekleşince hesaplanır (dakika, aşağı yuvarlama)
	TotalWorkMinutes  *int `json:"total_work_minutes"`
	TotalBreakMinutes *int `json:"total_break_minutes"`

	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
