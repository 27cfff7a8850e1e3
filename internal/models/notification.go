package models

import "time"

type NotificationType string

const (
	NotificationAttendanceCorrection NotificationType = "attendance_correction"
)

type Notification struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	OrganizationID uint             `gorm:"index;not null" json:"organization_id"`
	UserID         uint             `gorm:"index;not null" json:"user_id"`
	Type           NotificationType `gorm:"size:50;not null" json:"type"`
	Title          string           `gorm:"size:255;not null" json:"title"`
	Body           string           `gorm:"type:text" json:"body"`

	// İlgili entity (ör: "attendance" + kayıt id)
	EntityType string `gorm:"size:50" json:"entity_type"`
	EntityID   uint   `json:"entity_id"`

	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
