package models

import "time"

// LaborRule - Haftalık çalışma limiti ayarları. Öncelik sırası:
// store_max_weekly > state_max_weekly > federal_max_weekly.
// Hiç kayıt yoksa 40 saat varsayılır.
type LaborRule struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	OrganizationID uint `gorm:"index;not null" json:"organization_id"`
	StoreID        uint `gorm:"uniqueIndex;not null" json:"store_id"`

	FederalMaxWeekly int  `gorm:"default:40" json:"federal_max_weekly"`
	StateMaxWeekly   *int `json:"state_max_weekly"`
	StoreMaxWeekly   *int `json:"store_max_weekly"`

	// Günlük fazla mesai eşiği (saat), opsiyonel
	OvertimeThresholdDaily *int `json:"overtime_threshold_daily"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
