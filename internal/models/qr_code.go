package models

import "time"

// QRCode - Mağaza başına tek aktif QR kodu. Yeni kod üretildiğinde eski kod
// pasife çekilir ama hiçbir zaman silinmez (geçmiş izi korunur).
type QRCode struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	StoreID   uint       `gorm:"index;not null" json:"store_id"`
	Code      string     `gorm:"size:64;uniqueIndex;not null" json:"code"`
	IsActive  bool       `gorm:"default:true;index" json:"is_active"`
	CreatedBy *uint      `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}
