package models

import "time"

type Store struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"index;not null"`
	Name           string `gorm:"size:100;not null"`
	Address        string `gorm:"size:255"`
	Phone          string `gorm:"size:50"` // Opsiyonel telefon
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Users []User
}
