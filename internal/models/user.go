package models

import "time"

type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleStoreAdmin UserRole = "store_admin"
	RoleEmployee   UserRole = "employee"
)

// Rol öncelikleri — yetki kontrolü sıralı öncelik üzerinden yapılır.
// Daha yüksek sayı = daha fazla yetki.
var rolePriorities = map[UserRole]int{
	RoleSuperAdmin: 100,
	RoleStoreAdmin: 50,
	RoleEmployee:   10,
}

func (r UserRole) Priority() int {
	return rolePriorities[r]
}

type User struct {
	ID             uint `gorm:"primaryKey"`
	OrganizationID uint `gorm:"index;not null"`
	StoreID        *uint
	Store          *Store
	Name           string   `gorm:"size:100;not null"`
	Email          string   `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash   string   `gorm:"size:255;not null"`
	Role           UserRole `gorm:"size:20;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
