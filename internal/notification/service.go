package notification

import (
	"fmt"

	"pdks-backend/internal/models"

	"gorm.io/gorm"
)

// CreateCorrectionAlert - Mesai düzeltmesi sonrası organizasyonun yönetici
// kadrosuna (store_admin ve üzeri) bildirim bırakır. Çağıran taraf
// transaction'ı kapattıktan sonra çalıştırır; hata dönerse sadece loglanır,
// düzeltme işlemini asla geriye sarmaz.
func CreateCorrectionAlert(db *gorm.DB, rec models.Attendance, fieldName string, correctedBy uint) error {
	var correctorName string
	var corrector models.User
	if err := db.Select("name").First(&corrector, "id = ?", correctedBy).Error; err == nil {
		correctorName = corrector.Name
	} else {
		correctorName = "Bilinmeyen kullanıcı"
	}

	var admins []models.User
	err := db.Where("organization_id = ? AND role IN ?", rec.OrganizationID,
		[]models.UserRole{models.RoleSuperAdmin, models.RoleStoreAdmin}).
		Find(&admins).Error
	if err != nil {
		return fmt.Errorf("yönetici listesi alınamadı: %w", err)
	}

	for _, admin := range admins {
		n := models.Notification{
			OrganizationID: rec.OrganizationID,
			UserID:         admin.ID,
			Type:           models.NotificationAttendanceCorrection,
			Title:          "Mesai kaydı düzeltildi",
			Body: fmt.Sprintf("%s, %d numaralı mesai kaydının %q alanını düzeltti",
				correctorName, rec.ID, fieldName),
			EntityType: "attendance",
			EntityID:   rec.ID,
		}
		if err := db.Create(&n).Error; err != nil {
			return fmt.Errorf("bildirim kaydedilemedi: %w", err)
		}
	}

	return nil
}
