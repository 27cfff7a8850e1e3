package database

import (
	"log"

	"pdks-backend/internal/config"
	"pdks-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	// TranslateError: unique constraint ihlallerini gorm.ErrDuplicatedKey
	// olarak yakalayabilmek için (çift clock_in yarışı tespiti)
	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Store{},
		&models.User{},
		&models.QRCode{},
		&models.Attendance{},
		&models.AttendanceCorrection{},
		&models.LaborRule{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	// Mağaza başına tek aktif QR kodu invariant'ı. Gorm partial index'i
	// tag'le ifade edemediği için manuel SQL ile ekleniyor.
	if err := DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uq_qr_codes_store_active
		ON qr_codes (store_id) WHERE is_active
	`).Error; err != nil {
		log.Fatalf("Aktif QR index'i oluşturulamadı: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
