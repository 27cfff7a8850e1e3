package qr

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"pdks-backend/internal/apperr"
	"pdks-backend/internal/models"

	"gorm.io/gorm"
)

// newCode - 128 bit rastgelelikle opak QR kodu üretir (32 hex karakter).
// Çakışma olasılığı ihmal edilebilir, yine de kolon unique index'li.
func newCode() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rastgele kod üretilemedi: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// storeInOrg - Mağaza sorgusu her zaman organizasyon kapsamlı; başka
// organizasyonun mağazası yokmuş gibi davranılır.
func storeInOrg(db *gorm.DB, storeID uint, organizationID uint) error {
	var store models.Store
	err := db.Where("id = ? AND organization_id = ?", storeID, organizationID).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Mağaza bulunamadı")
	}
	return err
}

// Issue - Mağazanın aktif QR kodlarını pasife çekip yenisini üretir.
// Pasifleştirme + yeni kod tek transaction içinde: iki kodun aynı anda
// aktif olduğu bir pencere oluşmaz. Eski kodlar silinmez.
func Issue(db *gorm.DB, storeID uint, organizationID uint, createdBy uint) (models.QRCode, error) {
	code, err := newCode()
	if err != nil {
		return models.QRCode{}, err
	}

	created := models.QRCode{
		StoreID:   storeID,
		Code:      code,
		IsActive:  true,
		CreatedBy: &createdBy,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := storeInOrg(tx, storeID, organizationID); err != nil {
			return err
		}
		if err := tx.Model(&models.QRCode{}).
			Where("store_id = ? AND is_active = ?", storeID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return models.QRCode{}, err
		}
		return models.QRCode{}, fmt.Errorf("QR kodu oluşturulamadı: %w", err)
	}

	return created, nil
}

// Regenerate - Var olan bir QR kodunun mağazası için yeni kod üretir.
// Kodun mağazası çağıranın organizasyonunda değilse kayıt yok sayılır.
func Regenerate(db *gorm.DB, qrID uint, organizationID uint, createdBy uint) (models.QRCode, error) {
	var old models.QRCode
	if err := db.First(&old, "id = ?", qrID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.QRCode{}, apperr.NotFound("QR kodu bulunamadı")
		}
		return models.QRCode{}, err
	}
	return Issue(db, old.StoreID, organizationID, createdBy)
}

// ActiveFor - Mağazanın aktif QR kodunu döner, yoksa nil.
func ActiveFor(db *gorm.DB, storeID uint, organizationID uint) (*models.QRCode, error) {
	if err := storeInOrg(db, storeID, organizationID); err != nil {
		return nil, err
	}
	var q models.QRCode
	err := db.Where("store_id = ? AND is_active = ?", storeID, true).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Resolve - Opak kod değeriyle QR kodunu bulur, yoksa nil.
func Resolve(db *gorm.DB, code string) (*models.QRCode, error) {
	var q models.QRCode
	err := db.Where("code = ?", code).First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ValidateForScan - Mesai aksiyonu öncesi token kontrolü. Token yoksa,
// pasifse veya süresi dolmuşsa invalid_token döner; mesai durumu hiç
// okunmadan istek kesilir.
func ValidateForScan(db *gorm.DB, code string, now time.Time) (models.QRCode, error) {
	q, err := Resolve(db, code)
	if err != nil {
		return models.QRCode{}, err
	}
	if q == nil || !q.IsActive {
		return models.QRCode{}, apperr.InvalidToken("Geçersiz veya pasif QR kodu")
	}
	if q.ExpiresAt != nil && now.After(*q.ExpiresAt) {
		return models.QRCode{}, apperr.InvalidToken("QR kodunun süresi dolmuş")
	}
	return *q, nil
}
