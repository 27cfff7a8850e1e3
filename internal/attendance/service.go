package attendance

import (
	"errors"
	"fmt"
	"time"

	"pdks-backend/internal/apperr"
	"pdks-backend/internal/models"
	"pdks-backend/internal/qr"

	"gorm.io/gorm"
)

type ScanInput struct {
	Code           string
	UserID         uint
	OrganizationID uint
	Action         string
	ClientTimezone string
}

// Scan - QR taramasını işler: token doğrulama, günün kaydını çözme,
// durum makinesini uygulama. Kayıt okuma + yazma tek transaction içinde;
// kısmi uygulama asla gözlemlenemez. (user_id, work_date) unique index'i
// eşzamanlı çift clock_in'i veritabanı seviyesinde keser: N denemeden
// tam biri başarılı olur, kalanlar duplicate alır.
func Scan(db *gorm.DB, in ScanInput, now time.Time) (models.Attendance, error) {
	ev, err := ParseEvent(in.Action)
	if err != nil {
		return models.Attendance{}, err
	}

	workDate := dateOnly(now)

	var result models.Attendance
	err = db.Transaction(func(tx *gorm.DB) error {
		// Token kontrolü her aksiyondan önce gelir; geçersizse mesai
		// durumu hiç okunmadan istek düşer.
		token, tokenErr := qr.ValidateForScan(tx, in.Code, now)
		if tokenErr != nil {
			return tokenErr
		}

		var existing *models.Attendance
		var rec models.Attendance
		findErr := tx.Where("user_id = ? AND work_date = ?", in.UserID, workDate).First(&rec).Error
		if findErr == nil {
			existing = &rec
		} else if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		next, applyErr := Apply(existing, ev, now, in.ClientTimezone)
		if applyErr != nil {
			return applyErr
		}

		if existing == nil {
			next.OrganizationID = in.OrganizationID
			next.StoreID = token.StoreID
			next.UserID = in.UserID
			if createErr := tx.Create(&next).Error; createErr != nil {
				if errors.Is(createErr, gorm.ErrDuplicatedKey) {
					return apperr.Duplicate("Bugün için zaten bir mesai kaydı var")
				}
				return createErr
			}
		} else {
			if saveErr := tx.Save(&next).Error; saveErr != nil {
				return saveErr
			}
		}

		result = next
		return nil
	})
	if err != nil {
		return models.Attendance{}, err
	}

	return result, nil
}

// Today - Kullanıcının verilen güne ait kaydını döner, yoksa nil.
func Today(db *gorm.DB, userID uint, date time.Time) (*models.Attendance, error) {
	var rec models.Attendance
	err := db.Where("user_id = ? AND work_date = ?", userID, dateOnly(date)).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

type ListFilters struct {
	OrganizationID uint
	StoreID        *uint
	UserID         *uint
	WorkDate       *time.Time
	DateFrom       *time.Time
	DateTo         *time.Time
	Status         string
	Page           int
	PerPage        int
}

// List - Filtreli + sayfalı mesai listesi. Toplam sayı aynı filtre
// üzerinden count ile hesaplanır; sıralama work_date desc, created_at desc.
func List(db *gorm.DB, f ListFilters) ([]models.Attendance, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}

	// Tanınmayan status değeri sessizce boş liste döndürmesin
	if f.Status != "" {
		switch models.AttendanceStatus(f.Status) {
		case models.StatusClockedIn, models.StatusOnBreak, models.StatusClockedOut:
		default:
			return nil, 0, apperr.BadRequest(fmt.Sprintf("Geçersiz status filtresi: %q (clocked_in|on_break|clocked_out)", f.Status))
		}
	}

	dbq := db.Model(&models.Attendance{}).Where("organization_id = ?", f.OrganizationID)

	if f.StoreID != nil {
		dbq = dbq.Where("store_id = ?", *f.StoreID)
	}
	if f.UserID != nil {
		dbq = dbq.Where("user_id = ?", *f.UserID)
	}
	if f.WorkDate != nil {
		dbq = dbq.Where("work_date = ?", dateOnly(*f.WorkDate))
	}
	if f.DateFrom != nil {
		dbq = dbq.Where("work_date >= ?", dateOnly(*f.DateFrom))
	}
	if f.DateTo != nil {
		dbq = dbq.Where("work_date <= ?", dateOnly(*f.DateTo))
	}
	if f.Status != "" {
		dbq = dbq.Where("status = ?", f.Status)
	}

	var total int64
	if err := dbq.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.Attendance
	err := dbq.Order("work_date DESC, created_at DESC").
		Offset((f.Page - 1) * f.PerPage).
		Limit(f.PerPage).
		Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// GetByID - Organizasyon kapsamında tek kayıt.
func GetByID(db *gorm.DB, attendanceID uint, organizationID uint) (models.Attendance, error) {
	var rec models.Attendance
	err := db.Where("id = ? AND organization_id = ?", attendanceID, organizationID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Attendance{}, apperr.NotFound("Mesai kaydı bulunamadı")
	}
	if err != nil {
		return models.Attendance{}, err
	}
	return rec, nil
}
