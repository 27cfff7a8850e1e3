package summary

import (
	"errors"
	"math"
	"time"

	"pdks-backend/internal/models"

	"gorm.io/gorm"
)

type WeeklySummary struct {
	UserID            uint    `json:"user_id"`
	UserName          string  `json:"user_name"`
	WeekStart         string  `json:"week_start"`
	WeekEnd           string  `json:"week_end"`
	DaysWorked        int     `json:"days_worked"`
	TotalWorkMinutes  int     `json:"total_work_minutes"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	NetWorkMinutes    int     `json:"net_work_minutes"`
	NetWorkHours      float64 `json:"net_work_hours"`
}

type OvertimeAlert struct {
	UserID         uint    `json:"user_id"`
	UserName       string  `json:"user_name"`
	WeekStart      string  `json:"week_start"`
	WeekEnd        string  `json:"week_end"`
	TotalHours     float64 `json:"total_hours"`
	MaxWeeklyHours int     `json:"max_weekly_hours"`
	OvertimeHours  float64 `json:"overtime_hours"`
}

type weeklyRow struct {
	UserID     uint
	TotalWork  int
	TotalBreak int
	DaysWorked int
}

func weeklyRows(db *gorm.DB, organizationID uint, userID, storeID *uint, weekStart, weekEnd time.Time) ([]weeklyRow, error) {
	dbq := db.Model(&models.Attendance{}).
		Select("user_id, COALESCE(SUM(total_work_minutes), 0) AS total_work, COALESCE(SUM(total_break_minutes), 0) AS total_break, COUNT(id) AS days_worked").
		Where("organization_id = ? AND work_date >= ? AND work_date <= ?", organizationID, weekStart, weekEnd)

	if userID != nil {
		dbq = dbq.Where("user_id = ?", *userID)
	}
	if storeID != nil {
		dbq = dbq.Where("store_id = ?", *storeID)
	}

	var rows []weeklyRow
	if err := dbq.Group("user_id").Order("user_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func userName(db *gorm.DB, userID uint) string {
	var user models.User
	if err := db.Select("name").First(&user, "id = ?", userID).Error; err != nil {
		return "Unknown"
	}
	return user.Name
}

// Weekly - Kullanıcı başına haftalık çalışma özeti. Hafta penceresi
// referans tarihi içeren Pazartesi–Pazar aralığıdır.
func Weekly(db *gorm.DB, organizationID uint, userID, storeID *uint, referenceDate time.Time) ([]WeeklySummary, error) {
	weekStart, weekEnd := WeekWindow(referenceDate)

	rows, err := weeklyRows(db, organizationID, userID, storeID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	summaries := make([]WeeklySummary, 0, len(rows))
	for _, row := range rows {
		net := NetMinutes(row.TotalWork, row.TotalBreak)
		summaries = append(summaries, WeeklySummary{
			UserID:            row.UserID,
			UserName:          userName(db, row.UserID),
			WeekStart:         weekStart.Format("2006-01-02"),
			WeekEnd:           weekEnd.Format("2006-01-02"),
			DaysWorked:        row.DaysWorked,
			TotalWorkMinutes:  row.TotalWork,
			TotalBreakMinutes: row.TotalBreak,
			NetWorkMinutes:    net,
			NetWorkHours:      HoursRounded(net),
		})
	}
	return summaries, nil
}

// thresholdFrom - Haftalık limit: store_max_weekly > state_max_weekly >
// federal_max_weekly önceliğiyle, kural yoksa 40 saat.
func thresholdFrom(rule *models.LaborRule) int {
	if rule == nil {
		return 40
	}
	if rule.StoreMaxWeekly != nil {
		return *rule.StoreMaxWeekly
	}
	if rule.StateMaxWeekly != nil {
		return *rule.StateMaxWeekly
	}
	if rule.FederalMaxWeekly > 0 {
		return rule.FederalMaxWeekly
	}
	return 40
}

// resolveThreshold - Önce mağaza bazlı kural, yoksa organizasyondaki ilk
// kural. Kural hiç yoksa varsayılan; sorgu hatası çağırana döner.
func resolveThreshold(db *gorm.DB, organizationID uint, storeID *uint) (int, error) {
	var rule models.LaborRule
	dbq := db.Where("organization_id = ?", organizationID)
	if storeID != nil {
		dbq = dbq.Where("store_id = ?", *storeID)
	}
	err := dbq.First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && storeID != nil {
		err = db.Where("organization_id = ?", organizationID).First(&rule).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return thresholdFrom(nil), nil
	}
	if err != nil {
		return 0, err
	}
	return thresholdFrom(&rule), nil
}

// overtimeFor - Brüt çalışma eşiği AŞIYORSA alarm döner, aşmıyorsa nil.
// Saatler tek ondalığa yuvarlanır (ör. 2772 dk -> 46.2, fazla 6.2).
func overtimeFor(row weeklyRow, threshold int) *OvertimeAlert {
	totalHours := float64(row.TotalWork) / 60.0
	if totalHours <= float64(threshold) {
		return nil
	}
	return &OvertimeAlert{
		UserID:         row.UserID,
		TotalHours:     math.Round(totalHours*10) / 10,
		MaxWeeklyHours: threshold,
		OvertimeHours:  math.Round((totalHours-float64(threshold))*10) / 10,
	}
}

// OvertimeAlerts - Haftalık toplamı limiti AŞAN kullanıcılar. Eşik brüt
// çalışma saatiyle karşılaştırılır (mola düşülmez).
func OvertimeAlerts(db *gorm.DB, organizationID uint, storeID *uint, referenceDate time.Time) ([]OvertimeAlert, error) {
	weekStart, weekEnd := WeekWindow(referenceDate)
	threshold, err := resolveThreshold(db, organizationID, storeID)
	if err != nil {
		return nil, err
	}

	rows, err := weeklyRows(db, organizationID, nil, storeID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	alerts := make([]OvertimeAlert, 0)
	for _, row := range rows {
		alert := overtimeFor(row, threshold)
		if alert == nil {
			continue
		}
		alert.UserName = userName(db, row.UserID)
		alert.WeekStart = weekStart.Format("2006-01-02")
		alert.WeekEnd = weekEnd.Format("2006-01-02")
		alerts = append(alerts, *alert)
	}
	return alerts, nil
}
