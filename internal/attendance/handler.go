package attendance

import (
	"fmt"
	"time"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ScanRequest struct {
	Token          string `json:"token"`
	Action         string `json:"action"`          // clock_in | break_start | break_end | clock_out
	ClientTimezone string `json:"client_timezone"` // IANA, sadece gösterim için
	Location       *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"` // Opsiyonel GPS, saklanmaz
}

type AttendanceResponse struct {
	ID                uint                    `json:"id"`
	StoreID           uint                    `json:"store_id"`
	StoreName         string                  `json:"store_name"`
	UserID            uint                    `json:"user_id"`
	UserName          string                  `json:"user_name"`
	WorkDate          string                  `json:"work_date"`
	ClockIn           *string                 `json:"clock_in"`
	ClockInTimezone   string                  `json:"clock_in_timezone"`
	BreakStart        *string                 `json:"break_start"`
	BreakEnd          *string                 `json:"break_end"`
	ClockOut          *string                 `json:"clock_out"`
	ClockOutTimezone  string                  `json:"clock_out_timezone"`
	Status            models.AttendanceStatus `json:"status"`
	TotalWorkMinutes  *int                    `json:"total_work_minutes"`
	TotalBreakMinutes *int                    `json:"total_break_minutes"`
	NetWorkMinutes    *int                    `json:"net_work_minutes"`
	Note              string                  `json:"note"`
	CreatedAt         string                  `json:"created_at"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

func buildAttendanceResponse(rec models.Attendance) AttendanceResponse {
	// Mağaza ve kullanıcı adlarını çöz (gösterim için)
	storeName := "Unknown"
	var store models.Store
	if err := database.DB.Select("name").First(&store, "id = ?", rec.StoreID).Error; err == nil {
		storeName = store.Name
	}

	userName := "Unknown"
	var user models.User
	if err := database.DB.Select("name").First(&user, "id = ?", rec.UserID).Error; err == nil {
		userName = user.Name
	}

	// Net çalışma = toplam - mola, sıfırın altına düşmez
	var netWorkMinutes *int
	if rec.TotalWorkMinutes != nil {
		totalBreak := 0
		if rec.TotalBreakMinutes != nil {
			totalBreak = *rec.TotalBreakMinutes
		}
		net := *rec.TotalWorkMinutes - totalBreak
		if net < 0 {
			net = 0
		}
		netWorkMinutes = &net
	}

	return AttendanceResponse{
		ID:                rec.ID,
		StoreID:           rec.StoreID,
		StoreName:         storeName,
		UserID:            rec.UserID,
		UserName:          userName,
		WorkDate:          rec.WorkDate.Format("2006-01-02"),
		ClockIn:           formatTimePtr(rec.ClockIn),
		ClockInTimezone:   rec.ClockInTimezone,
		BreakStart:        formatTimePtr(rec.BreakStart),
		BreakEnd:          formatTimePtr(rec.BreakEnd),
		ClockOut:          formatTimePtr(rec.ClockOut),
		ClockOutTimezone:  rec.ClockOutTimezone,
		Status:            rec.Status,
		TotalWorkMinutes:  rec.TotalWorkMinutes,
		TotalBreakMinutes: rec.TotalBreakMinutes,
		NetWorkMinutes:    netWorkMinutes,
		Note:              rec.Note,
		CreatedAt:         rec.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// -------------------------------------------------
// POST /api/attendance/scan
// -------------------------------------------------
func ScanHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ScanRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Token == "" {
			return fiber.NewError(fiber.StatusBadRequest, "token zorunlu")
		}
		if body.Action == "" {
			return fiber.NewError(fiber.StatusBadRequest, "action zorunlu")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		rec, err := Scan(database.DB, ScanInput{
			Code:           body.Token,
			UserID:         identity.UserID,
			OrganizationID: identity.OrganizationID,
			Action:         body.Action,
			ClientTimezone: body.ClientTimezone,
		}, time.Now())
		if err != nil {
			return err
		}

		return c.JSON(buildAttendanceResponse(rec))
	}
}

// -------------------------------------------------
// GET /api/attendance/today
// -------------------------------------------------
func TodayHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		rec, err := Today(database.DB, identity.UserID, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mesai kaydı sorgulanamadı")
		}
		if rec == nil {
			return c.JSON(fiber.Map{"attendance": nil})
		}

		resp := buildAttendanceResponse(*rec)
		return c.JSON(fiber.Map{"attendance": resp})
	}
}

// -------------------------------------------------
// GET /api/admin/attendances?store_id=&user_id=&work_date=&date_from=&date_to=&status=&page=&per_page=
// -------------------------------------------------
func ListAttendancesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		filters := ListFilters{
			OrganizationID: identity.OrganizationID,
			Status:         c.Query("status"),
			Page:           c.QueryInt("page", 1),
			PerPage:        c.QueryInt("per_page", 20),
		}

		if sidStr := c.Query("store_id"); sidStr != "" {
			var sid uint
			if _, err := fmt.Sscan(sidStr, &sid); err == nil && sid > 0 {
				filters.StoreID = &sid
			}
		}
		if uidStr := c.Query("user_id"); uidStr != "" {
			var uid uint
			if _, err := fmt.Sscan(uidStr, &uid); err == nil && uid > 0 {
				filters.UserID = &uid
			}
		}
		if wdStr := c.Query("work_date"); wdStr != "" {
			d, err := time.Parse("2006-01-02", wdStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "work_date formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			filters.WorkDate = &d
		}
		if fromStr := c.Query("date_from"); fromStr != "" {
			d, err := time.Parse("2006-01-02", fromStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date_from formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			filters.DateFrom = &d
		}
		if toStr := c.Query("date_to"); toStr != "" {
			d, err := time.Parse("2006-01-02", toStr)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date_to formatı geçersiz, 'YYYY-MM-DD' olmalı")
			}
			filters.DateTo = &d
		}

		records, total, err := List(database.DB, filters)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mesai kayıtları listelenemedi")
		}

		items := make([]AttendanceResponse, 0, len(records))
		for _, rec := range records {
			items = append(items, buildAttendanceResponse(rec))
		}

		return c.JSON(fiber.Map{
			"items":    items,
			"total":    total,
			"page":     filters.Page,
			"per_page": filters.PerPage,
		})
	}
}

// -------------------------------------------------
// GET /api/admin/attendances/:id
// -------------------------------------------------
func GetAttendanceHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mesai id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		rec, err := GetByID(database.DB, id, identity.OrganizationID)
		if err != nil {
			return err
		}

		return c.JSON(buildAttendanceResponse(rec))
	}
}
