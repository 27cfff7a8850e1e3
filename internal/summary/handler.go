package summary

import (
	"fmt"
	"time"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

func parseOptionalID(c *fiber.Ctx, name string) *uint {
	if s := c.Query(name); s != "" {
		var id uint
		if _, err := fmt.Sscan(s, &id); err == nil && id > 0 {
			return &id
		}
	}
	return nil
}

func parseReferenceDate(c *fiber.Ctx) (time.Time, error) {
	if s := c.Query("date"); s != "" {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date formatı geçersiz, 'YYYY-MM-DD' olmalı")
		}
		return d, nil
	}
	return time.Now(), nil
}

// -------------------------------------------------
// GET /api/admin/attendances/summary/weekly?user_id=&store_id=&date=
// -------------------------------------------------
func WeeklySummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		refDate, err := parseReferenceDate(c)
		if err != nil {
			return err
		}

		summaries, err := Weekly(database.DB, identity.OrganizationID,
			parseOptionalID(c, "user_id"), parseOptionalID(c, "store_id"), refDate)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Haftalık özet hesaplanamadı")
		}

		return c.JSON(summaries)
	}
}

// -------------------------------------------------
// GET /api/admin/attendances/overtime-alerts?store_id=&date=
// -------------------------------------------------
func OvertimeAlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		refDate, err := parseReferenceDate(c)
		if err != nil {
			return err
		}

		alerts, err := OvertimeAlerts(database.DB, identity.OrganizationID,
			parseOptionalID(c, "store_id"), refDate)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fazla mesai uyarıları hesaplanamadı")
		}

		return c.JSON(alerts)
	}
}
