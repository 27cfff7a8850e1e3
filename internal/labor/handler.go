package labor

import (
	"errors"
	"fmt"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LaborRuleRequest struct {
	FederalMaxWeekly       int  `json:"federal_max_weekly"`
	StateMaxWeekly         *int `json:"state_max_weekly"`
	StoreMaxWeekly         *int `json:"store_max_weekly"`
	OvertimeThresholdDaily *int `json:"overtime_threshold_daily"`
}

type LaborRuleResponse struct {
	ID                     uint   `json:"id"`
	StoreID                uint   `json:"store_id"`
	FederalMaxWeekly       int    `json:"federal_max_weekly"`
	StateMaxWeekly         *int   `json:"state_max_weekly"`
	StoreMaxWeekly         *int   `json:"store_max_weekly"`
	OvertimeThresholdDaily *int   `json:"overtime_threshold_daily"`
	CreatedAt              string `json:"created_at"`
}

func buildLaborRuleResponse(rule models.LaborRule) LaborRuleResponse {
	return LaborRuleResponse{
		ID:                     rule.ID,
		StoreID:                rule.StoreID,
		FederalMaxWeekly:       rule.FederalMaxWeekly,
		StateMaxWeekly:         rule.StateMaxWeekly,
		StoreMaxWeekly:         rule.StoreMaxWeekly,
		OvertimeThresholdDaily: rule.OvertimeThresholdDaily,
		CreatedAt:              rule.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// -------------------------------------------------
// GET /api/admin/stores/:id/labor-rule
// -------------------------------------------------
func GetLaborRuleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var storeID uint
		if _, err := fmt.Sscan(c.Params("id"), &storeID); err != nil || storeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mağaza id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var rule models.LaborRule
		err = database.DB.Where("store_id = ? AND organization_id = ?", storeID, identity.OrganizationID).First(&rule).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Kural tanımlı değilse varsayılanları dön
			return c.JSON(LaborRuleResponse{
				StoreID:          storeID,
				FederalMaxWeekly: 40,
			})
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışma kuralı sorgulanamadı")
		}

		return c.JSON(buildLaborRuleResponse(rule))
	}
}

// -------------------------------------------------
// PUT /api/admin/stores/:id/labor-rule  (upsert)
// -------------------------------------------------
func UpsertLaborRuleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var storeID uint
		if _, err := fmt.Sscan(c.Params("id"), &storeID); err != nil || storeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mağaza id")
		}

		var body LaborRuleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.FederalMaxWeekly <= 0 {
			body.FederalMaxWeekly = 40
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		// Mağaza organizasyon kapsamında mı?
		var store models.Store
		if err := database.DB.Where("id = ? AND organization_id = ?", storeID, identity.OrganizationID).First(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mağaza bulunamadı")
		}

		var rule models.LaborRule
		err = database.DB.Where("store_id = ? AND organization_id = ?", storeID, identity.OrganizationID).First(&rule).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rule = models.LaborRule{
				OrganizationID:         identity.OrganizationID,
				StoreID:                storeID,
				FederalMaxWeekly:       body.FederalMaxWeekly,
				StateMaxWeekly:         body.StateMaxWeekly,
				StoreMaxWeekly:         body.StoreMaxWeekly,
				OvertimeThresholdDaily: body.OvertimeThresholdDaily,
			}
			if err := database.DB.Create(&rule).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Çalışma kuralı oluşturulamadı")
			}
			return c.Status(fiber.StatusCreated).JSON(buildLaborRuleResponse(rule))
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışma kuralı sorgulanamadı")
		}

		rule.FederalMaxWeekly = body.FederalMaxWeekly
		rule.StateMaxWeekly = body.StateMaxWeekly
		rule.StoreMaxWeekly = body.StoreMaxWeekly
		rule.OvertimeThresholdDaily = body.OvertimeThresholdDaily

		if err := database.DB.Save(&rule).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Çalışma kuralı güncellenemedi")
		}

		return c.JSON(buildLaborRuleResponse(rule))
	}
}
