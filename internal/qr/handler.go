package qr

import (
	"fmt"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type QRCodeResponse struct {
	ID        uint    `json:"id"`
	StoreID   uint    `json:"store_id"`
	StoreName string  `json:"store_name"`
	Code      string  `json:"code"`
	IsActive  bool    `json:"is_active"`
	CreatedAt string  `json:"created_at"`
	ExpiresAt *string `json:"expires_at"`
}

func buildQRResponse(q models.QRCode) QRCodeResponse {
	// Mağaza adını çöz (gösterim için)
	storeName := "Unknown"
	var store models.Store
	if err := database.DB.Select("name").First(&store, "id = ?", q.StoreID).Error; err == nil {
		storeName = store.Name
	}

	var expiresAt *string
	if q.ExpiresAt != nil {
		formatted := q.ExpiresAt.Format("2006-01-02 15:04:05")
		expiresAt = &formatted
	}

	return QRCodeResponse{
		ID:        q.ID,
		StoreID:   q.StoreID,
		StoreName: storeName,
		Code:      q.Code,
		IsActive:  q.IsActive,
		CreatedAt: q.CreatedAt.Format("2006-01-02 15:04:05"),
		ExpiresAt: expiresAt,
	}
}

// -------------------------------------------------
// POST /api/admin/stores/:id/qr
// -------------------------------------------------
func IssueQRHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var storeID uint
		if _, err := fmt.Sscan(c.Params("id"), &storeID); err != nil || storeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mağaza id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		q, err := Issue(database.DB, storeID, identity.OrganizationID, identity.UserID)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(buildQRResponse(q))
	}
}

// -------------------------------------------------
// POST /api/admin/qr/:id/regenerate
// -------------------------------------------------
func RegenerateQRHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var qrID uint
		if _, err := fmt.Sscan(c.Params("id"), &qrID); err != nil || qrID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz QR id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		q, err := Regenerate(database.DB, qrID, identity.OrganizationID, identity.UserID)
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(buildQRResponse(q))
	}
}

// -------------------------------------------------
// GET /api/admin/stores/:id/qr
// -------------------------------------------------
func GetStoreQRHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var storeID uint
		if _, err := fmt.Sscan(c.Params("id"), &storeID); err != nil || storeID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mağaza id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		q, err := ActiveFor(database.DB, storeID, identity.OrganizationID)
		if err != nil {
			return err
		}
		if q == nil {
			return fiber.NewError(fiber.StatusNotFound, "Bu mağaza için aktif QR kodu yok")
		}

		return c.JSON(buildQRResponse(*q))
	}
}
