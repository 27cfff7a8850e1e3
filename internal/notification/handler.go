package notification

import (
	"fmt"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type NotificationResponse struct {
	ID         uint                    `json:"id"`
	Type       models.NotificationType `json:"type"`
	Title      string                  `json:"title"`
	Body       string                  `json:"body"`
	EntityType string                  `json:"entity_type"`
	EntityID   uint                    `json:"entity_id"`
	IsRead     bool                    `json:"is_read"`
	CreatedAt  string                  `json:"created_at"`
}

// -------------------------------------------------
// GET /api/notifications?page=&per_page=
// -------------------------------------------------
func ListNotificationsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		page := c.QueryInt("page", 1)
		perPage := c.QueryInt("per_page", 20)
		if page < 1 {
			page = 1
		}
		if perPage < 1 || perPage > 100 {
			perPage = 20
		}

		dbq := database.DB.Model(&models.Notification{}).Where("user_id = ?", identity.UserID)

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirimler sayılamadı")
		}

		var notifications []models.Notification
		err = dbq.Order("created_at DESC").
			Offset((page - 1) * perPage).
			Limit(perPage).
			Find(&notifications).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirimler listelenemedi")
		}

		items := make([]NotificationResponse, 0, len(notifications))
		for _, n := range notifications {
			items = append(items, NotificationResponse{
				ID:         n.ID,
				Type:       n.Type,
				Title:      n.Title,
				Body:       n.Body,
				EntityType: n.EntityType,
				EntityID:   n.EntityID,
				IsRead:     n.IsRead,
				CreatedAt:  n.CreatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(fiber.Map{
			"items":    items,
			"total":    total,
			"page":     page,
			"per_page": perPage,
		})
	}
}

// -------------------------------------------------
// GET /api/notifications/unread-count
// -------------------------------------------------
func UnreadCountHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var count int64
		err = database.DB.Model(&models.Notification{}).
			Where("user_id = ? AND is_read = ?", identity.UserID, false).
			Count(&count).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirim sayısı alınamadı")
		}

		return c.JSON(fiber.Map{"unread_count": count})
	}
}

// -------------------------------------------------
// POST /api/notifications/:id/read
// -------------------------------------------------
func MarkReadHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var id uint
		if _, err := fmt.Sscan(c.Params("id"), &id); err != nil || id == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz bildirim id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		res := database.DB.Model(&models.Notification{}).
			Where("id = ? AND user_id = ?", id, identity.UserID).
			Update("is_read", true)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Bildirim güncellenemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Bildirim bulunamadı")
		}

		return c.JSON(fiber.Map{"ok": true})
	}
}
