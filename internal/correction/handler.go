package correction

import (
	"fmt"

	"pdks-backend/internal/attendance"
	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateCorrectionRequest struct {
	FieldName      string `json:"field_name"`
	CorrectedValue string `json:"corrected_value"` // ISO-8601
	Reason         string `json:"reason"`
}

type CorrectionResponse struct {
	ID              uint    `json:"id"`
	AttendanceID    uint    `json:"attendance_id"`
	FieldName       string  `json:"field_name"`
	OriginalValue   *string `json:"original_value"`
	CorrectedValue  string  `json:"corrected_value"`
	Reason          string  `json:"reason"`
	CorrectedBy     uint    `json:"corrected_by"`
	CorrectedByName string  `json:"corrected_by_name"`
	CreatedAt       string  `json:"created_at"`
}

func buildCorrectionResponse(entry models.AttendanceCorrection) CorrectionResponse {
	// Düzelten kullanıcının adını çöz
	correctedByName := "Unknown"
	var user models.User
	if err := database.DB.Select("name").First(&user, "id = ?", entry.CorrectedBy).Error; err == nil {
		correctedByName = user.Name
	}

	return CorrectionResponse{
		ID:              entry.ID,
		AttendanceID:    entry.AttendanceID,
		FieldName:       entry.FieldName,
		OriginalValue:   entry.OriginalValue,
		CorrectedValue:  entry.CorrectedValue,
		Reason:          entry.Reason,
		CorrectedBy:     entry.CorrectedBy,
		CorrectedByName: correctedByName,
		CreatedAt:       entry.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// -------------------------------------------------
// POST /api/admin/attendances/:id/corrections
// -------------------------------------------------
func CreateCorrectionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var attendanceID uint
		if _, err := fmt.Sscan(c.Params("id"), &attendanceID); err != nil || attendanceID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mesai id")
		}

		var body CreateCorrectionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		entry, err := Correct(database.DB, CorrectInput{
			AttendanceID:   attendanceID,
			OrganizationID: identity.OrganizationID,
			FieldName:      body.FieldName,
			CorrectedValue: body.CorrectedValue,
			Reason:         body.Reason,
			CorrectedBy:    identity.UserID,
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(buildCorrectionResponse(entry))
	}
}

// -------------------------------------------------
// GET /api/admin/attendances/:id/corrections
// -------------------------------------------------
func ListCorrectionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var attendanceID uint
		if _, err := fmt.Sscan(c.Params("id"), &attendanceID); err != nil || attendanceID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz mesai id")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		// Kayıt organizasyon kapsamında mı?
		if _, err := attendance.GetByID(database.DB, attendanceID, identity.OrganizationID); err != nil {
			return err
		}

		entries, err := ListForRecord(database.DB, attendanceID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Düzeltme geçmişi listelenemedi")
		}

		resp := make([]CorrectionResponse, 0, len(entries))
		for _, entry := range entries {
			resp = append(resp, buildCorrectionResponse(entry))
		}

		return c.JSON(resp)
	}
}
