package main

import (
	"errors"
	"log"
	"strings"

	"pdks-backend/internal/admin"
	"pdks-backend/internal/apperr"
	"pdks-backend/internal/attendance"
	"pdks-backend/internal/auth"
	"pdks-backend/internal/config"
	"pdks-backend/internal/correction"
	"pdks-backend/internal/database"
	"pdks-backend/internal/labor"
	"pdks-backend/internal/models"
	"pdks-backend/internal/notification"
	"pdks-backend/internal/qr"
	"pdks-backend/internal/summary"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Servis katmanının sabit hata türleri
			var appErr *apperr.Error
			if errors.As(err, &appErr) {
				return c.Status(apperr.HTTPStatus(appErr.Kind)).JSON(fiber.Map{
					"kind":  appErr.Kind,
					"error": appErr.Message,
				})
			}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Mesai (tüm personel)
	protected.Post("/attendance/scan", attendance.ScanHandler())
	protected.Get("/attendance/today", attendance.TodayHandler())

	// Bildirimler
	protected.Get("/notifications", notification.ListNotificationsHandler())
	protected.Get("/notifications/unread-count", notification.UnreadCountHandler())
	protected.Post("/notifications/:id/read", notification.MarkReadHandler())

	// Yönetici route'ları (store_admin ve üzeri, sıralı öncelik kontrolü)
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireMinPriority(models.RoleStoreAdmin.Priority()))

	// Mağaza yönetimi
	adminRoutes.Post("/stores", admin.CreateStoreHandler())
	adminRoutes.Get("/stores", admin.ListStoresHandler())
	adminRoutes.Get("/stores/:id", admin.GetStoreHandler())
	adminRoutes.Put("/stores/:id", admin.UpdateStoreHandler())
	adminRoutes.Post("/stores/:id/staff", admin.CreateStoreStaffHandler())
	adminRoutes.Get("/stores/:id/staff", admin.ListStoreStaffHandler())

	// QR kod yönetimi
	adminRoutes.Post("/stores/:id/qr", qr.IssueQRHandler())
	adminRoutes.Get("/stores/:id/qr", qr.GetStoreQRHandler())
	adminRoutes.Post("/qr/:id/regenerate", qr.RegenerateQRHandler())

	// Çalışma kuralları
	adminRoutes.Get("/stores/:id/labor-rule", labor.GetLaborRuleHandler())
	adminRoutes.Put("/stores/:id/labor-rule", labor.UpsertLaborRuleHandler())

	// Mesai kayıtları (haftalık özet route'ları :id route'undan ÖNCE)
	adminRoutes.Get("/attendances/summary/weekly", summary.WeeklySummaryHandler())
	adminRoutes.Get("/attendances/overtime-alerts", summary.OvertimeAlertsHandler())
	adminRoutes.Get("/attendances", attendance.ListAttendancesHandler())
	adminRoutes.Get("/attendances/:id", attendance.GetAttendanceHandler())

	// Mesai düzeltmeleri
	adminRoutes.Post("/attendances/:id/corrections", correction.CreateCorrectionHandler())
	adminRoutes.Get("/attendances/:id/corrections", correction.ListCorrectionsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
