package auth

import (
	"fmt"
	"strings"

	"pdks-backend/internal/config"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserIDKey   = "user_id"
	CtxOrgIDKey    = "organization_id"
	CtxUserRoleKey = "user_role"
	CtxStoreIDKey  = "store_id"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization header eksik")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization formatı 'Bearer <token>' olmalı")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("geçersiz imzalama yöntemi")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Geçersiz veya süresi dolmuş token")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Token çözümlenemedi")
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxOrgIDKey, claims.OrganizationID)
		c.Locals(CtxUserRoleKey, claims.Role)
		c.Locals(CtxStoreIDKey, claims.StoreID)

		return c.Next()
	}
}

// RequireMinPriority - Sıralı yetki kontrolü: kullanıcının rol önceliği
// verilen eşiğin altındaysa istek reddedilir.
func RequireMinPriority(minPriority int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxUserRoleKey)
		role, ok := roleVal.(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Rol bilgisi alınamadı")
		}

		if role.Priority() < minPriority {
			return fiber.NewError(fiber.StatusForbidden, "Bu işlem için yetkiniz yok")
		}
		return c.Next()
	}
}

// Identity - JWT middleware'in locals'a koyduğu kimlik bilgisi.
type Identity struct {
	UserID         uint
	OrganizationID uint
	Role           models.UserRole
	StoreID        *uint
}

// IdentityFromCtx - Handler'larda kimlik bilgisini tek seferde çekmek için.
func IdentityFromCtx(c *fiber.Ctx) (Identity, error) {
	userID, ok := c.Locals(CtxUserIDKey).(uint)
	if !ok {
		return Identity{}, fiber.NewError(fiber.StatusForbidden, "Kullanıcı bilgisi alınamadı")
	}
	orgID, ok := c.Locals(CtxOrgIDKey).(uint)
	if !ok {
		return Identity{}, fiber.NewError(fiber.StatusForbidden, "Organizasyon bilgisi alınamadı")
	}

	id := Identity{UserID: userID, OrganizationID: orgID}
	if role, ok := c.Locals(CtxUserRoleKey).(models.UserRole); ok {
		id.Role = role
	}
	if storeID, ok := c.Locals(CtxStoreIDKey).(*uint); ok {
		id.StoreID = storeID
	}
	return id, nil
}
