package admin

import (
	"strings"

	"pdks-backend/internal/auth"
	"pdks-backend/internal/database"
	"pdks-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type StoreResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

type CreateStoreRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"` // Opsiyonel
}

type UpdateStoreRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"` // Opsiyonel
}

type CreateStoreStaffRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // store_admin | employee, boşsa employee
}

type StoreStaffResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	StoreID   *uint  `json:"store_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func buildStoreResponse(store models.Store) StoreResponse {
	return StoreResponse{
		ID:        store.ID,
		Name:      store.Name,
		Address:   store.Address,
		Phone:     store.Phone,
		CreatedAt: store.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ----------------------------------------
// MAĞAZA CRUD
// ----------------------------------------

func CreateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Mağaza adı boş olamaz")
		}

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		store := models.Store{
			OrganizationID: identity.OrganizationID,
			Name:           body.Name,
			Address:        body.Address,
		}
		if body.Phone != nil {
			store.Phone = strings.TrimSpace(*body.Phone)
		}

		if err := database.DB.Create(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mağaza oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(buildStoreResponse(store))
	}
}

func ListStoresHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var stores []models.Store
		if err := database.DB.Where("organization_id = ?", identity.OrganizationID).Find(&stores).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mağazalar listelenemedi")
		}

		res := make([]StoreResponse, 0, len(stores))
		for _, s := range stores {
			res = append(res, buildStoreResponse(s))
		}

		return c.JSON(res)
	}
}

func GetStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var store models.Store
		if err := database.DB.Where("id = ? AND organization_id = ?", id, identity.OrganizationID).First(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mağaza bulunamadı")
		}

		return c.JSON(buildStoreResponse(store))
	}
}

func UpdateStoreHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var store models.Store
		if err := database.DB.Where("id = ? AND organization_id = ?", id, identity.OrganizationID).First(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mağaza bulunamadı")
		}

		var body UpdateStoreRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Mağaza adı boş olamaz")
			}
			store.Name = name
		}

		if body.Address != nil {
			store.Address = *body.Address
		}

		if body.Phone != nil {
			store.Phone = strings.TrimSpace(*body.Phone)
		}

		if err := database.DB.Save(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Mağaza güncellenemedi")
		}

		return c.JSON(buildStoreResponse(store))
	}
}

// ----------------------------------------
// MAĞAZA PERSONELİ
// ----------------------------------------

func CreateStoreStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("id")

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		// Mağaza kontrolü
		var store models.Store
		if err := database.DB.Where("id = ? AND organization_id = ?", storeID, identity.OrganizationID).First(&store).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mağaza bulunamadı")
		}

		var body CreateStoreStaffRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri gönderildi")
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İsim, email ve şifre zorunlu")
		}

		role := models.UserRole(body.Role)
		if body.Role == "" {
			role = models.RoleEmployee
		}
		if role != models.RoleStoreAdmin && role != models.RoleEmployee {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz rol (store_admin|employee)")
		}

		// Email kontrolü
		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Bu email zaten kayıtlı")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		user := models.User{
			OrganizationID: identity.OrganizationID,
			Name:           body.Name,
			Email:          body.Email,
			PasswordHash:   string(hash),
			Role:           role,
			StoreID:        &store.ID,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"role":     user.Role,
			"store_id": user.StoreID,
		})
	}
}

// ----------------------------------------
// MAĞAZA PERSONELİNİ LİSTELE
// GET /api/admin/stores/:id/staff
// ----------------------------------------

func ListStoreStaffHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeID := c.Params("id")

		identity, err := auth.IdentityFromCtx(c)
		if err != nil {
			return err
		}

		var users []models.User
		if err := database.DB.
			Where("store_id = ? AND organization_id = ?", storeID, identity.OrganizationID).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Personel listelenemedi")
		}

		res := make([]StoreStaffResponse, 0, len(users))
		for _, u := range users {
			res = append(res, StoreStaffResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      string(u.Role),
				StoreID:   u.StoreID,
				CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt: u.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(res)
	}
}
