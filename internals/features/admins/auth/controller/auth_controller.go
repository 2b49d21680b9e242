package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/admins/auth/dto"
	"techclub_backend/internals/features/admins/auth/service"
	documentationModel "techclub_backend/internals/features/documentations/model"
	eventModel "techclub_backend/internals/features/events/model"
	posterModel "techclub_backend/internals/features/posters/model"
	registrationModel "techclub_backend/internals/features/registrations/model"
	helper "techclub_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// 🟢 POST /api/admin/login {username, password}
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	token, admin, err := service.Login(ctrl.DB, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
		}
		log.Printf("[ERROR] Login gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	})
}

// 🟢 POST /api/admin/login-google {id_token}
func (ctrl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	token, admin, err := service.GoogleLogin(ctrl.DB, req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidGoogleToken):
			return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
		case errors.Is(err, service.ErrAdminNotRegistered):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Akun tidak terdaftar sebagai admin")
		default:
			log.Printf("[ERROR] Login Google gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	})
}

// 🟢 POST /api/admin/logout (bearer)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("admin_token").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if err := service.Logout(ctrl.DB, tokenString); err != nil {
		log.Printf("[ERROR] Logout gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses logout")
	}

	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🟢 GET /api/admin/dashboard (bearer)
// Dipakai frontend sebagai probe token sekaligus ringkasan angka.
func (ctrl *AuthController) Dashboard(c *fiber.Ctx) error {
	var (
		eventCount         int64
		registrationCount  int64
		documentationCount int64
		posterCount        int64
	)

	if err := ctrl.DB.Model(&eventModel.EventModel{}).Count(&eventCount).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}
	ctrl.DB.Model(&registrationModel.RegistrationModel{}).Count(&registrationCount)
	ctrl.DB.Model(&documentationModel.DocumentationModel{}).Count(&documentationCount)
	ctrl.DB.Model(&posterModel.PosterModel{}).Count(&posterCount)

	return helper.JsonOK(c, "Ringkasan berhasil diambil", fiber.Map{
		"admin_username":      c.Locals("admin_username"),
		"total_events":        eventCount,
		"total_registrations": registrationCount,
		"total_documentation": documentationCount,
		"total_posters":       posterCount,
	})
}
