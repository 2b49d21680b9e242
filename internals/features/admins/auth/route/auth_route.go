package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/admins/auth/controller"
	"techclub_backend/internals/middlewares"
)

// AuthRoutes didaftarkan pada group /api/admin TANPA middleware auth,
// khusus endpoint yang memang diakses sebelum punya token.
func AuthRoutes(admin fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	admin.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	admin.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
}

// ProtectedAuthRoutes didaftarkan pada group yang sudah melewati
// AdminAuthMiddleware.
func ProtectedAuthRoutes(admin fiber.Router, db *gorm.DB) {
	authCtrl := controller.NewAuthController(db)

	admin.Post("/logout", authCtrl.Logout)
	admin.Get("/dashboard", authCtrl.Dashboard)
}
