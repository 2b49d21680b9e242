package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "techclub_backend/internals/features/admins/auth/route"
	documentationRoute "techclub_backend/internals/features/documentations/route"
	eventRoute "techclub_backend/internals/features/events/route"
	posterRoute "techclub_backend/internals/features/posters/route"
	registrationRoute "techclub_backend/internals/features/registrations/route"
	authMiddleware "techclub_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh route aplikasi.
// /api        → endpoint publik
// /api/admin  → login (tanpa auth) + seluruh endpoint admin (bearer)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	eventRoute.AllEventRoutes(api, db)
	posterRoute.AllPosterRoutes(api, db)
	documentationRoute.AllDocumentationRoutes(api, db)
	registrationRoute.AllRegistrationRoutes(api, db)

	// login harus bisa diakses sebelum punya token
	authRoute.AuthRoutes(app.Group("/api/admin"), db)

	admin := app.Group("/api/admin", authMiddleware.AdminAuthMiddleware(db))
	authRoute.ProtectedAuthRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	documentationRoute.DocumentationAdminRoutes(admin, db)
	posterRoute.PosterAdminRoutes(admin, db)
	registrationRoute.RegistrationAdminRoutes(admin, db)
}
