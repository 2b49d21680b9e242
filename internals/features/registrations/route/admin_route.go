package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/registrations/controller"
)

func RegistrationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	registrationCtrl := controller.NewRegistrationAdminController(db)

	admin.Get("/registrations", registrationCtrl.GetRegistrations)
	admin.Delete("/registrations/:id", registrationCtrl.DeleteRegistration)
}
