package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/registrations/controller"
	"techclub_backend/internals/middlewares"
)

func AllRegistrationRoutes(api fiber.Router, db *gorm.DB) {
	registrationCtrl := controller.NewRegistrationController(db)

	api.Post("/registrations", middlewares.RegistrationRateLimiter(), registrationCtrl.CreateRegistration)
}
