package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/documentations/controller"
)

func AllDocumentationRoutes(api fiber.Router, db *gorm.DB) {
	documentationCtrl := controller.NewDocumentationController(db)

	api.Get("/documentations", documentationCtrl.GetDocumentations)
	api.Get("/documentations/:id", documentationCtrl.GetDocumentationByID)
}
