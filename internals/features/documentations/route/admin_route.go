package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/documentations/controller"
)

func DocumentationAdminRoutes(admin fiber.Router, db *gorm.DB) {
	documentationCtrl := controller.NewDocumentationAdminController(db)

	admin.Get("/documentations", documentationCtrl.GetDocumentations)
	admin.Post("/documentations", documentationCtrl.CreateDocumentation)
	admin.Put("/documentations/:id", documentationCtrl.UpdateDocumentation)
	admin.Delete("/documentations/:id", documentationCtrl.DeleteDocumentation)
}
