package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/events/controller"
)

// Semua route di sini sudah berada di belakang AdminAuthMiddleware.
func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventAdminController(db)
	events := admin.Group("/events")
	events.Get("/", eventCtrl.GetEvents)
	events.Post("/", eventCtrl.CreateEvent)
	events.Put("/:id", eventCtrl.UpdateEvent)
	events.Delete("/:id", eventCtrl.DeleteEvent)
}
