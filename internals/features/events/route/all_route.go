package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/events/controller"
)

func AllEventRoutes(api fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	event := api.Group("/events")
	event.Get("/", eventCtrl.GetEvents)
	event.Get("/:id", eventCtrl.GetEventByID)
}
