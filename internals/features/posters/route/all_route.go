package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/posters/controller"
)

func AllPosterRoutes(api fiber.Router, db *gorm.DB) {
	posterCtrl := controller.NewPosterController(db)

	api.Get("/posters", posterCtrl.GetPosters)
}
