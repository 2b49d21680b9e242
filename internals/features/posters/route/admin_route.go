package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/posters/controller"
)

func PosterAdminRoutes(admin fiber.Router, db *gorm.DB) {
	posterCtrl := controller.NewPosterAdminController(db)

	admin.Get("/posters", posterCtrl.GetPosters)
	admin.Post("/posters", posterCtrl.CreatePoster)
	admin.Put("/posters/:id", posterCtrl.UpdatePoster)
	admin.Delete("/posters/:id", posterCtrl.DeletePoster)
}
