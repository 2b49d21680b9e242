package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"techclub_backend/internals/features/posters/dto"
	"techclub_backend/internals/features/posters/model"
	"techclub_backend/internals/features/posters/service"
	helper "techclub_backend/internals/helpers"
)

type PosterController struct {
	DB *gorm.DB
}

func NewPosterController(db *gorm.DB) *PosterController {
	return &PosterController{DB: db}
}

// 🟢 GET /api/posters?type=
func (ctrl *PosterController) GetPosters(c *fiber.Ctx) error {
	var posters []model.PosterModel
	if err := ctrl.DB.Order("poster_created_at DESC").Find(&posters).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poster")
	}

	filtered := service.FilterPosters(posters, c.Query("type"))

	return helper.JsonList(c, "Data poster berhasil diambil", dto.ToPosterResponseList(filtered), nil)
}
