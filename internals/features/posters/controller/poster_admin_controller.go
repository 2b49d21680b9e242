package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"techclub_backend/internals/features/posters/dto"
	"techclub_backend/internals/features/posters/model"
	helper "techclub_backend/internals/helpers"
	"techclub_backend/internals/helpers/storage"
)

type PosterAdminController struct {
	DB *gorm.DB
}

func NewPosterAdminController(db *gorm.DB) *PosterAdminController {
	return &PosterAdminController{DB: db}
}

// 🟢 GET /api/admin/posters?page=&per_page=
func (ctrl *PosterAdminController) GetPosters(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.PosterModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poster")
	}

	var posters []model.PosterModel
	if err := ctrl.DB.
		Order("poster_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&posters).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data poster")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Data poster berhasil diambil", dto.ToPosterResponseList(posters), &pagination)
}

// 🟢 POST /api/admin/posters
// Multipart: title, type, date, image (tepat satu file gambar).
func (ctrl *PosterAdminController) CreatePoster(c *fiber.Ctx) error {
	var req dto.PosterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	imageFile, err := c.FormFile("image")
	if err != nil || imageFile == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gambar poster wajib diunggah")
	}
	if err := helper.ValidateImageUpload(imageFile); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	imagePath, err := storage.SaveImage("posters", imageFile)
	if err != nil {
		log.Printf("[ERROR] Gagal menyimpan gambar poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
	}

	poster := &model.PosterModel{
		PosterTitle: req.Title,
		PosterType:  req.Type,
		PosterImage: imagePath,
		PosterDate:  req.Date,
	}

	if err := ctrl.DB.Create(poster).Error; err != nil {
		storage.Delete(imagePath)
		log.Printf("[ERROR] Gagal menyimpan poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan poster")
	}

	return helper.JsonCreated(c, "Poster berhasil ditambahkan", dto.ToPosterResponse(poster))
}

// 🟢 PUT /api/admin/posters/:id
func (ctrl *PosterAdminController) UpdatePoster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var poster model.PosterModel
	if err := ctrl.DB.Where("poster_id = ?", id).First(&poster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Poster tidak ditemukan")
	}

	var req dto.PosterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["poster_title"] = *req.Title
	}
	if req.Type != nil {
		updates["poster_type"] = *req.Type
	}
	if req.Date != nil {
		updates["poster_date"] = *req.Date
	}

	oldImage := ""
	if imageFile, ferr := c.FormFile("image"); ferr == nil && imageFile != nil {
		if err := helper.ValidateImageUpload(imageFile); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		imagePath, serr := storage.SaveImage("posters", imageFile)
		if serr != nil {
			log.Printf("[ERROR] Gagal menyimpan gambar poster: %v", serr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		oldImage = poster.PosterImage
		updates["poster_image"] = imagePath
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&poster).Updates(updates).Error; err != nil {
			if newPath, ok := updates["poster_image"].(string); ok {
				storage.Delete(newPath)
			}
			log.Printf("[ERROR] Gagal memperbarui poster: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui poster")
		}
		if oldImage != "" {
			storage.Delete(oldImage)
		}
	}

	if err := ctrl.DB.Where("poster_id = ?", id).First(&poster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca poster")
	}

	return helper.JsonUpdated(c, "Poster berhasil diperbarui", dto.ToPosterResponse(&poster))
}

// 🟢 DELETE /api/admin/posters/:id
func (ctrl *PosterAdminController) DeletePoster(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var poster model.PosterModel
	if err := ctrl.DB.Where("poster_id = ?", id).First(&poster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Poster tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&poster).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus poster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus poster")
	}

	storage.Delete(poster.PosterImage)

	return helper.JsonDeleted(c, "Poster berhasil dihapus", fiber.Map{
		"poster_id": poster.PosterID,
	})
}
