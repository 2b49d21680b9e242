package controller

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"techclub_backend/internals/features/documentations/dto"
	"techclub_backend/internals/features/documentations/model"
	"techclub_backend/internals/features/documentations/service"
	helper "techclub_backend/internals/helpers"
)

type DocumentationController struct {
	DB *gorm.DB
}

func NewDocumentationController(db *gorm.DB) *DocumentationController {
	return &DocumentationController{DB: db}
}

// 🟢 GET /api/documentations?category=&year=&q=
// Filter dijalankan di memori di atas hasil query penuh supaya perilakunya
// identik dengan filter murni yang dipakai UI.
func (ctrl *DocumentationController) GetDocumentations(c *fiber.Ctx) error {
	var docs []model.DocumentationModel
	if err := ctrl.DB.Order("documentation_year DESC, documentation_created_at DESC").Find(&docs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil dokumentasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumentasi")
	}

	year, _ := strconv.Atoi(c.Query("year"))
	filtered := service.FilterDocumentations(docs, c.Query("category", "all"), year, c.Query("q"))

	return helper.JsonList(c, "Data dokumentasi berhasil diambil", dto.ToDocumentationResponseList(filtered), nil)
}

// 🟢 GET /api/documentations/:id
func (ctrl *DocumentationController) GetDocumentationByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var doc model.DocumentationModel
	if err := ctrl.DB.Where("documentation_id = ?", id).First(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumentasi tidak ditemukan")
	}

	return helper.JsonOK(c, "Data dokumentasi berhasil diambil", dto.ToDocumentationResponse(&doc))
}
