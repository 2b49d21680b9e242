package controller

import (
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"techclub_backend/internals/constants"
	"techclub_backend/internals/features/documentations/dto"
	"techclub_backend/internals/features/documentations/model"
	helper "techclub_backend/internals/helpers"
	"techclub_backend/internals/helpers/storage"
)

type DocumentationAdminController struct {
	DB *gorm.DB
}

func NewDocumentationAdminController(db *gorm.DB) *DocumentationAdminController {
	return &DocumentationAdminController{DB: db}
}

// 🟢 GET /api/admin/documentations?page=&per_page=
func (ctrl *DocumentationAdminController) GetDocumentations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.DocumentationModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung dokumentasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumentasi")
	}

	var docs []model.DocumentationModel
	if err := ctrl.DB.
		Order("documentation_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&docs).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil dokumentasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dokumentasi")
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Data dokumentasi berhasil diambil", dto.ToDocumentationResponseList(docs), &pagination)
}

// 🟢 POST /api/admin/documentations
// Multipart: category, event_title, year, description, event_id (opsional),
// images[] (0..10 file gambar).
func (ctrl *DocumentationAdminController) CreateDocumentation(c *fiber.Ctx) error {
	var req dto.DocumentationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if fieldErrs := helper.ValidateStruct(&req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !constants.IsValidCategory(req.Category) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
	}

	var eventID *uuid.UUID
	if strings.TrimSpace(req.EventID) != "" {
		parsed, err := uuid.Parse(req.EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
		}
		eventID = &parsed
	}

	files := formImageFiles(c)
	if len(files) > constants.MaxDocumentationImages {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Maksimal %d gambar per dokumentasi", constants.MaxDocumentationImages))
	}
	for _, fh := range files {
		if err := helper.ValidateImageUpload(fh); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	// semua file sudah lolos validasi, baru mulai menyimpan
	stored := make([]string, 0, len(files))
	for _, fh := range files {
		path, err := storage.SaveImage("documentations", fh)
		if err != nil {
			deleteStoredImages(stored)
			log.Printf("[ERROR] Gagal menyimpan gambar dokumentasi: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		stored = append(stored, path)
	}

	doc := &model.DocumentationModel{
		DocumentationEventID:     eventID,
		DocumentationCategory:    req.Category,
		DocumentationEventTitle:  req.EventTitle,
		DocumentationYear:        req.Year,
		DocumentationDescription: req.Description,
		DocumentationImages:      dto.EncodeImages(stored),
	}

	if err := ctrl.DB.Create(doc).Error; err != nil {
		deleteStoredImages(stored)
		log.Printf("[ERROR] Gagal menyimpan dokumentasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan dokumentasi")
	}

	return helper.JsonCreated(c, "Dokumentasi berhasil ditambahkan", dto.ToDocumentationResponse(doc))
}

// 🟢 PUT /api/admin/documentations/:id
// keep_images[] berisi path lama yang dipertahankan; file baru dikirim
// sebagai images[]. Total keduanya tetap dibatasi 10.
func (ctrl *DocumentationAdminController) UpdateDocumentation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var doc model.DocumentationModel
	if err := ctrl.DB.Where("documentation_id = ?", id).First(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumentasi tidak ditemukan")
	}

	var req dto.DocumentationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] Body parser gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		if !constants.IsValidCategory(*req.Category) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kategori tidak dikenal")
		}
		updates["documentation_category"] = *req.Category
	}
	if req.EventTitle != nil {
		updates["documentation_event_title"] = *req.EventTitle
	}
	if req.Year != nil {
		if *req.Year <= 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
		}
		updates["documentation_year"] = *req.Year
	}
	if req.Description != nil {
		updates["documentation_description"] = *req.Description
	}
	if req.EventID != nil {
		if strings.TrimSpace(*req.EventID) == "" {
			updates["documentation_event_id"] = nil
		} else {
			parsed, perr := uuid.Parse(*req.EventID)
			if perr != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
			}
			updates["documentation_event_id"] = parsed
		}
	}

	existing := dto.DecodeImages(doc.DocumentationImages)
	kept := existing
	imagesTouched := false
	if form, ferr := c.MultipartForm(); ferr == nil && form != nil {
		if _, ok := form.Value["keep_images[]"]; ok {
			imagesTouched = true
			kept = intersectPaths(existing, form.Value["keep_images[]"])
		} else if _, ok := form.Value["keep_images"]; ok {
			imagesTouched = true
			kept = intersectPaths(existing, form.Value["keep_images"])
		}
	}

	newFiles := formImageFiles(c)
	if len(kept)+len(newFiles) > constants.MaxDocumentationImages {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Maksimal %d gambar per dokumentasi", constants.MaxDocumentationImages))
	}
	for _, fh := range newFiles {
		if err := helper.ValidateImageUpload(fh); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	added := make([]string, 0, len(newFiles))
	for _, fh := range newFiles {
		path, serr := storage.SaveImage("documentations", fh)
		if serr != nil {
			deleteStoredImages(added)
			log.Printf("[ERROR] Gagal menyimpan gambar dokumentasi: %v", serr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		added = append(added, path)
	}

	if imagesTouched || len(added) > 0 {
		updates["documentation_images"] = dto.EncodeImages(append(kept, added...))
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&doc).Updates(updates).Error; err != nil {
			deleteStoredImages(added)
			log.Printf("[ERROR] Gagal memperbarui dokumentasi: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui dokumentasi")
		}
	}

	// gambar lama yang tidak dipertahankan baru boleh dihapus setelah
	// update-nya tersimpan
	if imagesTouched {
		keptSet := map[string]bool{}
		for _, p := range kept {
			keptSet[p] = true
		}
		for _, p := range existing {
			if !keptSet[p] {
				storage.Delete(p)
			}
		}
	}

	if err := ctrl.DB.Where("documentation_id = ?", id).First(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca dokumentasi")
	}

	return helper.JsonUpdated(c, "Dokumentasi berhasil diperbarui", dto.ToDocumentationResponse(&doc))
}

// 🟢 DELETE /api/admin/documentations/:id
func (ctrl *DocumentationAdminController) DeleteDocumentation(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var doc model.DocumentationModel
	if err := ctrl.DB.Where("documentation_id = ?", id).First(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Dokumentasi tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&doc).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus dokumentasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus dokumentasi")
	}

	deleteStoredImages(dto.DecodeImages(doc.DocumentationImages))

	return helper.JsonDeleted(c, "Dokumentasi berhasil dihapus", fiber.Map{
		"documentation_id": doc.DocumentationID,
	})
}

func formImageFiles(c *fiber.Ctx) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil || form.File == nil {
		return nil
	}
	if files, ok := form.File["images[]"]; ok {
		return files
	}
	return form.File["images"]
}

// intersectPaths mempertahankan urutan requested, tapi hanya path yang
// memang milik record ini (mencegah penghapusan file record lain).
func intersectPaths(existing, requested []string) []string {
	owned := map[string]bool{}
	for _, p := range existing {
		owned[p] = true
	}
	out := make([]string, 0, len(requested))
	for _, p := range requested {
		p = strings.TrimSpace(p)
		if p != "" && owned[p] {
			out = append(out, p)
		}
	}
	return out
}

func deleteStoredImages(paths []string) {
	for _, p := range paths {
		storage.Delete(p)
	}
}
