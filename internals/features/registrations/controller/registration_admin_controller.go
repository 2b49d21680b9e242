package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "techclub_backend/internals/features/events/model"
	"techclub_backend/internals/features/registrations/dto"
	"techclub_backend/internals/features/registrations/model"
	helper "techclub_backend/internals/helpers"
	"techclub_backend/internals/helpers/storage"
)

type RegistrationAdminController struct {
	DB *gorm.DB
}

func NewRegistrationAdminController(db *gorm.DB) *RegistrationAdminController {
	return &RegistrationAdminController{DB: db}
}

// 🟢 GET /api/admin/registrations?event_id=...&page=&per_page=
func (ctrl *RegistrationAdminController) GetRegistrations(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	query := ctrl.DB.Model(&model.RegistrationModel{})

	eventTitles := map[uuid.UUID]string{}
	if raw := c.Query("event_id"); raw != "" {
		eventID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Event ID tidak valid")
		}
		query = query.Where("registration_event_id = ?", eventID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal menghitung registrasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data registrasi")
	}

	var registrations []model.RegistrationModel
	if err := query.
		Order("registration_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&registrations).Error; err != nil {
		log.Printf("[ERROR] Gagal mengambil registrasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data registrasi")
	}

	// judul event dilookup sekali per ID, bukan per baris
	ids := make([]uuid.UUID, 0, len(registrations))
	seen := map[uuid.UUID]bool{}
	for _, r := range registrations {
		if !seen[r.RegistrationEventID] {
			seen[r.RegistrationEventID] = true
			ids = append(ids, r.RegistrationEventID)
		}
	}
	if len(ids) > 0 {
		var events []eventModel.EventModel
		if err := ctrl.DB.Where("event_id IN ?", ids).Find(&events).Error; err == nil {
			for _, ev := range events {
				eventTitles[ev.EventID] = ev.EventTitle
			}
		}
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Data registrasi berhasil diambil",
		dto.ToRegistrationResponseList(registrations, eventTitles), &pagination)
}

// 🟢 DELETE /api/admin/registrations/:id
// Menghapus registrasi tanpa mengurangi event_registered; angka pendaftar
// adalah catatan histori, bukan saldo.
func (ctrl *RegistrationAdminController) DeleteRegistration(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var registration model.RegistrationModel
	if err := ctrl.DB.Where("registration_id = ?", id).First(&registration).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Registrasi tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&registration).Error; err != nil {
		log.Printf("[ERROR] Gagal menghapus registrasi: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus registrasi")
	}

	storage.Delete(registration.RegistrationProofImage)

	return helper.JsonDeleted(c, "Registrasi berhasil dihapus", fiber.Map{
		"registration_id": registration.RegistrationID,
	})
}
